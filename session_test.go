package cookiesession

import "testing"

func TestSessionTypedGetters(t *testing.T) {
	s := newSession(map[string]any{
		"str":   "hello",
		"int":   42,
		"float": float64(7), // JSON numbers decode as float64
		"bool":  true,
	}, false)

	if got := s.GetString("str"); got != "hello" {
		t.Fatalf("GetString: %q", got)
	}
	if got := s.GetInt("int"); got != 42 {
		t.Fatalf("GetInt: %d", got)
	}
	if got := s.GetInt("float"); got != 7 {
		t.Fatalf("GetInt on float64: %d", got)
	}
	if !s.GetBool("bool") {
		t.Fatal("GetBool: false")
	}

	// Missing keys and type mismatches yield zero values.
	if s.GetString("int") != "" || s.GetInt("str") != 0 || s.GetBool("missing") {
		t.Fatal("expected zero values for mismatches and missing keys")
	}
	if s.Get("missing") != nil {
		t.Fatal("Get on missing key must be nil")
	}
}

func TestSessionMutation(t *testing.T) {
	s := newSession(nil, true)
	if !s.IsNew() || s.Len() != 0 {
		t.Fatalf("fresh session: IsNew=%v Len=%d", s.IsNew(), s.Len())
	}

	s.Set("a", 1)
	s.Set("b", 2)
	if s.Len() != 2 || len(s.Keys()) != 2 {
		t.Fatalf("Len=%d Keys=%v", s.Len(), s.Keys())
	}

	s.Delete("a")
	if s.Len() != 1 || s.Get("a") != nil {
		t.Fatal("Delete did not remove the key")
	}
}

func TestSessionValuesIsACopy(t *testing.T) {
	s := newSession(map[string]any{"k": "v"}, false)
	out := s.Values()
	out["k"] = "mutated"
	if s.GetString("k") != "v" {
		t.Fatal("Values must return a copy")
	}
}

func TestNewSessionCopiesInput(t *testing.T) {
	in := map[string]any{"k": "v"}
	s := newSession(in, false)
	in["k"] = "mutated"
	if s.GetString("k") != "v" {
		t.Fatal("newSession must copy the input map")
	}
}
