package cookiesession

import (
	"encoding/base64"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := map[string]any{
		"user":  "alice",
		"views": float64(3),
		"admin": true,
		"note":  `semi;colons "and" = signs`,
	}

	encoded, err := encodeSession(values)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, ok := decodeSession(encoded)
	if !ok {
		t.Fatal("decode reported absent for freshly encoded value")
	}
	if len(decoded) != len(values) {
		t.Fatalf("key count mismatch: %d != %d", len(decoded), len(values))
	}
	for k, v := range values {
		if decoded[k] != v {
			t.Fatalf("key %q: %v != %v", k, decoded[k], v)
		}
	}
}

func TestDecodeMalformedInputIsAbsentNotError(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"not base64":        "!!!not-base64!!!",
		"base64 not json":   base64.StdEncoding.EncodeToString([]byte("not json")),
		"json not object":   base64.StdEncoding.EncodeToString([]byte(`"just a string"`)),
		"json array":        base64.StdEncoding.EncodeToString([]byte(`[1,2,3]`)),
		"json null":         base64.StdEncoding.EncodeToString([]byte(`null`)),
		"truncated payload": base64.StdEncoding.EncodeToString([]byte(`{"user":"ali`)),
	}

	for name, input := range cases {
		if values, ok := decodeSession(input); ok {
			t.Errorf("%s: expected absent, got %v", name, values)
		}
	}
}

func TestDecodeEmptyObject(t *testing.T) {
	values, ok := decodeSession(base64.StdEncoding.EncodeToString([]byte(`{}`)))
	if !ok {
		t.Fatal("empty object is a valid (empty) session")
	}
	if len(values) != 0 {
		t.Fatalf("expected no keys, got %v", values)
	}
}

func TestEncodeUnserializableValueFails(t *testing.T) {
	if _, err := encodeSession(map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatal("expected an error for a non-serializable value")
	}
}

func FuzzDecodeSession(f *testing.F) {
	f.Add("")
	f.Add("eyJrIjoidiJ9")
	f.Add("!!!")
	f.Add(base64.StdEncoding.EncodeToString([]byte(`{"a":1}`)))

	f.Fuzz(func(t *testing.T, input string) {
		// Decode must never panic and never report ok with a nil map.
		values, ok := decodeSession(input)
		if ok && values == nil {
			t.Fatal("ok with nil values")
		}
	})
}
