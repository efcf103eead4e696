package cookiesession

// Session is the request-scoped key/value state carried by the session
// cookie. Values must be JSON-serializable. A Session is owned by exactly one
// request and is never shared across requests.
type Session struct {
	values map[string]any
	isNew  bool
}

func newSession(values map[string]any, isNew bool) *Session {
	s := &Session{values: make(map[string]any, len(values)), isNew: isNew}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// IsNew reports whether the session was created fresh for this request,
// i.e. no valid session existed in the incoming cookie. Fixed at
// construction.
func (s *Session) IsNew() bool {
	return s.isNew
}

// Get retrieves a value. Returns nil if the key doesn't exist.
func (s *Session) Get(key string) any {
	return s.values[key]
}

// GetString retrieves a string value. Returns "" if not found or on type
// mismatch.
func (s *Session) GetString(key string) string {
	v, _ := s.values[key].(string)
	return v
}

// GetInt retrieves an int value. JSON round-trips store numbers as float64,
// which is accepted too. Returns 0 if not found or on type mismatch.
func (s *Session) GetInt(key string) int {
	switch v := s.values[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// GetBool retrieves a bool value. Returns false if not found or on type
// mismatch.
func (s *Session) GetBool(key string) bool {
	v, _ := s.values[key].(bool)
	return v
}

// Set adds or updates a value.
func (s *Session) Set(key string, value any) {
	s.values[key] = value
}

// Delete removes a value.
func (s *Session) Delete(key string) {
	delete(s.values, key)
}

// Len returns the number of keys in the session.
func (s *Session) Len() int {
	return len(s.values)
}

// Keys returns the session's keys in unspecified order.
func (s *Session) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a copy of the session's contents.
func (s *Session) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
