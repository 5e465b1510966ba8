package serializable

// ErrorSource accumulates key/value pairs describing where an error came
// from. The key set is open-ended: pointer, parameter, and header are the
// common JSON:API members, and Set accepts anything else.
type ErrorSource struct {
	kv map[string]any
}

// Set inserts one key/value pair.
func (s *ErrorSource) Set(name string, value any) *ErrorSource {
	if s.kv == nil {
		s.kv = map[string]any{}
	}
	s.kv[name] = value
	return s
}

// Pointer sets the JSON Pointer to the offending document member.
func (s *ErrorSource) Pointer(v string) *ErrorSource { return s.Set("pointer", v) }

// Parameter sets the offending query parameter name.
func (s *ErrorSource) Parameter(v string) *ErrorSource { return s.Set("parameter", v) }

// Header sets the offending request header name.
func (s *ErrorSource) Header(v string) *ErrorSource { return s.Set("header", v) }

// Values returns the accumulated pairs, nil when nothing was set.
func (s *ErrorSource) Values() map[string]any {
	if len(s.kv) == 0 {
		return nil
	}
	return s.kv
}

// SourceFunc populates an ErrorSource for one error instance.
type SourceFunc func(Context, *ErrorSource) error
