package validation

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips markup from user supplied text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewStrictSanitizer removes all HTML. Used for single-line fields.
func NewStrictSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// NewUGCSanitizer keeps the formatting subset of HTML safe for user content.
func NewUGCSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

func (s *Sanitizer) Sanitize(input string) string {
	return s.policy.Sanitize(input)
}

func (s *Sanitizer) SanitizeAll(inputs []string) []string {
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if v := s.policy.Sanitize(in); v != "" {
			out = append(out, v)
		}
	}
	return out
}
