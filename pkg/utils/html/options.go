// ABOUTME: Functional options for SanitizeHTML
// ABOUTME: Defaults: built-in policy, strip disallowed tags, no length cap

package html

// Option configures a single SanitizeHTML call
type Option func(*options)

type options struct {
	policy          Policy
	stripDisallowed bool
	maxLength       int
}

func defaultOptions() options {
	return options{
		policy:          defaultPolicy,
		stripDisallowed: true,
	}
}

// WithPolicy replaces the built-in allow-list
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

// WithStripDisallowed controls whether tags outside the allow-list are removed.
// Text between a removed tag pair is always kept.
func WithStripDisallowed(strip bool) Option {
	return func(o *options) {
		o.stripDisallowed = strip
	}
}

// WithMaxLength caps the output length in characters. Zero or less means no cap.
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}
