package tour

// Default marker configuration constants.
const (
	defaultMaxMarker = 40.0
	defaultMinMarker = 4.0
)

// Option applies a configuration option to the Sizer.
type Option func(*Sizer)

// WithMaxMarker sets the reference diameter used to derive the size scale.
// The largest city is drawn at maxMarker/sqrt(2).
func WithMaxMarker(px float64) Option {
	return func(s *Sizer) {
		if px > 0 {
			s.maxMarker = px
		}
	}
}

// WithMinMarker sets the smallest diameter a marker is drawn with.
func WithMinMarker(px float64) Option {
	return func(s *Sizer) {
		if px >= 0 {
			s.minMarker = px
		}
	}
}
