package editor

const (
	DefaultMinRows   = 1
	DefaultMaxRows   = 5
	DefaultMaxLength = 150
)

// Options bound a Field. MaxLength counts UTF-16 code units, so an emoji
// outside the BMP takes two.
type Options struct {
	MinRows   int
	MaxRows   int
	MaxLength int
}

func DefaultOptions() Options {
	return Options{MinRows: DefaultMinRows, MaxRows: DefaultMaxRows, MaxLength: DefaultMaxLength}
}

// Normalize fills zero values with the defaults and repairs inconsistent
// bounds.
func (o Options) Normalize() Options {
	if o.MinRows < 1 {
		o.MinRows = DefaultMinRows
	}
	if o.MaxRows <= 0 {
		o.MaxRows = max(DefaultMaxRows, o.MinRows)
	}
	if o.MaxRows < o.MinRows {
		o.MaxRows = o.MinRows
	}
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	return o
}
