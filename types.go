package clangast

// DecodeOpt bundles decoding options. Pass at most one; when several are
// given the last one wins.
type DecodeOpt struct {
	// MaxDepth bounds node nesting through "inner" (0 = unlimited). Deeper
	// documents fail with too_deep.
	MaxDepth int
	// MaxBytes caps the input read by DecodeReader (0 = unlimited). Larger
	// inputs fail with truncated.
	MaxBytes int64
	// Driver overrides the global JSON driver for DecodeReader and
	// DecodeBytes.
	Driver JSONDriver
}

func normalizeOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) == 0 {
		return DecodeOpt{}
	}
	return opts[len(opts)-1]
}

func (o DecodeOpt) driver() JSONDriver {
	if o.Driver != nil {
		return o.Driver
	}
	return getJSONDriver()
}
