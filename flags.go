package pixpack

// Bits of the options byte stored in the container header. All other bits are
// reserved and must be zero.
const (
	FlagModel    = 1 << iota // 0000 0001
	FlagVertical = 1 << iota // 0000 0010
)

const FlagsReservedMask = ^byte(FlagModel | FlagVertical)

// Flags packs the options into the header byte. Adaptive selection isn't
// stored; the direction it resolved to is.
func (opts Options) Flags() byte {
	var flags byte
	if opts.Model {
		flags |= FlagModel
	}
	if opts.Direction == Vertical {
		flags |= FlagVertical
	}
	return flags
}

// OptionsFromFlags is the inverse of [Options.Flags].
func OptionsFromFlags(flags byte) (Options, error) {
	if flags&FlagsReservedMask != 0 {
		return Options{}, ErrFormat.WithMessage("reserved option bits are set")
	}

	opts := Options{Model: flags&FlagModel != 0}
	if flags&FlagVertical != 0 {
		opts.Direction = Vertical
	}
	return opts, nil
}
