package computer

// Flags are the condition bits set by the last arithmetic result.
type Flags struct {
	zero   bool
	signed bool
}

// Update replaces both flags from an arithmetic result.
func (fl *Flags) Update(result int64) {
	fl.zero = result == 0
	fl.signed = result < 0
}

// IsZero is set when the last result was zero.
func (fl *Flags) IsZero() bool {
	return fl.zero
}

// IsSigned is set when the last result was negative.
func (fl *Flags) IsSigned() bool {
	return fl.signed
}

// Reset clears both flags.
func (fl *Flags) Reset() {
	*fl = Flags{}
}

func (fl Flags) String() string {
	zf := "-"
	if fl.zero {
		zf = "Z"
	}
	sf := "-"
	if fl.signed {
		sf = "S"
	}
	return zf + sf
}
