package archive

// Limits bounds the work Extract does on one archive. Zero fields take the
// defaults.
type Limits struct {
	MaxMembers    int    // members listed in the central directory
	MaxMemberSize uint64 // uncompressed bytes of one extracted member
	MaxTotalSize  uint64 // uncompressed bytes of all extracted members
}

// DefaultLimits returns the limits used for zero fields.
func DefaultLimits() Limits {
	return Limits{
		MaxMembers:    10_000,
		MaxMemberSize: 256 << 20, // 256 MiB
		MaxTotalSize:  1 << 30,   // 1 GiB
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxMembers == 0 {
		l.MaxMembers = d.MaxMembers
	}
	if l.MaxMemberSize == 0 {
		l.MaxMemberSize = d.MaxMemberSize
	}
	if l.MaxTotalSize == 0 {
		l.MaxTotalSize = d.MaxTotalSize
	}
	return l
}
