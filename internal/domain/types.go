package domain

// Address is an IPv4 address in host byte order, most significant octet first.
type Address uint32

// MaxAddress is 255.255.255.255.
const MaxAddress Address = 0xFFFFFFFF

// PrefixLength is the number of leading mask bits, in [0, 32].
type PrefixLength uint8

// MaxPrefixLength is the longest IPv4 prefix.
const MaxPrefixLength PrefixLength = 32

// CIDRBlock is an aligned block of 2^(32-Prefix) addresses starting at Base.
type CIDRBlock struct {
	Base   Address
	Prefix PrefixLength
}

// UsableHosts describes the host range of a block, excluding network and
// broadcast addresses.
type UsableHosts struct {
	First Address
	Last  Address
	Count uint64
}

// Analysis is the derived, read-only view of a single CIDR block.
type Analysis struct {
	// Input is the address the caller supplied, before host bits were masked.
	Input     Address
	Prefix    PrefixLength
	Network   Address
	Broadcast Address
	Mask      Address
	// MaskBinary is the mask as four dot-separated groups of eight bits.
	MaskBinary string
	// StartBinary and EndBinary render Network and Broadcast the same way.
	StartBinary string
	EndBinary   string
	Total       uint64
	// Usable is nil for /31 and /32, which have no hosts distinct from
	// network and broadcast. A nil Usable is not the same as an empty range.
	Usable *UsableHosts
}

// HasUsable reports whether the analysis carries usable-host fields.
func (a Analysis) HasUsable() bool { return a.Usable != nil }

// Block returns the canonical block the analysis describes.
func (a Analysis) Block() CIDRBlock { return CIDRBlock{Base: a.Network, Prefix: a.Prefix} }

// Decomposition is the ordered cover of an inclusive address range.
type Decomposition struct {
	Start  Address
	End    Address
	Blocks []Analysis
}
