package addr

import (
	"fmt"

	"cidrcalc/internal/domain"
)

// Mask returns the netmask with the top p bits set. Mask(0) is 0; p above 32
// is treated as 32.
func Mask(p domain.PrefixLength) domain.Address {
	if p == 0 {
		return 0
	}
	if p > domain.MaxPrefixLength {
		p = domain.MaxPrefixLength
	}
	return domain.Address(uint32(0xFFFFFFFF) << (32 - uint32(p)))
}

// BlockSize returns the number of addresses in a /p block, 2^(32-p). Like
// Mask, it treats p above 32 as 32.
func BlockSize(p domain.PrefixLength) uint64 {
	if p > domain.MaxPrefixLength {
		p = domain.MaxPrefixLength
	}
	return uint64(1) << (32 - uint64(p))
}

// MaskBinary renders a mask as four dot-separated groups of eight '0'/'1'
// characters, e.g. "11111111.11111111.11111111.00000000".
func MaskBinary(mask domain.Address) string {
	return Binary(mask)
}

// Binary renders any address in the same grouped binary form as MaskBinary.
func Binary(a domain.Address) string {
	return fmt.Sprintf("%08b.%08b.%08b.%08b", a>>24&0xFF, a>>16&0xFF, a>>8&0xFF, a&0xFF)
}
