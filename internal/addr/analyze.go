package addr

import "cidrcalc/internal/domain"

// maxUsablePrefix is the longest prefix that still has hosts distinct from
// the network and broadcast addresses.
const maxUsablePrefix = 30

// Analyze derives the network, broadcast, mask and address counts of the
// block of length prefix containing base. Host bits in base are cleared.
//
// For prefixes /31 and /32 the result has no Usable field.
func Analyze(base domain.Address, prefix int) (domain.Analysis, error) {
	if prefix < 0 || prefix > int(domain.MaxPrefixLength) {
		return domain.Analysis{}, &domain.RangeError{Field: domain.FieldPrefixLength, Value: int64(prefix)}
	}
	p := domain.PrefixLength(prefix)
	mask := Mask(p)
	network := base & mask
	broadcast := network | ^mask

	a := domain.Analysis{
		Input:       base,
		Prefix:      p,
		Network:     network,
		Broadcast:   broadcast,
		Mask:        mask,
		MaskBinary:  MaskBinary(mask),
		StartBinary: Binary(network),
		EndBinary:   Binary(broadcast),
		Total:       BlockSize(p),
	}
	if prefix <= maxUsablePrefix {
		a.Usable = &domain.UsableHosts{
			First: network + 1,
			Last:  broadcast - 1,
			Count: a.Total - 2,
		}
	}
	return a, nil
}

// AnalyzeBlock is Analyze for a block already in canonical form.
func AnalyzeBlock(b domain.CIDRBlock) (domain.Analysis, error) {
	return Analyze(b.Base, int(b.Prefix))
}
