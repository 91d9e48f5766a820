package decompose

import (
	"fmt"

	"cidrcalc/internal/addr"
	"cidrcalc/internal/domain"
)

// Blocks returns the minimal ordered cover of [start, end].
//
// It fails with *domain.RangeError when start > end.
func Blocks(start, end domain.Address) ([]domain.CIDRBlock, error) {
	if start > end {
		return nil, &domain.RangeError{Field: domain.FieldRangeStart, Value: int64(start)}
	}

	var out []domain.CIDRBlock
	// current is 64-bit so stepping past 255.255.255.255 ends the loop
	// instead of wrapping to 0.
	current, last := uint64(start), uint64(end)
	for current <= last {
		p := largestBlock(current, last)
		out = append(out, domain.CIDRBlock{Base: domain.Address(current), Prefix: p})
		current += addr.BlockSize(p)
	}
	return out, nil
}

// largestBlock returns the smallest prefix length whose block is aligned at
// current and does not run past last. /32 always qualifies.
func largestBlock(current, last uint64) domain.PrefixLength {
	p := domain.PrefixLength(0)
	for ; p < domain.MaxPrefixLength; p++ {
		size := addr.BlockSize(p)
		if current&(size-1) == 0 && current+size-1 <= last {
			break
		}
	}
	return p
}

// Decompose is Blocks with every block annotated with its analysis.
func Decompose(start, end domain.Address) (domain.Decomposition, error) {
	blocks, err := Blocks(start, end)
	if err != nil {
		return domain.Decomposition{}, err
	}
	d := domain.Decomposition{
		Start:  start,
		End:    end,
		Blocks: make([]domain.Analysis, 0, len(blocks)),
	}
	for _, b := range blocks {
		a, err := addr.AnalyzeBlock(b)
		if err != nil {
			return domain.Decomposition{}, fmt.Errorf("analyzing %s/%d: %w", addr.FormatAddress(b.Base), b.Prefix, err)
		}
		d.Blocks = append(d.Blocks, a)
	}
	return d, nil
}
