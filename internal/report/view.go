package report

import (
	"fmt"

	"cidrcalc/internal/addr"
	"cidrcalc/internal/domain"
)

// analysisView is the JSON shape of a domain.Analysis. Addresses are dotted
// quads; usable fields are omitted for /31 and /32.
type analysisView struct {
	CIDR        string  `json:"cidr"`
	Input       string  `json:"input,omitempty"`
	Network     string  `json:"network"`
	Broadcast   string  `json:"broadcast"`
	Netmask     string  `json:"netmask"`
	Prefix      uint8   `json:"prefix"`
	Total       uint64  `json:"total"`
	FirstUsable string  `json:"first_usable,omitempty"`
	LastUsable  string  `json:"last_usable,omitempty"`
	UsableCount *uint64 `json:"usable_count,omitempty"`
	MaskBinary  string  `json:"mask_binary"`
	StartBinary string  `json:"start_binary"`
	EndBinary   string  `json:"end_binary"`
}

type decompositionView struct {
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Blocks []analysisView `json:"blocks"`
}

// CIDR renders a block as "A.B.C.D/N".
func CIDR(b domain.CIDRBlock) string {
	return fmt.Sprintf("%s/%d", addr.FormatAddress(b.Base), b.Prefix)
}

func newAnalysisView(a domain.Analysis, withInput bool) analysisView {
	v := analysisView{
		CIDR:        CIDR(a.Block()),
		Network:     addr.FormatAddress(a.Network),
		Broadcast:   addr.FormatAddress(a.Broadcast),
		Netmask:     addr.FormatAddress(a.Mask),
		Prefix:      uint8(a.Prefix),
		Total:       a.Total,
		MaskBinary:  a.MaskBinary,
		StartBinary: a.StartBinary,
		EndBinary:   a.EndBinary,
	}
	if withInput {
		v.Input = addr.FormatAddress(a.Input)
	}
	if a.Usable != nil {
		count := a.Usable.Count
		v.FirstUsable = addr.FormatAddress(a.Usable.First)
		v.LastUsable = addr.FormatAddress(a.Usable.Last)
		v.UsableCount = &count
	}
	return v
}

func newDecompositionView(d domain.Decomposition) decompositionView {
	v := decompositionView{
		Start:  addr.FormatAddress(d.Start),
		End:    addr.FormatAddress(d.End),
		Blocks: make([]analysisView, 0, len(d.Blocks)),
	}
	for _, b := range d.Blocks {
		v.Blocks = append(v.Blocks, newAnalysisView(b, false))
	}
	return v
}
