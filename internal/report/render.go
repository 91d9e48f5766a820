package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cidrcalc/internal/domain"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// notApplicable stands in for usable-host fields of /31 and /32 blocks.
const notApplicable = "N/A"

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Renderer writes results in one format.
type Renderer struct {
	format Format
	color  bool
}

// New returns a renderer. Color only applies to FormatText and only when the
// destination supports it.
func New(format Format, color bool) *Renderer {
	if format == "" {
		format = FormatText
	}
	return &Renderer{format: format, color: color}
}

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	block lipgloss.Style
	err   lipgloss.Style
}

func (r *Renderer) styles(w io.Writer) styles {
	if !r.color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, label: plain, block: plain, err: plain}
	}
	lr := lipgloss.NewRenderer(w)
	return styles{
		title: lr.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		label: lr.NewStyle().Foreground(lipgloss.Color("14")),
		block: lr.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		err:   lr.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Analysis writes a single-block analysis.
func (r *Renderer) Analysis(w io.Writer, a domain.Analysis) error {
	if r.format == FormatJSON {
		return writeJSON(w, newAnalysisView(a, true))
	}

	s := r.styles(w)
	v := newAnalysisView(a, true)
	var b strings.Builder
	fmt.Fprintln(&b, s.title.Render("Network information:"))
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	rows := [][2]string{
		{"CIDR", v.CIDR},
		{"Network address", v.Network},
		{"Broadcast address", v.Broadcast},
		{"Netmask", v.Netmask},
		{"Prefix", fmt.Sprint(v.Prefix)},
		{"Address count", fmt.Sprint(v.Total)},
		{"First usable", orNA(v.FirstUsable)},
		{"Last usable", orNA(v.LastUsable)},
		{"Usable count", usableCount(v.UsableCount)},
		{"Mask (binary)", v.MaskBinary},
		{"Start (binary)", v.StartBinary},
		{"End (binary)", v.EndBinary},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%s %s\n", s.label.Render(row[0]+":"), row[1])
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Decomposition writes the block list of a range decomposition.
func (r *Renderer) Decomposition(w io.Writer, d domain.Decomposition) error {
	v := newDecompositionView(d)
	if r.format == FormatJSON {
		return writeJSON(w, v)
	}

	s := r.styles(w)
	var b strings.Builder
	fmt.Fprintln(&b, s.title.Render(fmt.Sprintf("Optimal CIDR blocks for %s - %s:", v.Start, v.End)))
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	for i, blk := range v.Blocks {
		fmt.Fprintf(&b, "\n%s\n", s.block.Render(fmt.Sprintf("Block %d:", i+1)))
		fmt.Fprintf(&b, "%s %s\n", s.label.Render("CIDR:"), blk.CIDR)
		fmt.Fprintf(&b, "%s %s\n", s.label.Render("Network address:"), blk.Network)
		fmt.Fprintf(&b, "%s %s\n", s.label.Render("Broadcast address:"), blk.Broadcast)
		fmt.Fprintf(&b, "%s %d\n", s.label.Render("Address count:"), blk.Total)
		fmt.Fprintf(&b, "%s %s\n", s.label.Render("First usable:"), orNA(blk.FirstUsable))
		fmt.Fprintf(&b, "%s %s\n", s.label.Render("Last usable:"), orNA(blk.LastUsable))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Error writes a described error.
func (r *Renderer) Error(w io.Writer, err error) error {
	if r.format == FormatJSON {
		return writeJSON(w, struct {
			Error string `json:"error"`
		}{Describe(err)})
	}
	_, werr := fmt.Fprintln(w, r.styles(w).err.Render("Error: "+Describe(err)))
	return werr
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orNA(s string) string {
	if s == "" {
		return notApplicable
	}
	return s
}

func usableCount(n *uint64) string {
	if n == nil {
		return notApplicable
	}
	return fmt.Sprint(*n)
}
