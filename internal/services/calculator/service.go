package calculator

import (
	"fmt"
	"strings"

	"cidrcalc/internal/addr"
	"cidrcalc/internal/decompose"
	"cidrcalc/internal/domain"
)

// Service implements domain.Calculator. It holds no state.
type Service struct{}

// New returns a calculator service.
func New() *Service { return &Service{} }

// AnalyzeCIDR parses "A.B.C.D/N" and analyzes the block it names. Host bits in
// the address are cleared, so "10.1.2.3/8" describes 10.0.0.0/8.
func (s *Service) AnalyzeCIDR(cidr string) (domain.Analysis, error) {
	ip, prefix, err := addr.ParseCIDR(strings.TrimSpace(cidr))
	if err != nil {
		return domain.Analysis{}, err
	}
	return addr.Analyze(ip, int(prefix))
}

// DecomposeRange parses both endpoints and returns the minimal ordered cover
// of the inclusive range between them.
func (s *Service) DecomposeRange(start, end string) (domain.Decomposition, error) {
	from, err := addr.ParseAddress(strings.TrimSpace(start))
	if err != nil {
		return domain.Decomposition{}, fmt.Errorf("start address: %w", err)
	}
	to, err := addr.ParseAddress(strings.TrimSpace(end))
	if err != nil {
		return domain.Decomposition{}, fmt.Errorf("end address: %w", err)
	}
	return decompose.Decompose(from, to)
}

// ParseRange splits "A.B.C.D-E.F.G.H" into its two endpoints.
func ParseRange(s string) (start, end string, err error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return "", "", &domain.FormatError{Input: s, Reason: "want start-end"}
	}
	return strings.TrimSpace(start), strings.TrimSpace(end), nil
}

// Compile-time assertion that Service implements domain.Calculator.
var _ domain.Calculator = (*Service)(nil)
