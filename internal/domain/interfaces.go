package domain

// Calculator is the text-in, structured-out surface used by the CLI.
type Calculator interface {
	// AnalyzeCIDR parses "A.B.C.D/N" and analyzes the block it names.
	AnalyzeCIDR(cidr string) (Analysis, error)
	// DecomposeRange returns the minimal ordered cover of [start, end].
	DecomposeRange(start, end string) (Decomposition, error)
}
