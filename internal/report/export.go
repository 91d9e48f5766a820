package report

import (
	"bytes"
	"os"
	"path/filepath"

	"cidrcalc/internal/domain"
)

// exportMode is the permission of exported report files.
const exportMode os.FileMode = 0o644

// ExportAnalysis renders a to path, replacing any existing file.
func (r *Renderer) ExportAnalysis(path string, a domain.Analysis) error {
	var buf bytes.Buffer
	if err := r.plain().Analysis(&buf, a); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes(), exportMode)
}

// ExportDecomposition renders d to path, replacing any existing file.
func (r *Renderer) ExportDecomposition(path string, d domain.Decomposition) error {
	var buf bytes.Buffer
	if err := r.plain().Decomposition(&buf, d); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes(), exportMode)
}

// plain is r without color; files never carry escape codes.
func (r *Renderer) plain() *Renderer { return &Renderer{format: r.format} }

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Removing after a successful rename is a no-op.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
