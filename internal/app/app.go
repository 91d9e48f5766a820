package app

import (
	"io"

	"github.com/charmbracelet/log"

	"cidrcalc/internal/addr"
	"cidrcalc/internal/domain"
	"cidrcalc/internal/report"
)

// App bundles the calculator, renderer and logger used by the commands.
type App struct {
	Calc   domain.Calculator
	Render *report.Renderer
	Log    *log.Logger
	Export string
}

func New(calc domain.Calculator, render *report.Renderer, logger *log.Logger, export string) *App {
	return &App{
		Calc:   calc,
		Render: render,
		Log:    logger,
		Export: export,
	}
}

// Analyze analyzes cidr, writes the report to w and exports it when
// configured.
func (a *App) Analyze(w io.Writer, cidr string) error {
	res, err := a.Calc.AnalyzeCIDR(cidr)
	if err != nil {
		a.Log.Debug("analyze failed", "input", cidr, "error", err)
		return err
	}
	a.Log.Debug("analyzed", "input", cidr, "network", addr.FormatAddress(res.Network), "prefix", res.Prefix)

	if err := a.Render.Analysis(w, res); err != nil {
		return err
	}
	if a.Export != "" {
		if err := a.Render.ExportAnalysis(a.Export, res); err != nil {
			return err
		}
		a.Log.Info("exported", "path", a.Export)
	}
	return nil
}

// Decompose covers [start, end] with CIDR blocks, writes the report to w and
// exports it when configured.
func (a *App) Decompose(w io.Writer, start, end string) error {
	res, err := a.Calc.DecomposeRange(start, end)
	if err != nil {
		a.Log.Debug("decompose failed", "start", start, "end", end, "error", err)
		return err
	}
	a.Log.Debug("decomposed", "start", start, "end", end, "blocks", len(res.Blocks))

	if err := a.Render.Decomposition(w, res); err != nil {
		return err
	}
	if a.Export != "" {
		if err := a.Render.ExportDecomposition(a.Export, res); err != nil {
			return err
		}
		a.Log.Info("exported", "path", a.Export)
	}
	return nil
}
