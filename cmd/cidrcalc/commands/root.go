package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cidrcalc/internal/app"
	"cidrcalc/internal/report"
)

var (
	envFile  string
	output   string
	noColor  bool
	logLevel string
	export   string

	appCtx *app.App
)

// Execute runs the CLI with os.Args and reports any error on stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if appCtx != nil {
			_ = appCtx.Render.Error(root.ErrOrStderr(), err)
		} else {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", report.Describe(err))
		}
		return err
	}
	return nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	appCtx = nil

	root := &cobra.Command{
		Use:           "cidrcalc",
		Short:         "IPv4 CIDR calculator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("output") {
				f, err := report.ParseFormat(output)
				if err != nil {
					return err
				}
				cfg.Output = f
			}
			if flags.Changed("no-color") {
				cfg.Color = !noColor
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("export") {
				cfg.Export = export
			}

			a, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = a
			appCtx.Log.Debug("config loaded", "output", cfg.Output, "color", cfg.Color, "export", cfg.Export)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&envFile, "env-file", app.DefaultEnvFile, "optional dotenv file with CIDRCALC_* settings")
	pf.StringVarP(&output, "output", "o", string(report.FormatText), "output format: text or json")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&export, "export", "", "also write the result to this file")

	root.AddCommand(analyzeCmd(), decomposeCmd(), interactiveCmd())
	return root
}

