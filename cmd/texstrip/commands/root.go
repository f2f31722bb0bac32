// Package commands implements the CLI commands for texstrip.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/texstrip/internal/config"
	"github.com/jmylchreest/texstrip/internal/version"
)

// newRootCmd builds the command tree around v so tests can use a private viper.
func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texstrip <input_directory> <output_directory>",
		Short: "Convert LaTeX sources to plain text",
		Long: `texstrip converts every .tex file in a directory to plain text.

Comments, commands, math, environments and braces are stripped, whitespace
is normalised, and each name.tex is written as name.txt in the output
directory (created if missing, existing files overwritten). Subdirectories
are not searched. A file that fails to convert is reported and skipped.

This is a lossy stripper, not a LaTeX parser: nested constructs are not
handled and command arguments are often kept as plain words.

Examples:
  # Convert a directory
  texstrip ./chapters ./plain

  # Convert with four workers and save a YAML report
  texstrip ./chapters ./plain --workers 4 --report report.yaml

  # See what would be produced without writing anything
  texstrip ./chapters ./plain --dry-run --debug`,
		Version: version.String(),
		Args:    cobra.MinimumNArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return config.Init(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args)
		},
	}
	cmd.SetVersionTemplate(version.Get().Full() + "\n")

	// Global flags
	pflags := cmd.PersistentFlags()
	pflags.String("config", "", "config file (default $HOME/.texstrip.yaml)")
	pflags.Bool("debug", false, "enable debug logging")
	pflags.BoolP("quiet", "q", false, "only print the final summary")
	pflags.Bool("log-json", false, "write logs as JSON")

	_ = v.BindPFlag(config.KeyDebug, pflags.Lookup("debug"))
	_ = v.BindPFlag(config.KeyQuiet, pflags.Lookup("quiet"))
	_ = v.BindPFlag(config.KeyLogJSON, pflags.Lookup("log-json"))

	flags := cmd.Flags()
	flags.IntP("workers", "w", 1, "files converted concurrently")
	flags.String("ext", ".tex", "source file extension (case-insensitive)")
	flags.String("out-ext", ".txt", "output file extension")
	flags.Bool("dry-run", false, "clean files without writing output")
	flags.String("report", "", "write a conversion report to this file")
	flags.String("report-format", "", "report format: json, jsonl, yaml (default: from --report extension)")

	_ = v.BindPFlag(config.KeyWorkers, flags.Lookup("workers"))
	_ = v.BindPFlag(config.KeySourceExt, flags.Lookup("ext"))
	_ = v.BindPFlag(config.KeyTargetExt, flags.Lookup("out-ext"))
	_ = v.BindPFlag(config.KeyDryRun, flags.Lookup("dry-run"))
	_ = v.BindPFlag(config.KeyReport, flags.Lookup("report"))
	_ = v.BindPFlag(config.KeyReportFormat, flags.Lookup("report-format"))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(viper.GetViper()).Execute()
}
