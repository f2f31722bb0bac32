package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/texstrip/internal/config"
	"github.com/jmylchreest/texstrip/internal/logger"
	"github.com/jmylchreest/texstrip/internal/output"
	"github.com/jmylchreest/texstrip/pkg/converter"
)

const rule = "----------------------------------------"

func runConvert(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger.Init(logger.Options{
		Debug:  cfg.Debug,
		Quiet:  cfg.Quiet,
		JSON:   cfg.LogJSON,
		Output: cmd.ErrOrStderr(),
	})

	// Arguments are valid from here on; failures are not usage errors.
	cmd.SilenceUsage = true

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	inputDir, outputDir := args[0], args[1]
	if len(args) > 2 {
		logger.Warn("ignoring extra arguments", "args", args[2:])
	}

	out := cmd.OutOrStdout()
	var reporter converter.Reporter = converter.NewConsoleReporter(out, cfg.Quiet)
	if cfg.Debug {
		reporter = converter.MultiReporter{reporter, converter.LogReporter{}}
	}

	conv := converter.New(
		converter.WithReporter(reporter),
		converter.WithWorkers(cfg.Workers),
		converter.WithSourceExt(cfg.SourceExt),
		converter.WithTargetExt(cfg.TargetExt),
		converter.WithDryRun(cfg.DryRun),
	)

	logger.Debug("convert command starting",
		"input_dir", inputDir,
		"output_dir", outputDir,
		"workers", cfg.Workers,
		"dry_run", cfg.DryRun)

	if !cfg.Quiet {
		fmt.Fprintf(out, "converting %s -> %s\n%s\n", inputDir, outputDir, rule)
	}

	summary, err := conv.Convert(ctx, inputDir, outputDir)
	if summary == nil {
		logger.Error("conversion aborted", "error", err)
		return err
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, rule)
	}

	if cfg.Report != "" {
		if rerr := writeReport(cfg, summary); rerr != nil {
			logger.Error("failed to write report", "path", cfg.Report, "error", rerr)
			return rerr
		}
		logger.Info("report written", "path", cfg.Report)
	}

	if err != nil {
		logger.Warn("conversion interrupted", "skipped", summary.Skipped, "error", err)
	}
	return err
}

func writeReport(cfg *config.Config, summary *converter.Summary) error {
	format := output.FormatFromPath(cfg.Report)
	if strings.TrimSpace(cfg.ReportFormat) != "" {
		f, err := output.ParseFormat(cfg.ReportFormat)
		if err != nil {
			return err
		}
		format = f
	}

	f, err := os.Create(cfg.Report)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	werr := output.WriteReport(f, format, output.NewReport(summary, time.Now()))
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
