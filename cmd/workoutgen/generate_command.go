package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"workoutgen/internal/artifact"
	"workoutgen/internal/config"
	"workoutgen/internal/logging"
	"workoutgen/internal/program"
	"workoutgen/internal/watch"
)

type generateFlags struct {
	output  string
	format  string
	content string
	weeks   int
	watch   bool
	table   bool
}

func bindGenerateFlags(fs *pflag.FlagSet, f *generateFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "Output file (default output.path, workouts.json)")
	fs.IntVarP(&f.weeks, "weeks", "w", 0, "Number of weeks to generate (default program.weeks, 6)")
	fs.StringVar(&f.format, "format", "", "Output format: json or yaml")
	fs.StringVar(&f.content, "content", "", "YAML file overriding day texts of the base week")
	fs.BoolVar(&f.watch, "watch", false, "Regenerate whenever the content file changes")
	fs.BoolVar(&f.table, "table", false, "Print a table of the week after the summary")
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the workout program file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ctx, &flags)
		},
	}
	bindGenerateFlags(cmd.Flags(), &flags)
	return cmd
}

func runGenerate(cmd *cobra.Command, ctx *commandContext, flags *generateFlags) error {
	loaded, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("weeks") && flags.weeks < 1 {
		return fmt.Errorf("--weeks: %w: week count must be at least 1, got %d", program.ErrInvalidArgument, flags.weeks)
	}

	cfg := *loaded
	if err := cfg.Apply(config.Overrides{
		OutputPath:  flags.output,
		Format:      flags.format,
		Weeks:       flags.weeks,
		ContentPath: flags.content,
		LogLevel:    ctx.logLevel(),
	}); err != nil {
		return err
	}
	if flags.watch && cfg.Program.ContentPath == "" {
		return fmt.Errorf("--watch needs a content file (--content or program.content_path)")
	}

	logger, err := newRunLogger(cmd, &cfg)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		logging.String("config_path", ctx.configPath),
		logging.String(logging.FieldPath, cfg.Output.Path),
		logging.String(logging.FieldFormat, cfg.Output.Format),
		logging.Int(logging.FieldWeeks, cfg.Program.Weeks),
	)

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := &generator{
		cfg:    &cfg,
		logger: logger,
		out:    cmd.OutOrStdout(),
		table:  flags.table,
	}
	if err := gen.run(runCtx); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	w, err := watch.New(cfg.Program.ContentPath, watch.DefaultDebounce, logger, gen.run)
	if err != nil {
		return err
	}
	return w.Run(runCtx)
}

// generator performs one build-expand-write cycle per call.
type generator struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	table  bool
}

func (g *generator) run(ctx context.Context) error {
	ctx = logging.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, g.logger)

	base := program.BuildBaseWeek()
	if path := g.cfg.Program.ContentPath; path != "" {
		catalog, err := program.LoadCatalog(path)
		if err != nil {
			return err
		}
		base = catalog.Apply(base)
		logger.Info("content overrides applied",
			logging.String(logging.FieldPath, catalog.Path()),
			logging.Int("days", len(catalog.Days())),
		)
	}

	prog, err := program.Expand(base, g.cfg.Program.Weeks)
	if err != nil {
		return err
	}

	format, err := artifact.ParseFormat(g.cfg.Output.Format)
	if err != nil {
		return err
	}
	if _, err := artifact.WriteProgram(ctx, prog, g.cfg.Output.Path, artifact.Options{
		Format: format,
		Lock:   g.cfg.Output.Lock,
		Logger: g.logger,
	}); err != nil {
		return err
	}

	if err := writeSummary(g.out, prog, base); err != nil {
		return err
	}
	if g.table {
		if _, err := fmt.Fprintln(g.out, renderWeekTable(base)); err != nil {
			return err
		}
	}
	return nil
}
