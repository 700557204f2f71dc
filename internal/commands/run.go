// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/cmdctx"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/config"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/prompts"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/signatures"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/watch"
)

type runOptions struct {
	output      string
	layout      string
	signatures  string
	imports     []string
	exceptions  []string
	maxDepth    int
	dryRun      bool
	fresh       bool
	watch       bool
	interactive bool
}

func registerRunCmd(parent *cobra.Command, renderers typegen.Register) {
	parent.AddCommand(newRunCmd(renderers))
}

func newRunCmd(renderers typegen.Register) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [models-path]",
		Short: "Generate TypeScript declarations for every model",
		Long: fmt.Sprintf(`Generate TypeScript declarations from schema snapshots.

The models path is a snapshot file or a directory searched recursively for
.yaml, .yml and .json snapshots. Text between the CUSTOM INTERFACES markers of
an existing output file is kept unless --fresh is set.

Available layouts: %s`, strings.Join(renderers.Available(), ", ")),
		Example: `  # Generate with defaults (./src/models -> ./src/interfaces/mongoose.gen.ts)
  mtgen run

  # Custom paths and the module augmentation layout
  mtgen run ./snapshots -o ./types/mongoose.gen.ts --layout augment

  # Print instead of writing
  mtgen run --dry-run

  # Regenerate whenever a snapshot changes
  mtgen run --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, renderers, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file")
	cmd.Flags().StringVar(&opts.layout, "layout", "", fmt.Sprintf("Output layout (%s)", strings.Join(renderers.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.signatures, "signatures", "s", "", "Function signature override file")
	cmd.Flags().StringArrayVarP(&opts.imports, "imports", "i", nil, "Extra import line, repeatable")
	cmd.Flags().StringSliceVarP(&opts.exceptions, "exceptions", "e", nil, "Model names to skip, comma separated")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Maximum schema nesting depth")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, "Print the output instead of writing it")
	cmd.Flags().BoolVarP(&opts.fresh, "fresh", "f", false, "Discard the custom region of the previous output")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate when snapshots change")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "I", false, "Prompt for paths, layout and exceptions")

	return cmd
}

func runRun(cmd *cobra.Command, args []string, renderers typegen.Register, opts *runOptions) error {
	ctx, err := cmdctx.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	cfg := applyRunFlags(cmd, *ctx.Config, args, opts)

	if opts.interactive {
		if err := promptRunConfig(&cfg, ctx, renderers); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	renderer, err := renderers.Get(cfg.Layout)
	if err != nil {
		return err
	}

	if _, err := generate(cmd, &cfg, renderer, opts.dryRun); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	w, err := watch.New(cfg.Models, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	w.Ignore(cfg.Output)
	pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln("Watching %s for changes, press Ctrl+C to stop", cfg.Models)

	return w.Run(cmd.Context(), regenerate(cmd, cfg, renderer, opts.dryRun))
}

// regenerate returns the watch callback. Only the first cycle honors Fresh so
// custom text added while watching survives later cycles.
func regenerate(cmd *cobra.Command, cfg config.Config, renderer typegen.Renderer, dryRun bool) watch.RunFunc {
	cfg.Fresh = false
	return func(context.Context) error {
		_, err := generate(cmd, &cfg, renderer, dryRun)
		return err
	}
}

// applyRunFlags layers the positional models path and explicitly set flags
// over the loaded configuration.
func applyRunFlags(cmd *cobra.Command, cfg config.Config, args []string, opts *runOptions) config.Config {
	if len(args) == 1 {
		cfg.Models = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("layout") {
		cfg.Layout = opts.layout
	}
	if flags.Changed("signatures") {
		cfg.Signatures = opts.signatures
	}
	if flags.Changed("imports") {
		cfg.Imports = opts.imports
	}
	if flags.Changed("exceptions") {
		cfg.Exceptions = opts.exceptions
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}
	if flags.Changed("fresh") {
		cfg.Fresh = opts.fresh
	}
	return cfg
}

func promptRunConfig(cfg *config.Config, ctx *cmdctx.Context, renderers typegen.Register) error {
	answers := prompts.GenerateAnswers{
		Models:     cfg.Models,
		Output:     cfg.Output,
		Layout:     cfg.Layout,
		Exceptions: strings.Join(cfg.Exceptions, ", "),
	}
	if err := prompts.RunGenerateForm(&answers, renderers.Available(), cfg.Path == ""); err != nil {
		return err
	}

	cfg.Models = answers.Models
	cfg.Output = answers.Output
	cfg.Layout = answers.Layout
	cfg.Exceptions = prompts.SplitList(answers.Exceptions)

	if answers.Save {
		path := filepath.Join(ctx.Dir, config.CandidateFiles[0])
		if err := cfg.Save(path); err != nil {
			return err
		}
		logger.Logger.Infow("saved config", "path", path)
	}
	return nil
}

// generate performs one load, synthesize and write cycle.
func generate(cmd *cobra.Command, cfg *config.Config, renderer typegen.Renderer, dryRun bool) (*typegen.Result, error) {
	progress := newProgress(cmd.ErrOrStderr(), "Loading schema snapshots...")

	models, err := mschema.LoadPath(cfg.Models)
	if err != nil {
		progress.fail()
		return nil, err
	}

	var overrides signatures.Table
	if cfg.Signatures != "" {
		if overrides, err = signatures.Load(cfg.Signatures); err != nil {
			progress.fail()
			return nil, err
		}
	}

	previous, err := typegen.ReadPrevious(cfg.Output)
	if err != nil {
		progress.fail()
		return nil, err
	}

	progress.update(fmt.Sprintf("Generating declarations for %d model(s)...", len(models)))
	res, err := typegen.Generate(models, renderer, typegen.Options{
		Imports:    cfg.Imports,
		Exceptions: cfg.Exceptions,
		Signatures: overrides,
		MaxDepth:   cfg.MaxDepth,
		Previous:   previous,
		Fresh:      cfg.Fresh,
	})
	if err != nil {
		progress.fail()
		return nil, err
	}

	summary := cmd.OutOrStdout()
	if dryRun {
		progress.stop()
		if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
			return nil, err
		}
		summary = cmd.ErrOrStderr()
	} else {
		if err := typegen.WriteOutput(cfg.Output, res.Output); err != nil {
			progress.fail()
			return nil, err
		}
		progress.stop()
	}

	fields := []prompts.ResultField{
		{Label: "Layout", Value: renderer.Name()},
		{Label: "Models", Value: strconv.Itoa(len(res.Units))},
		{Label: "Declarations", Value: strconv.Itoa(res.Declarations())},
	}
	if len(res.Skipped) > 0 {
		fields = append(fields, prompts.ResultField{Label: "Skipped", Value: strings.Join(res.Skipped, ", ")})
	}
	msg := "Declarations written to " + cfg.Output
	if dryRun {
		msg = "Dry run, nothing written"
	}
	prompts.PrintResult(summary, fields, msg)

	return res, nil
}

// progress shows a spinner on interactive terminals and stays silent otherwise.
type progress struct {
	spinner *pterm.SpinnerPrinter
}

func newProgress(w io.Writer, text string) *progress {
	if !isTerminal(w) {
		return &progress{}
	}
	spinner, err := pterm.DefaultSpinner.WithWriter(w).WithRemoveWhenDone(true).Start(text)
	if err != nil {
		return &progress{}
	}
	return &progress{spinner: spinner}
}

func (p *progress) update(text string) {
	if p.spinner != nil {
		p.spinner.UpdateText(text)
	}
}

func (p *progress) stop() {
	if p.spinner != nil {
		_ = p.spinner.Stop()
	}
}

func (p *progress) fail() {
	if p.spinner != nil {
		p.spinner.Fail("Generation failed")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
