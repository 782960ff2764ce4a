package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensetracker/pkg/config"
	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/export"
	"github.com/matzehuels/licensetracker/pkg/integrations/github"
	"github.com/matzehuels/licensetracker/pkg/integrations/pypi"
	"github.com/matzehuels/licensetracker/pkg/license"
	"github.com/matzehuels/licensetracker/pkg/manifest"
	"github.com/matzehuels/licensetracker/pkg/observability"
)

// checkOptions holds the flags of the check command.
type checkOptions struct {
	configPath string
	outputDir  string
	jsonPath   string
	files      []string
	workers    int
	timeout    time.Duration
	show       bool
	noProgress bool
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [PACKAGE...]",
		Short: "Collect the license files of Python packages",
		Long: `Collect the license files of one or more Python packages.

Each PACKAGE is a PyPI name, optionally pinned with "==" (e.g. packaging==21.3).
Unpinned packages resolve to the latest release. Packages can also be read
from requirements*.txt or poetry.lock files with --file. One text report per package
is written to the output directory. Packages without a findable license file
are reported and skipped; any other failure aborts the run.`,
		Example: `  licensetracker check packaging==21.3 requests
  licensetracker check --show --output reports django==4.2.7
  licensetracker check --json licenses.json -w 8 fastapi uvicorn
  licensetracker check -f requirements.txt -f poetry.lock`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(opts.files) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no packages given: pass PACKAGE arguments or --file")
			}
			cfg, err := c.loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return c.runCheck(cmd.Context(), cfg, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: search the working directory)")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "report directory (default from config, \"output\")")
	cmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil, "read packages from a requirements*.txt or poetry.lock file (repeatable)")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "also write all resolved packages to this JSON file")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "packages analyzed concurrently (default from config, 4)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "per-request HTTP timeout (default from config, 10s)")
	cmd.Flags().BoolVar(&opts.show, "show", false, "also print every report as a table")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable the progress bar")

	return cmd
}

// loadConfig loads the config file and applies explicitly set flags on top.
func (c *CLI) loadConfig(cmd *cobra.Command, opts checkOptions) (*config.Config, error) {
	cfg, path, err := config.Load(c.dir(), opts.configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration(opts.timeout)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CLI) runCheck(ctx context.Context, cfg *config.Config, args []string, opts checkOptions) error {
	refs, err := collectRefs(args, opts.files)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID[:8])
	ctx = withLogger(ctx, logger)

	useBar := !opts.noProgress && isTerminal(c.Err) && !c.verbose

	observability.SetHTTPHooks(&httpLogHooks{logger: logger})
	observability.SetAnalysisHooks(&analysisLogHooks{logger: logger, quiet: useBar})
	defer observability.Reset()

	timeout := cfg.Timeout.Std()
	analyzer := license.NewAnalyzer(
		pypi.NewClient(cfg.PyPIURL, timeout),
		nil,
		license.NewResolver(github.NewClient(cfg.GitHubAPIURL, timeout), logger),
		logger,
	)
	batch := license.NewBatch(analyzer, cfg.Workers)

	logger.Debug("checking packages", "count", len(refs), "workers", cfg.Workers, "timeout", timeout)
	prog := newProgress(logger)

	var outcomes []license.Outcome
	run := func(onDone func(license.Outcome)) error {
		var err error
		outcomes, err = batch.Run(ctx, refs, onDone)
		return err
	}
	if useBar {
		err = runWithProgressBar(ctx, c.Err, len(refs), run)
	} else {
		err = run(func(o license.Outcome) {
			logger.Info("analyzed", "package", o.Ref.Name, "skipped", o.IsSkipped())
		})
	}
	if err != nil {
		return err
	}

	c.printOutcomes(outcomes)
	deps := license.Resolved(outcomes)

	sink := export.NewRecorder(c.Out)
	files := &export.FileExporter{Dir: cfg.OutputDir, Sink: sink}
	paths, err := files.Export(deps, cfg.ExtraRows)
	if err != nil {
		return err
	}
	if len(paths) > 0 {
		printInfo(c.Out, "Wrote %d report(s) to %s", len(paths), cfg.OutputDir)
		for _, p := range paths {
			printFile(c.Out, p)
		}
	}

	if opts.jsonPath != "" {
		if err := export.ExportJSON(deps, opts.jsonPath); err != nil {
			return err
		}
		printFile(c.Out, opts.jsonPath)
	}

	if opts.show {
		(&export.ConsoleExporter{Sink: sink}).Export(deps, cfg.ExtraRows)
	}

	prog.done(fmt.Sprintf("Resolved %d of %d packages", len(deps), len(refs)))
	return nil
}

// collectRefs parses command line packages and manifest files into one
// deduplicated list, command line packages first.
func collectRefs(args, files []string) ([]license.PackageRef, error) {
	refs, err := license.ParsePackageRefs(args)
	if err != nil {
		return nil, err
	}
	lists := [][]license.PackageRef{refs}
	for _, f := range files {
		fileRefs, err := manifest.Parse(f)
		if err != nil {
			return nil, err
		}
		lists = append(lists, fileRefs)
	}
	return manifest.Merge(lists...), nil
}

// printOutcomes prints one status line per package in input order.
func (c *CLI) printOutcomes(outcomes []license.Outcome) {
	for _, o := range outcomes {
		if o.IsSkipped() {
			printWarning(c.Out, "%s (%s) No licenses found", o.Ref.Name, o.Skipped.Version)
			printDetail(c.Out, "%s", o.Skipped.Reason)
			continue
		}
		dep := o.Dependency
		if len(dep.Licenses) > 1 {
			printSuccess(c.Out, "%s %s", dep, StyleWarning.Render("Found multiple license files"))
		} else {
			printSuccess(c.Out, "%s", dep)
		}
	}
}
