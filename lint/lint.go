// Package lint is the public entry point: it loads configuration, builds
// the engine over the default rule registry and drives it across files and
// directories. Per-file reports are merged here; the engine itself stays a
// pure function of (tree, config, registry).
package lint

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"gopkg.in/yaml.v3"

	"github.com/apaliavy/golangcodestyle/internal"
	"github.com/apaliavy/golangcodestyle/internal/gosyntax"
	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// Engine is the part of the execution engine the pipeline needs; it lets
// tests substitute a fake.
type Engine interface {
	Run(ctx context.Context, tree *syntax.Tree) (*types.Report, error)
}

// Runner drives the engine over paths and sources.
type Runner struct {
	engine    Engine
	cfg       types.Config
	logger    *zap.Logger
	progress  bool
	analyzers []*analysis.Analyzer
}

// New builds a Runner from a configuration file path. An empty path means
// the zero configuration. The logger may be nil.
func New(configPath string, logger *zap.Logger) (*Runner, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, logger)
}

// NewWithConfig builds a Runner over the default rule registry.
func NewWithConfig(cfg types.Config, logger *zap.Logger) (*Runner, error) {
	registry, err := internal.DefaultRegistry()
	if err != nil {
		return nil, err
	}
	engine, err := internal.NewEngine(registry, cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{engine: engine, cfg: cfg, logger: logger}, nil
}

// ShowProgress enables a progress bar for directory runs.
func (r *Runner) ShowProgress(on bool) {
	r.progress = on
}

// AddAnalyzer runs a golang.org/x/tools analyzer alongside the built-in
// rules. Analyzer findings are appended to each file's report at Warning
// severity; an analyzer that errors becomes a rule fault, not a failed run.
func (r *Runner) AddAnalyzer(a *analysis.Analyzer) {
	r.analyzers = append(r.analyzers, a)
}

// ProcessSource analyzes one in-memory compilation unit.
func (r *Runner) ProcessSource(ctx context.Context, filename string, src []byte) (*types.Report, error) {
	tree, err := gosyntax.ParseFile(filename, src)
	if err != nil {
		return nil, err
	}
	report, err := r.engine.Run(ctx, tree)
	if err != nil {
		return nil, err
	}
	r.runAnalyzers(filename, src, report)
	return report, nil
}

// ProcessPath analyzes one file or directory tree.
func (r *Runner) ProcessPath(ctx context.Context, path string) (*types.Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("access %s: %w", path, err)
	}
	if !info.IsDir() {
		return r.processFile(ctx, path)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".go" && !r.excluded(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	return r.processFiles(ctx, files)
}

// ProcessFiles analyzes the given files and merges their reports in input
// order.
func (r *Runner) ProcessFiles(ctx context.Context, paths []string) (*types.Report, error) {
	var kept []string
	for _, p := range paths {
		if !r.excluded(p) {
			kept = append(kept, p)
		}
	}
	return r.processFiles(ctx, kept)
}

func (r *Runner) processFiles(ctx context.Context, files []string) (*types.Report, error) {
	var bar *progressbar.ProgressBar
	if r.progress && len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("linting"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
		)
	}

	reports := make([]*types.Report, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			report, err := r.processFile(gctx, file)
			if err != nil {
				r.logger.Error("processing file failed", zap.String("file", file), zap.Error(err))
				return err
			}
			mu.Lock()
			reports[i] = report
			mu.Unlock()
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return internal.MergeReports(reports...), nil
}

func (r *Runner) processFile(ctx context.Context, path string) (*types.Report, error) {
	tree, err := gosyntax.ParseFile(path, nil)
	if err != nil {
		return nil, err
	}
	report, err := r.engine.Run(ctx, tree)
	if err != nil {
		return nil, err
	}
	r.runAnalyzers(path, nil, report)
	r.logger.Debug("file analyzed",
		zap.String("file", path),
		zap.Int("findings", len(report.Findings)),
		zap.Int("suppressed", report.Suppressed),
	)
	return report, nil
}

// runAnalyzers appends go/analysis findings to a file's report. Pass src
// as nil to let the analyzer read the file from disk.
func (r *Runner) runAnalyzers(filename string, src []byte, report *types.Report) {
	for _, a := range r.analyzers {
		var input any
		if src != nil {
			input = src
		}
		findings, err := gosyntax.RunAnalyzer(filename, input, a)
		if err != nil {
			r.logger.Error("analyzer failed", zap.String("analyzer", a.Name), zap.Error(err))
			report.Faults = append(report.Faults, types.RuleFault{
				Rule:     a.Name,
				Filename: filename,
				Err:      err.Error(),
			})
			continue
		}
		for i := range findings {
			findings[i].Severity = types.SeverityWarning
		}
		report.Findings = append(report.Findings, findings...)
	}
}

func (r *Runner) excluded(path string) bool {
	for _, pattern := range r.cfg.ExcludedPaths {
		if matched, err := doublestar.Match(pattern, filepath.ToSlash(path)); err == nil && matched {
			return true
		}
	}
	return false
}

// LoadConfig reads a YAML configuration file. An empty path yields the
// zero configuration.
func LoadConfig(path string) (types.Config, error) {
	var cfg types.Config
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns the configuration written by the init command:
// every built-in rule at its default severity.
func DefaultConfig() (types.Config, error) {
	registry, err := internal.DefaultRegistry()
	if err != nil {
		return types.Config{}, err
	}
	cfg := types.Config{
		Name:  "golangcodestyle",
		Rules: make(map[string]types.ConfigRule, registry.Len()),
	}
	for _, rule := range registry.Rules() {
		cfg.Rules[rule.ID()] = types.ConfigRule{Severity: rule.DefaultSeverity()}
	}
	return cfg, nil
}

// Rules exposes the built-in rule set for listings.
func Rules() ([]internal.Rule, error) {
	registry, err := internal.DefaultRegistry()
	if err != nil {
		return nil, err
	}
	return registry.Rules(), nil
}
