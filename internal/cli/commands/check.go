package commands

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sitelint/internal/cli/output"
	"github.com/leapstack-labs/sitelint/internal/config"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Path     string   // File or directory path filter
	Format   string   // Output format
	Rules    []string // Run only specific rules
	Disable  []string // Rule names to disable
	Severity string   // Minimum severity: error, warning
	Watch    bool     // Re-run on content changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Run content lint rules",
		Long: `Analyze the site's content for SEO, structure, prose quality, and
AI-citation issues, and report every violation found.

Rules and thresholds are configured in sitelint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check all content
  sitelint check

  # Check one directory
  sitelint check content/blog

  # Output as JSON
  sitelint check --format json

  # Disable specific rules
  sitelint check --disable orphaned-page,faq-presence

  # Only report errors
  sitelint check --severity error

  # Re-run on every content change
  sitelint check --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule names to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when content changes")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if opts.Format != "" {
		mode = output.Mode(opts.Format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	pipeOpts := pipelineOptions{
		PathFilter: opts.Path,
		Only:       opts.Rules,
		Disable:    opts.Disable,
	}

	runOnce := func() (bool, error) {
		run, err := runPipeline(cfg, logger, pipeOpts)
		if err != nil {
			return false, err
		}
		run.Results = filterBySeverity(run.Results, opts.Severity)
		return renderCheckResults(r, run), nil
	}

	if opts.Watch {
		return watchAndCheck(cmd, cfg, r, runOnce)
	}

	failed, err := runOnce()
	if err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("lint issues found")
	}
	return nil
}

// filterBySeverity drops results below the threshold. "error" keeps only
// errors; anything else keeps everything.
func filterBySeverity(results []lint.Result, threshold string) []lint.Result {
	if threshold != "error" {
		return results
	}
	var out []lint.Result
	for _, res := range results {
		if res.Severity == lint.SeverityError {
			out = append(out, res)
		}
	}
	return out
}

// renderCheckResults writes the run output and reports whether any
// violations remain.
func renderCheckResults(r *output.Renderer, run lint.RunResult) bool {
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(run)
		return len(run.Results) > 0
	}

	if len(run.Results) == 0 {
		r.Success("No content issues found")
		r.Println(output.SummaryTable(run.Summary))
		return false
	}

	styles := r.Styles()
	currentFile := ""
	for _, res := range run.Results {
		if res.File != currentFile {
			if currentFile != "" {
				r.Println("")
			}
			currentFile = res.File
			r.Println(styles.FilePath.Render(currentFile))
		}
		loc := "-"
		if res.Line > 0 {
			loc = fmt.Sprintf("%d", res.Line)
		}
		sev := styles.Warning.Render("warning")
		if res.Severity == lint.SeverityError {
			sev = styles.Error.Render("error  ")
		}
		r.Printf("  %s  %s  %s [%s]  %s\n",
			styles.Muted.Render(fmt.Sprintf("%-4s", loc)),
			sev,
			styles.Bold.Render(res.Rule),
			res.Field,
			res.Message,
		)
		if res.Suggestion != "" {
			r.Println(styles.Muted.Render("          hint: " + res.Suggestion))
		}
	}

	r.Println("")
	r.Println(output.SummaryTable(run.Summary))
	return true
}

// watchAndCheck re-runs the check whenever a content file changes.
func watchAndCheck(cmd *cobra.Command, cfg *config.Config, r *output.Renderer, runOnce func() (bool, error)) error {
	if _, err := runOnce(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, cp := range cfg.ContentPaths {
		if err := watchDirRecursive(watcher, cp.Dir); err != nil {
			r.Errorf("failed to watch %s: %v\n", cp.Dir, err)
		}
	}
	r.Println(r.Styles().Muted.Render("Watching for content changes... (ctrl-c to stop)"))

	var debounceTimer *time.Timer
	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			ext := filepath.Ext(event.Name)
			if ext != ".md" && ext != ".mdx" && ext != ".html" && ext != ".yaml" && ext != ".yml" {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				r.Println("")
				r.Println(r.Styles().Muted.Render("Change detected: " + event.Name))
				_, _ = runOnce()
			})

		case watchErr := <-watcher.Errors:
			r.Errorf("watch error: %v\n", watchErr)
		}
	}
}

// watchDirRecursive adds a directory and all subdirectories to the
// watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
