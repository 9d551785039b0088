package lint

import (
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

// RunResult is the outcome of one full lint run.
type RunResult struct {
	Results []Result   `json:"results"`
	Summary Summary    `json:"summary"`
	Rules   []RuleInfo `json:"rules"`
}

// Runner evaluates items against a built registry and context.
type Runner struct {
	defs   []RuleDef
	ctx    *Context
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger falls back to slog.Default.
func NewRunner(defs []RuleDef, ctx *Context, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{defs: defs, ctx: ctx, logger: logger}
}

// Run evaluates every non-excluded item against every rule. Items are
// processed concurrently; per-item results are buffered and concatenated
// in item order, so the output order is exactly item-order x
// rule-definition-order, identical to a sequential run.
func (r *Runner) Run(items []*content.Item) RunResult {
	perItem := make([][]Result, len(items))
	excluded := 0
	evaluated := make([]bool, len(items))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	for i, item := range items {
		if r.ctx.ExcludedFiles[item.FilePath] {
			excluded++
			continue
		}
		evaluated[i] = true
		g.Go(func() error {
			results := r.evaluateItem(item)
			mu.Lock()
			perItem[i] = results
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // evaluation goroutines never return errors

	run := RunResult{Rules: Metadata(r.defs)}
	for i := range items {
		if !evaluated[i] {
			continue
		}
		run.Summary.Total++
		if len(perItem[i]) == 0 {
			run.Summary.Passed++
		}
		for _, res := range perItem[i] {
			switch res.Severity {
			case SeverityError:
				run.Summary.Errors++
			case SeverityWarning:
				run.Summary.Warnings++
			}
			run.Results = append(run.Results, res)
		}
	}
	run.Summary.Excluded = excluded
	return run
}

// evaluateItem runs every rule against one item in definition order.
func (r *Runner) evaluateItem(item *content.Item) []Result {
	var out []Result
	for i := range r.defs {
		out = append(out, r.evaluateRule(&r.defs[i], item)...)
	}
	return out
}

// evaluateRule isolates a single (rule, item) evaluation: a panic inside
// a check is logged and coerced to zero violations so one faulty rule can
// never abort the run.
func (r *Runner) evaluateRule(def *RuleDef, item *content.Item) (results []Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("rule evaluation failed",
				"rule", def.Name,
				"file", item.FilePath,
				"panic", rec)
			results = nil
		}
	}()

	results = def.Check(item, r.ctx)
	// Stamp identity fields the checks leave blank.
	for i := range results {
		if results[i].File == "" {
			results[i].File = item.FilePath
		}
		if results[i].Rule == "" {
			results[i].Rule = def.Name
		}
		if results[i].Field == "" {
			results[i].Field = def.Field
		}
		results[i].Severity = def.Severity
	}
	return results
}
