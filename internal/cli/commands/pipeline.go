package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/leapstack-labs/sitelint/internal/config"
	"github.com/leapstack-labs/sitelint/internal/loader"
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"

	// Rule packages register through init(); this import order fixes the
	// rule-definition order and with it the output order.
	_ "github.com/leapstack-labs/sitelint/pkg/lint/rules/geo"
	_ "github.com/leapstack-labs/sitelint/pkg/lint/rules/quality"
	_ "github.com/leapstack-labs/sitelint/pkg/lint/rules/seo"
	_ "github.com/leapstack-labs/sitelint/pkg/lint/rules/site"
	_ "github.com/leapstack-labs/sitelint/pkg/lint/rules/structure"
)

// pipelineOptions narrow one run: extra rule overrides from flags and an
// optional path filter.
type pipelineOptions struct {
	PathFilter string
	Only       []string // run only these rules
	Disable    []string // additionally disable these rules
}

// runPipeline executes one full lint run: load content, build the
// context and registry, evaluate.
func runPipeline(cfg *config.Config, logger *slog.Logger, opts pipelineOptions) (lint.RunResult, error) {
	loaded := loader.Load(cfg, logger)
	if loaded.Failed > 0 {
		logger.Warn("some content files failed to load", "failed", loaded.Failed)
	}

	items := loaded.Items
	if opts.PathFilter != "" {
		items = filterItemsByPath(items, opts.PathFilter)
	}

	contextCfg := lint.ContextConfig{
		SiteURL:       cfg.SiteURL,
		StaticRoutes:  cfg.StaticRoutes,
		ContentDirs:   contentDirs(cfg),
		ImageDirs:     cfg.ImageDirectories,
		Thresholds:    cfg.ResolvedThresholds(),
		ByContentType: cfg.ByContentType(),
		GeoTypes:      cfg.GeoTypes(),
		DefaultLocale: cfg.DefaultLocale(),
		Now:           time.Now(),
		Logger:        logger,
	}
	ctx := lint.BuildContext(contextCfg, loaded.Items, loaded.ExcludedFiles)

	params := cfg.Params()
	params.Now = ctx.Now

	overrides := make(map[string]string, len(cfg.Rules)+len(opts.Disable))
	for name, value := range cfg.Rules {
		overrides[name] = value
	}
	for _, name := range opts.Disable {
		overrides[name] = "off"
	}

	defs, err := lint.BuildRegistry(params, overrides)
	if err != nil {
		return lint.RunResult{}, fmt.Errorf("failed to build rule registry: %w", err)
	}
	if len(opts.Only) > 0 {
		defs = filterDefsByName(defs, opts.Only)
	}

	runner := lint.NewRunner(defs, ctx, logger)
	return runner.Run(items), nil
}

func contentDirs(cfg *config.Config) []lint.ContentDir {
	dirs := make([]lint.ContentDir, 0, len(cfg.ContentPaths))
	for _, cp := range cfg.ContentPaths {
		dirs = append(dirs, lint.ContentDir{Dir: cp.Dir, URLPrefix: cp.URLPrefix})
	}
	return dirs
}

func filterItemsByPath(items []*content.Item, prefix string) []*content.Item {
	prefix = filepath.Clean(prefix)
	var out []*content.Item
	for _, it := range items {
		clean := filepath.Clean(it.FilePath)
		if clean == prefix || strings.HasPrefix(clean, prefix+string(filepath.Separator)) {
			out = append(out, it)
		}
	}
	return out
}

func filterDefsByName(defs []lint.RuleDef, names []string) []lint.RuleDef {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []lint.RuleDef
	for _, d := range defs {
		if wanted[d.Name] {
			out = append(out, d)
		}
	}
	return out
}
