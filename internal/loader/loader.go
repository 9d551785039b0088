package loader

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leapstack-labs/sitelint/internal/config"
	"github.com/leapstack-labs/sitelint/pkg/content"
)

// Result is a loaded content set: every parsed item plus the files
// marked excluded by slug or category. Excluded items stay in the set
// because cross-document checks (duplicates, links) still see them.
type Result struct {
	Items         []*content.Item
	ExcludedFiles map[string]bool
	Failed        int
}

// Load walks the configured content paths and parses every content file.
func Load(cfg *config.Config, logger *slog.Logger) *Result {
	if logger == nil {
		logger = slog.Default()
	}
	res := &Result{ExcludedFiles: make(map[string]bool)}

	excludeSlug := make(map[string]bool, len(cfg.ExcludeSlugs))
	for _, s := range cfg.ExcludeSlugs {
		excludeSlug[s] = true
	}
	excludeCategory := make(map[string]bool, len(cfg.ExcludeCategories))
	for _, c := range cfg.ExcludeCategories {
		excludeCategory[strings.ToLower(c)] = true
	}

	for _, cp := range cfg.ContentPaths {
		err := filepath.WalkDir(cp.Dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("content walk error", "path", path, "error", err)
				return nil //nolint:nilerr // per-file isolation
			}
			if d.IsDir() {
				return nil
			}
			item, ok := loadFile(path, cp, logger)
			if !ok {
				res.Failed++
				return nil
			}
			if item == nil {
				return nil
			}
			res.Items = append(res.Items, item)
			if excluded(item, excludeSlug, excludeCategory) {
				res.ExcludedFiles[item.FilePath] = true
			}
			return nil
		})
		if err != nil {
			logger.Warn("content walk failed", "dir", cp.Dir, "error", err)
		}
	}
	return res
}

// loadFile parses one content file. The second return is false on a load
// error; a (nil, true) return means the file is not content (wrong
// extension, index file).
func loadFile(path string, cp config.ContentPath, logger *slog.Logger) (*content.Item, bool) {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".mdx" && ext != ".html" {
		return nil, true
	}
	base := strings.TrimSuffix(filepath.Base(path), ext)
	if base == "index" || base == "_index" {
		return nil, true
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("skipping unreadable content file", "file", path, "error", err)
		return nil, false
	}

	fm, body, err := ExtractFrontmatter(string(raw))
	if err != nil {
		logger.Warn("skipping content file with bad frontmatter", "file", path, "error", err)
		return nil, false
	}

	if ext == ".html" {
		md, convErr := htmltomarkdown.ConvertString(body)
		if convErr != nil {
			logger.Warn("skipping unconvertible HTML file", "file", path, "error", convErr)
			return nil, false
		}
		body = md
	}

	slug := fm.Slug
	if slug == "" {
		slug = base
	}
	permalink := fm.Permalink
	if permalink == "" {
		permalink = fm.URL
	}
	if permalink == "" {
		permalink = strings.TrimSuffix(cp.URLPrefix, "/") + "/" + slug
	}
	locale := fm.Locale
	if locale == "" {
		locale = cp.DefaultLocale
	}

	return &content.Item{
		Title:          fm.Title,
		Slug:           slug,
		Description:    fm.Description,
		Permalink:      permalink,
		Body:           body,
		Type:           content.ContentType(cp.Type),
		Locale:         locale,
		Date:           fm.Date,
		UpdatedAt:      fm.Updated,
		Author:         fm.Author,
		Image:          fm.Image,
		ImageAlt:       fm.ImageAlt,
		Categories:     fm.Categories,
		TranslationKey: fm.TranslationKey,
		Draft:          fm.Draft,
		NoIndex:        fm.NoIndex,
		FilePath:       path,
	}, true
}

func excluded(item *content.Item, bySlug, byCategory map[string]bool) bool {
	if bySlug[item.Slug] {
		return true
	}
	for _, c := range item.Categories {
		if byCategory[strings.ToLower(c)] {
			return true
		}
	}
	return false
}
