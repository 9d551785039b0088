package lint

import (
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// ContentDir describes one content directory for the raw-file fallback
// scan of the slug registry.
type ContentDir struct {
	Dir       string
	URLPrefix string
}

// ContextConfig carries everything the context builder needs. It is
// assembled by the caller from loaded configuration.
type ContextConfig struct {
	SiteURL       string
	StaticRoutes  []string
	ContentDirs   []ContentDir
	ImageDirs     []string
	Thresholds    Thresholds
	ByContentType map[content.ContentType]*ThresholdOverride
	GeoTypes      []content.ContentType
	DefaultLocale content.Locale
	Now           time.Time
	Logger        *slog.Logger
}

// Context is the shared, read-only state for one run: the full item set
// (exclusions included, since link and duplicate validation needs them),
// registries of valid link targets and image paths, resolved thresholds,
// and duplicate maps. Frozen once built.
type Context struct {
	Items         []*content.Item
	ExcludedFiles map[string]bool
	DefaultLocale content.Locale
	Now           time.Time

	// Links is the extractor bound to the site domain.
	Links *textmetrics.LinkExtractor

	validLinks  map[string]bool
	validImages map[string]bool
	thresholds  map[content.ContentType]Thresholds
	geoTypes    map[content.ContentType]bool

	dupTitles       map[string][]string
	dupDescriptions map[string][]string

	// inbound maps a normalized internal target to the files linking to it.
	inbound map[string][]string

	keywords keywordCache
}

// BuildContext constructs the run context. Filesystem scans (image
// directories, raw content fallback) happen here, once.
func BuildContext(cfg ContextConfig, items []*content.Item, excludedFiles map[string]bool) *Context {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if excludedFiles == nil {
		excludedFiles = map[string]bool{}
	}

	ctx := &Context{
		Items:           items,
		ExcludedFiles:   excludedFiles,
		DefaultLocale:   cfg.DefaultLocale,
		Now:             cfg.Now,
		Links:           textmetrics.NewLinkExtractor(cfg.SiteURL),
		validLinks:      make(map[string]bool),
		validImages:     make(map[string]bool),
		thresholds:      make(map[content.ContentType]Thresholds),
		geoTypes:        make(map[content.ContentType]bool),
		dupTitles:       make(map[string][]string),
		dupDescriptions: make(map[string][]string),
		inbound:         make(map[string][]string),
	}
	if ctx.Now.IsZero() {
		ctx.Now = time.Now()
	}

	ctx.buildSlugRegistry(cfg, logger)
	ctx.buildImageRegistry(cfg, logger)
	ctx.buildDuplicateMaps()
	ctx.buildInboundLinks()

	for _, t := range []content.ContentType{content.TypeBlog, content.TypePage, content.TypeProject} {
		ctx.thresholds[t] = ResolveThresholds(cfg.Thresholds, cfg.ByContentType[t])
	}
	for _, t := range cfg.GeoTypes {
		ctx.geoTypes[t] = true
	}

	logger.Debug("lint context built",
		"items", len(items),
		"valid_links", len(ctx.validLinks),
		"valid_images", len(ctx.validImages))
	return ctx
}

func (c *Context) buildSlugRegistry(cfg ContextConfig, logger *slog.Logger) {
	add := func(route string) {
		route = strings.TrimSpace(route)
		if route == "" {
			return
		}
		if !strings.HasPrefix(route, "/") {
			route = "/" + route
		}
		withSlash := route
		if withSlash != "/" && !strings.HasSuffix(withSlash, "/") {
			withSlash += "/"
		}
		c.validLinks[strings.TrimSuffix(route, "/")] = true
		c.validLinks[withSlash] = true
		if route == "/" {
			c.validLinks["/"] = true
		}
	}

	for _, r := range cfg.StaticRoutes {
		add(r)
	}
	for _, it := range c.Items {
		add(it.Permalink)
	}

	// Fallback scan over the raw content tree: a file the loader failed to
	// parse still owns its route, and links to it are not broken.
	for _, cd := range cfg.ContentDirs {
		err := filepath.WalkDir(cd.Dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr // a scan failure only weakens the fallback
			}
			ext := filepath.Ext(d.Name())
			if ext != ".md" && ext != ".mdx" && ext != ".html" {
				return nil
			}
			slug := strings.TrimSuffix(d.Name(), ext)
			if slug == "index" || slug == "_index" {
				return nil
			}
			add(strings.TrimSuffix(cd.URLPrefix, "/") + "/" + slug)
			return nil
		})
		if err != nil {
			logger.Debug("content fallback scan failed", "dir", cd.Dir, "error", err)
		}
	}
}

func (c *Context) buildImageRegistry(cfg ContextConfig, logger *slog.Logger) {
	for _, dir := range cfg.ImageDirs {
		root := filepath.Clean(dir)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			site := "/" + filepath.ToSlash(filepath.Join(filepath.Base(root), rel))
			c.validImages[site] = true
			if decoded, decErr := url.PathUnescape(site); decErr == nil && decoded != site {
				c.validImages[decoded] = true
			}
			return nil
		})
		if err != nil {
			logger.Debug("image scan failed", "dir", dir, "error", err)
		}
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeForDuplicates lowercases and collapses whitespace so cosmetic
// differences do not hide duplicate metadata.
func normalizeForDuplicates(s string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

func (c *Context) buildDuplicateMaps() {
	for _, it := range c.Items {
		if t := normalizeForDuplicates(it.Title); t != "" {
			c.dupTitles[t] = append(c.dupTitles[t], it.FilePath)
		}
		if d := normalizeForDuplicates(it.Description); d != "" {
			c.dupDescriptions[d] = append(c.dupDescriptions[d], it.FilePath)
		}
	}
}

func (c *Context) buildInboundLinks() {
	for _, it := range c.Items {
		for _, l := range c.Links.Extract(it.Body) {
			if !l.Internal || strings.HasPrefix(l.URL, "#") {
				continue
			}
			c.inbound[l.Normalized] = append(c.inbound[l.Normalized], it.FilePath)
		}
	}
}

// ThresholdsFor returns the resolved threshold document for a content
// type.
func (c *Context) ThresholdsFor(t content.ContentType) Thresholds {
	if th, ok := c.thresholds[t]; ok {
		return th
	}
	return c.thresholds[content.TypePage]
}

// GeoEnabled reports whether GEO rules apply to the content type.
func (c *Context) GeoEnabled(t content.ContentType) bool {
	return c.geoTypes[t]
}

// LocaleFor resolves an item's locale, falling back to the site default.
func (c *Context) LocaleFor(item *content.Item) content.Locale {
	if item.Locale == "" {
		return c.DefaultLocale
	}
	return content.ParseLocale(item.Locale)
}

// IsValidLink reports whether a normalized internal path resolves to a
// known route.
func (c *Context) IsValidLink(normalized string) bool {
	if c.validLinks[normalized] {
		return true
	}
	if normalized != "/" {
		return c.validLinks[normalized+"/"]
	}
	return false
}

// IsValidImage reports whether a site-absolute image path exists. Both
// the given form and its URL-decoded variant are accepted.
func (c *Context) IsValidImage(path string) bool {
	if c.validImages[path] {
		return true
	}
	if decoded, err := url.PathUnescape(path); err == nil && c.validImages[decoded] {
		return true
	}
	return false
}

// DuplicateTitleFiles returns the files sharing an item's normalized
// title, excluding the item itself.
func (c *Context) DuplicateTitleFiles(item *content.Item) []string {
	return others(c.dupTitles[normalizeForDuplicates(item.Title)], item.FilePath)
}

// DuplicateDescriptionFiles returns the files sharing an item's
// normalized description, excluding the item itself.
func (c *Context) DuplicateDescriptionFiles(item *content.Item) []string {
	return others(c.dupDescriptions[normalizeForDuplicates(item.Description)], item.FilePath)
}

func others(files []string, self string) []string {
	var out []string
	for _, f := range files {
		if f != self {
			out = append(out, f)
		}
	}
	return out
}

// InboundLinks returns the files linking to a normalized internal path.
func (c *Context) InboundLinks(normalized string) []string {
	return c.inbound[normalized]
}

// keywordCache is a read-through cache for the auxiliary keyword file,
// keyed by resolved path. It lives for exactly one run: a fresh Context
// means a fresh cache, so no staleness can leak across runs.
type keywordCache struct {
	mu      sync.Mutex
	entries map[string][]string
}

// Keywords loads the keyword file at path (one keyword per line, "#"
// comments ignored), caching the parsed result for the rest of the run.
func (c *Context) Keywords(path string) ([]string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	c.keywords.mu.Lock()
	defer c.keywords.mu.Unlock()
	if c.keywords.entries == nil {
		c.keywords.entries = make(map[string][]string)
	}
	if cached, ok := c.keywords.entries[resolved]; ok {
		return cached, nil
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, err
	}
	var keywords []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	c.keywords.entries[resolved] = keywords
	return keywords, nil
}
