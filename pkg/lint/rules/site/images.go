package site

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "broken-image-path",
			Field:       "body",
			Group:       "site",
			Description: "Image references resolve to files in the image directories",
			Severity:    lint.SeverityError,
			Check:       checkImagePaths,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "missing-image-alt",
			Field:       "body",
			Group:       "site",
			Description: "Body images carry alt text",
			Severity:    lint.SeverityWarning,
			Check:       checkBodyImageAlt,
		}
	})
}

func checkImagePaths(item *content.Item, ctx *lint.Context) []lint.Result {
	var results []lint.Result
	for _, img := range textmetrics.ExtractImages(item.Body) {
		// Only site-absolute paths can be validated against the registry;
		// remote images are out of scope.
		if !strings.HasPrefix(img.Source, "/") {
			continue
		}
		if ctx.IsValidImage(img.Source) {
			continue
		}
		results = append(results, lint.Result{
			Line:       img.Line,
			Message:    fmt.Sprintf("image %q not found in the image directories", img.Source),
			Suggestion: "fix the path or add the missing file",
		})
	}
	return results
}

func checkBodyImageAlt(item *content.Item, _ *lint.Context) []lint.Result {
	var results []lint.Result
	for _, img := range textmetrics.ExtractImages(item.Body) {
		if img.HasAlt {
			continue
		}
		results = append(results, lint.Result{
			Line:       img.Line,
			Message:    fmt.Sprintf("image %q has no alt text", img.Source),
			Suggestion: "describe the image content in the alt attribute",
		})
	}
	return results
}
