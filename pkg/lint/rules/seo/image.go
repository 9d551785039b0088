package seo

import (
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "image-required",
			Field:       "image",
			Group:       "seo",
			Description: "Blog posts carry a featured image",
			Severity:    lint.SeverityWarning,
			Check:       checkImageRequired,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "image-alt-required",
			Field:       "imageAlt",
			Group:       "seo",
			Description: "Featured images carry alt text",
			Severity:    lint.SeverityWarning,
			Check:       checkImageAltRequired,
		}
	})
}

func checkImageRequired(item *content.Item, _ *lint.Context) []lint.Result {
	if item.Type != content.TypeBlog || item.Image != "" {
		return nil
	}
	return []lint.Result{{
		Message:    "post has no featured image",
		Suggestion: "set an image in the frontmatter for social previews",
	}}
}

func checkImageAltRequired(item *content.Item, _ *lint.Context) []lint.Result {
	if item.Image == "" || item.ImageAlt != "" {
		return nil
	}
	return []lint.Result{{
		Message:    "featured image has no alt text",
		Suggestion: "describe the image for screen readers and image search",
	}}
}
