package structure

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/geo"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "structural-elements",
			Field:       "body",
			Group:       "structure",
			Description: "Long documents use varied structural elements",
			Severity:    lint.SeverityWarning,
			Check:       checkStructuralElements,
		}
	})
}

func geoGaps(body string) []geo.HeadingGap {
	return geo.FindHeadingGaps(body)
}

func checkStructuralElements(item *content.Item, _ *lint.Context) []lint.Result {
	words := textmetrics.WordCount(textmetrics.Canonicalize(item.Body))
	expected := geo.ExpectedStructuralElements(words)
	if expected == 0 {
		return nil
	}
	elements := geo.CountStructuralElements(item.Body)
	present := elements.Present()
	if present >= expected {
		return nil
	}

	var missing []string
	if !elements.Table {
		missing = append(missing, "table")
	}
	if !elements.Ordered {
		missing = append(missing, "ordered list")
	}
	if !elements.Unordered {
		missing = append(missing, "unordered list")
	}
	if !elements.Blockquote {
		missing = append(missing, "blockquote")
	}
	if !elements.CodeBlock {
		missing = append(missing, "code block")
	}

	return []lint.Result{{
		Message: fmt.Sprintf("%d words but only %d of %d expected structural element kinds present",
			words, present, expected),
		Suggestion: "consider adding: " + strings.Join(missing, ", "),
	}}
}
