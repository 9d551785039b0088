package geo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	geodetect "github.com/leapstack-labs/sitelint/pkg/geo"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

const (
	tableFloorWords   = 1000
	triggerFloorWords = 1000
)

// defaultExtractionTriggers introduce blocks answer engines lift wholesale.
var defaultExtractionTriggers = []string{
	"key takeaways", "step by step", "in summary", "at a glance",
	"das wichtigste", "schritt für schritt", "auf einen blick",
}

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "table-presence",
			Field:       "body",
			Group:       "geo",
			Description: "Long comparative content includes at least one table",
			Severity:    lint.SeverityWarning,
			Check:       checkTablePresence,
		}
	})
	lint.Register(newExtractionTriggersRule)
}

func checkTablePresence(item *content.Item, ctx *lint.Context) []lint.Result {
	if !ctx.GeoEnabled(item.Type) {
		return nil
	}
	words := textmetrics.WordCount(textmetrics.Canonicalize(item.Body))
	if words < tableFloorWords || geodetect.HasTable(item.Body) {
		return nil
	}
	return []lint.Result{{
		Message:    fmt.Sprintf("%d words without a single table", words),
		Suggestion: "summarize comparisons or figures in a markdown table",
	}}
}

func newExtractionTriggersRule(p *lint.Params) lint.RuleDef {
	triggers := p.Geo.ExtractionTriggers
	if len(triggers) == 0 {
		triggers = defaultExtractionTriggers
	}
	return lint.RuleDef{
		Name:        "extraction-triggers",
		Field:       "body",
		Group:       "geo",
		Description: "Long content offers an extraction-ready block (takeaways, steps)",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, ctx *lint.Context) []lint.Result {
			if !ctx.GeoEnabled(item.Type) {
				return nil
			}
			words := textmetrics.WordCount(textmetrics.Canonicalize(item.Body))
			if words < triggerFloorWords {
				return nil
			}
			if len(geodetect.FindTriggerBlocks(item.Body, triggers)) > 0 {
				return nil
			}
			return []lint.Result{{
				Message:    fmt.Sprintf("%d words without an extraction-ready block", words),
				Suggestion: "add a \"key takeaways\" list or numbered steps",
			}}
		},
	}
}
