package geo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	geodetect "github.com/leapstack-labs/sitelint/pkg/geo"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

const (
	minFAQPairs = 3

	// Presence check accepts the broad range; the quality check holds
	// answers to the tighter extractable band.
	presenceMinAnswerWords = 20
	presenceMaxAnswerWords = 150
	qualityMinAnswerWords  = 30
	qualityMaxAnswerWords  = 75

	faqFloorWords = 800
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "faq-presence",
			Field:       "body",
			Group:       "geo",
			Description: "Long content carries a FAQ section with at least three Q/A pairs",
			Severity:    lint.SeverityWarning,
			Check:       checkFAQPresence,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "faq-quality",
			Field:       "body",
			Group:       "geo",
			Description: "FAQ questions read as questions and answers stay extractable",
			Severity:    lint.SeverityWarning,
			Check:       checkFAQQuality,
		}
	})
}

func checkFAQPresence(item *content.Item, ctx *lint.Context) []lint.Result {
	if !ctx.GeoEnabled(item.Type) {
		return nil
	}
	words := textmetrics.WordCount(textmetrics.Canonicalize(item.Body))
	if words < faqFloorWords {
		return nil
	}

	faq := geodetect.FindFAQ(item.Body)
	if faq == nil {
		return []lint.Result{{
			Message:    fmt.Sprintf("%d words but no FAQ section", words),
			Suggestion: "add a FAQ with the questions readers ask about this topic",
		}}
	}
	if len(faq.Pairs) < minFAQPairs {
		return []lint.Result{{
			Line: faq.Heading.Line,
			Message: fmt.Sprintf("FAQ has %d question(s), fewer than the minimum %d",
				len(faq.Pairs), minFAQPairs),
			Suggestion: "cover at least three distinct questions",
		}}
	}
	return nil
}

func checkFAQQuality(item *content.Item, ctx *lint.Context) []lint.Result {
	if !ctx.GeoEnabled(item.Type) {
		return nil
	}
	faq := geodetect.FindFAQ(item.Body)
	if faq == nil || len(faq.Pairs) == 0 {
		return nil
	}
	locale := ctx.LocaleFor(item)

	var results []lint.Result

	presence := geodetect.AssessFAQ(faq, locale, presenceMinAnswerWords, presenceMaxAnswerWords)
	if presence.QuestionRatio < 1 {
		results = append(results, lint.Result{
			Line: faq.Heading.Line,
			Message: fmt.Sprintf("%.0f%% of FAQ entries are phrased as questions",
				presence.QuestionRatio*100),
			Suggestion: "phrase every FAQ entry as a question",
		})
	}
	if presence.AnswerInRange < 1 {
		quality := geodetect.AssessFAQ(faq, locale, qualityMinAnswerWords, qualityMaxAnswerWords)
		results = append(results, lint.Result{
			Line: faq.Heading.Line,
			Message: fmt.Sprintf("%.0f%% of FAQ answers fall in the %d-%d word range (%.0f%% in the strict %d-%d band)",
				presence.AnswerInRange*100, presenceMinAnswerWords, presenceMaxAnswerWords,
				quality.AnswerInRange*100, qualityMinAnswerWords, qualityMaxAnswerWords),
			Suggestion: "keep each answer self-contained, roughly one short paragraph",
		})
	}
	return results
}
