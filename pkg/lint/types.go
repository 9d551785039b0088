// Package lint defines the rule contract, the ordered rule registry, the
// shared cross-document context, and the runner that turns configuration
// plus content into an ordered list of violations.
package lint

import (
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

// Severity indicates the weight of a violation.
type Severity int

// Severity levels for violations.
const (
	// SeverityError indicates an issue that should block publishing.
	SeverityError Severity = iota
	// SeverityWarning indicates an issue worth reviewing.
	SeverityWarning
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// MarshalJSON encodes the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ParseSeverity converts a string to a Severity value. Returns the
// severity and true if valid, or SeverityWarning and false otherwise.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	default:
		return SeverityWarning, false
	}
}

// Result is a single violation. Results are value objects: created by rule
// evaluation, never mutated, collected in item-order x rule-order.
type Result struct {
	File       string   `json:"file"`
	Field      string   `json:"field"`
	Rule       string   `json:"rule"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Line       int      `json:"line,omitempty"` // 1-indexed into Body; 0 means whole document
}

// CheckFunc evaluates one item against the shared context. Checks must be
// pure: no mutation of the item or context, deterministic for identical
// inputs.
type CheckFunc func(item *content.Item, ctx *Context) []Result

// RuleDef is a fully constructed rule: either a static definition or the
// product of a factory closed over resolved configuration.
type RuleDef struct {
	Name        string   // unique identifier, e.g. "title-length"
	Field       string   // the item field the rule speaks about
	Group       string   // category: "seo", "site", "structure", "quality", "geo"
	Description string   // human-readable description
	Severity    Severity // effective severity after overrides
	FixStrategy string   // hint for external tooling; empty when manual
	Check       CheckFunc
	Disabled    bool // set by an "off" override; Check is then constant-empty
}

// RuleInfo is rule metadata for documentation and external tooling.
type RuleInfo struct {
	Name        string `json:"name"`
	Field       string `json:"field,omitempty"`
	Group       string `json:"group"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	FixStrategy string `json:"fix_strategy,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// Info extracts metadata from a rule definition.
func (d RuleDef) Info() RuleInfo {
	return RuleInfo{
		Name:        d.Name,
		Field:       d.Field,
		Group:       d.Group,
		Description: d.Description,
		Severity:    d.Severity.String(),
		FixStrategy: d.FixStrategy,
		Disabled:    d.Disabled,
	}
}

// Summary aggregates a run's outcome.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Passed   int `json:"passed"`   // items with zero violations
	Excluded int `json:"excluded"` // items skipped by exclusion config
	Total    int `json:"total"`    // items evaluated
}
