package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sitelint/internal/cli/output"
	"github.com/leapstack-labs/sitelint/internal/config"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-name]",
		Short: "List available lint rules",
		Long: `List all available content lint rules with their documentation.

Rules are organized by group (seo, site, structure, quality, geo).
Severity overrides from sitelint.yaml are reflected in the listing.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  sitelint rules

  # Show details for one rule
  sitelint rules title-length

  # List the GEO rules only
  sitelint rules --group geo

  # Output as JSON
  sitelint rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// ruleMetadata builds the effective rule listing for the loaded config.
func ruleMetadata() ([]lint.RuleInfo, error) {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	defs, err := lint.BuildRegistry(cfg.Params(), cfg.Rules)
	if err != nil {
		return nil, err
	}
	return lint.Metadata(defs), nil
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := newRenderer(cmd, opts.Format)

	rules, err := ruleMetadata()
	if err != nil {
		return err
	}
	if opts.Group != "" {
		var filtered []lint.RuleInfo
		for _, ri := range rules {
			if ri.Group == opts.Group {
				filtered = append(filtered, ri)
			}
		}
		rules = filtered
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{"rules": rules, "count": len(rules)})
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules)
	default:
		return listRulesText(r, rules)
	}
}

func listRulesText(r *output.Renderer, rules []lint.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Content Lint Rules (%d)", len(rules))))
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println(styles.Header2.Render(capitalizeFirst(currentGroup)))
		}
		sev := styles.Warning
		if rule.Severity == "error" {
			sev = styles.Error
		}
		label := rule.Name
		if rule.Disabled {
			label += " (off)"
		}
		r.Printf("  %s - %s - %s\n",
			styles.Bold.Render(label),
			rule.Description,
			sev.Render(rule.Severity),
		)
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'sitelint rules <rule-name>' for details"))
	r.Println("")
	return nil
}

func listRulesMarkdown(r *output.Renderer, rules []lint.RuleInfo) error {
	r.Println("# Content Lint Rules")
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println("## " + capitalizeFirst(currentGroup))
			r.Println("")
		}
		suffix := ""
		if rule.Disabled {
			suffix = " _(off)_"
		}
		r.Printf("- **%s** - %s (`%s`)%s\n", rule.Name, rule.Description, rule.Severity, suffix)
	}
	r.Println("")
	return nil
}

func showRule(cmd *cobra.Command, name string, opts *RulesOptions) error {
	r := newRenderer(cmd, opts.Format)

	rules, err := ruleMetadata()
	if err != nil {
		return err
	}
	var rule *lint.RuleInfo
	for i := range rules {
		if rules[i].Name == name {
			rule = &rules[i]
			break
		}
	}
	if rule == nil {
		return fmt.Errorf("rule %q not found", name)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule)
	case output.ModeMarkdown:
		r.Printf("# %s\n\n", rule.Name)
		r.Printf("**Group:** %s | **Field:** %s | **Severity:** `%s`\n\n", rule.Group, rule.Field, rule.Severity)
		r.Println(rule.Description)
		return nil
	default:
		styles := r.Styles()
		r.Println("")
		r.Println(styles.Header1.Render(rule.Name))
		r.Println("")
		r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
		r.Printf("  %s: %s\n", styles.Bold.Render("Field"), rule.Field)
		r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.Severity)
		if rule.Disabled {
			r.Printf("  %s: disabled in configuration\n", styles.Bold.Render("Status"))
		}
		r.Println("")
		r.Println("  " + rule.Description)
		r.Println("")
		return nil
	}
}

// newRenderer builds a renderer honoring the config default and an
// optional per-command format flag.
func newRenderer(cmd *cobra.Command, format string) *output.Renderer {
	mode := output.ModeAuto
	if cfg := config.GetCurrentConfig(); cfg != nil && cfg.OutputFormat != "" {
		mode = output.Mode(cfg.OutputFormat)
	}
	if format != "" {
		mode = output.Mode(format)
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
