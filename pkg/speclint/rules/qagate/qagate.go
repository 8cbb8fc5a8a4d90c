// Package qagate provides the final review rules every produced design
// spec must pass before hand-off.
//
// Rules in this package:
//   - QA01: minimum touch target stated
//   - QA02: dynamic type behavior covered
//   - QA03: destructive actions require confirmation
//   - QA04: empty, error, and retry states covered
//   - QA05: VoiceOver guidance present
//   - QA06: privacy disclosure present
package qagate

import (
	"github.com/oil-oil/agent-skills/pkg/speclint"
)

func init() {
	speclint.Register(TouchTarget)
	speclint.Register(DynamicType)
	speclint.Register(DestructiveConfirmation)
	speclint.Register(EmptyErrorRetry)
	speclint.Register(VoiceOver)
	speclint.Register(PrivacyDisclosure)
}

// TouchTarget requires the spec to state minimum touch target sizing.
var TouchTarget = mentionRule(speclint.RuleDef{
	ID:          "QA01",
	Name:        "qagate.touch_target",
	Description: "Spec must state the minimum touch target size.",
	Rationale:   "Controls below the platform minimum fail accessibility review and App Store guidance.",
	Fix:         "State the minimum touch target (44x44pt on iOS) for every interactive element.",
}, "touch target")

// DynamicType requires coverage of dynamic type behavior.
var DynamicType = mentionRule(speclint.RuleDef{
	ID:          "QA02",
	Name:        "qagate.dynamic_type",
	Description: "Spec must describe behavior under Dynamic Type size changes.",
	Rationale:   "Layouts that ignore Dynamic Type truncate or clip for large-text users.",
	Fix:         "Describe how each screen reflows at larger Dynamic Type sizes.",
}, "dynamic type")

// DestructiveConfirmation requires confirmation for destructive actions.
var DestructiveConfirmation = mentionRule(speclint.RuleDef{
	ID:          "QA03",
	Name:        "qagate.destructive_confirmation",
	Description: "Spec must require confirmation for destructive actions.",
	Rationale:   "Unconfirmed destructive actions are the most common cause of data-loss complaints.",
	Fix:         "Document the confirmation step for every destructive action, or state that none exist.",
}, "destructive")

// VoiceOver requires VoiceOver guidance.
var VoiceOver = mentionRule(speclint.RuleDef{
	ID:          "QA05",
	Name:        "qagate.voiceover",
	Description: "Spec must include VoiceOver guidance.",
	Rationale:   "Screens without declared reading order and labels ship broken for VoiceOver users.",
	Fix:         "Add VoiceOver labels, traits, and reading order notes per screen.",
}, "voiceover")

// PrivacyDisclosure requires a privacy disclosure.
var PrivacyDisclosure = mentionRule(speclint.RuleDef{
	ID:          "QA06",
	Name:        "qagate.privacy_disclosure",
	Description: "Spec must disclose what data the feature collects.",
	Rationale:   "Undisclosed data collection blocks App Review and erodes user trust.",
	Fix:         "Add a privacy note covering collected data and where it is disclosed to the user.",
}, "privacy")

// EmptyErrorRetry requires all three of the empty, error, and retry
// states to be addressed; it reports each missing one separately.
var EmptyErrorRetry = speclint.RuleDef{
	ID:          "QA04",
	Name:        "qagate.empty_error_retry",
	Group:       "qagate",
	Description: "Spec must cover empty, error, and retry states.",
	Severity:    speclint.SeverityError,
	Rationale:   "First-run, failure, and recovery are where unspecified screens fall apart.",
	Fix:         "Cover the empty state, the error state, and the retry path for each screen.",
	Check: func(doc *speclint.Document, _ map[string]any) []speclint.Diagnostic {
		var diags []speclint.Diagnostic
		for _, state := range []string{"empty", "error", "retry"} {
			if doc.FindText(state) == 0 {
				diags = append(diags, speclint.Diagnostic{
					RuleID:   "QA04",
					Severity: speclint.SeverityError,
					Message:  "spec does not cover the " + state + " state",
					Line:     1,
				})
			}
		}
		return diags
	},
}

// mentionRule builds a rule requiring the document to mention a topic
// anywhere, case-insensitively.
func mentionRule(def speclint.RuleDef, keywords ...string) speclint.RuleDef {
	def.Group = "qagate"
	def.Severity = speclint.SeverityError
	def.Check = func(doc *speclint.Document, _ map[string]any) []speclint.Diagnostic {
		if doc.FindText(keywords...) != 0 {
			return nil
		}
		return []speclint.Diagnostic{{
			RuleID:   def.ID,
			Severity: def.Severity,
			Message:  def.Description,
			Line:     1,
		}}
	}
	return def
}
