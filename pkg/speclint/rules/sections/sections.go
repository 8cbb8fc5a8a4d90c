// Package sections provides rules requiring the six sections every
// produced design spec must contain.
//
// Rules in this package:
//   - SEC01: user goal and context
//   - SEC02: information architecture / screen map
//   - SEC03: interaction states
//   - SEC04: component rules
//   - SEC05: accessibility and localization checklist
//   - SEC06: telemetry points
package sections

import (
	"fmt"

	"github.com/oil-oil/agent-skills/pkg/speclint"
)

func init() {
	speclint.Register(UserGoal)
	speclint.Register(ScreenMap)
	speclint.Register(InteractionStates)
	speclint.Register(ComponentRules)
	speclint.Register(Accessibility)
	speclint.Register(Telemetry)
}

// UserGoal requires a section describing what the user is trying to do.
var UserGoal = sectionRule(speclint.RuleDef{
	ID:          "SEC01",
	Name:        "sections.user_goal",
	Description: "Spec must contain a user goal section.",
	Rationale:   "Every downstream decision in the spec traces back to what the user is trying to accomplish.",
	Fix:         "Add a '## User Goal' section describing the goal and its context.",
}, "user goal", "goal")

// ScreenMap requires an information architecture / screen map section.
var ScreenMap = sectionRule(speclint.RuleDef{
	ID:          "SEC02",
	Name:        "sections.screen_map",
	Description: "Spec must contain an information architecture / screen map section.",
	Rationale:   "Reviewers need the screen inventory and navigation paths before judging any single screen.",
	Fix:         "Add a '## Screen Map' section listing screens and the navigation between them.",
}, "screen map", "information architecture", "screens")

// InteractionStates requires a section covering interaction states.
var InteractionStates = sectionRule(speclint.RuleDef{
	ID:          "SEC03",
	Name:        "sections.interaction_states",
	Description: "Spec must contain an interaction states section.",
	Rationale:   "Loading, empty, error, and success states are where most design gaps hide.",
	Fix:         "Add an '## Interaction States' section covering each state per screen.",
}, "interaction state", "states")

// ComponentRules requires a section on component usage rules.
var ComponentRules = sectionRule(speclint.RuleDef{
	ID:          "SEC04",
	Name:        "sections.component_rules",
	Description: "Spec must contain a component rules section.",
	Rationale:   "Component choices need recorded guideline references so they survive review.",
	Fix:         "Add a '## Component Rules' section naming each component and its usage constraints.",
}, "component")

// Accessibility requires the accessibility and localization checklist.
var Accessibility = sectionRule(speclint.RuleDef{
	ID:          "SEC05",
	Name:        "sections.accessibility_localization",
	Description: "Spec must contain an accessibility and localization checklist.",
	Rationale:   "Accessibility and localization retrofits are far more expensive than upfront checklists.",
	Fix:         "Add an '## Accessibility & Localization' section with the checklist filled in.",
}, "accessibility", "localization")

// Telemetry requires a telemetry points section.
var Telemetry = sectionRule(speclint.RuleDef{
	ID:          "SEC06",
	Name:        "sections.telemetry",
	Description: "Spec must contain a telemetry points section.",
	Rationale:   "Untracked features cannot be evaluated after launch.",
	Fix:         "Add a '## Telemetry' section listing events and their triggers.",
}, "telemetry", "analytics")

// sectionRule builds a rule requiring a non-empty section whose heading
// matches any of the keywords.
func sectionRule(def speclint.RuleDef, keywords ...string) speclint.RuleDef {
	def.Group = "sections"
	def.Severity = speclint.SeverityError
	def.Check = func(doc *speclint.Document, _ map[string]any) []speclint.Diagnostic {
		section := doc.SectionMatching(keywords...)
		if section == nil {
			return []speclint.Diagnostic{{
				RuleID:   def.ID,
				Severity: def.Severity,
				Message:  def.Description,
				Line:     1,
			}}
		}
		if section.IsEmpty() {
			return []speclint.Diagnostic{{
				RuleID:   def.ID,
				Severity: def.Severity,
				Message:  fmt.Sprintf("section %q is empty", section.Title),
				Line:     section.Line,
				Section:  section.Title,
			}}
		}
		return nil
	}
	return def
}
