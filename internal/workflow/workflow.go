// Package workflow defines the design workflow the HIG skill walks a
// feature through, from context gathering to the final QA gate.
package workflow

// Step is one stage of the workflow.
type Step struct {
	Title   string   `json:"title"`
	Goal    string   `json:"goal"`
	Actions []string `json:"actions"`
}

// Steps is the ordered workflow. The order matters: each step consumes
// the previous step's output.
var Steps = []Step{
	{
		Title: "Gather context",
		Goal:  "Pin down the feature, its users, and its constraints before touching guidelines.",
		Actions: []string{
			"Name the user goal in one sentence",
			"List the target devices and orientations",
			"Note existing app conventions the feature must respect",
		},
	},
	{
		Title: "Pull platform constraints",
		Goal:  "Collect the non-negotiable guideline constraints for the feature's surface.",
		Actions: []string{
			"Read the layout, typography, and color guidance in the curated reference",
			"Record minimum touch targets and safe-area rules",
			"Record Dynamic Type and localization constraints",
		},
	},
	{
		Title: "Pick interaction patterns",
		Goal:  "Choose navigation and input patterns the platform already teaches users.",
		Actions: []string{
			"Match the flow to a standard navigation pattern",
			"Choose modality deliberately; default to non-modal",
			"Define every interaction state: default, loading, empty, error, retry",
		},
	},
	{
		Title: "Pick components",
		Goal:  "Map each screen element to a system component and record its usage rules.",
		Actions: []string{
			"Prefer system components over custom ones",
			"Cite the guideline page for each component choice",
			"Note any deviation and its justification",
		},
	},
	{
		Title: "Add system integrations",
		Goal:  "Decide which platform capabilities the feature participates in.",
		Actions: []string{
			"Consider Siri, widgets, notifications, and share surfaces",
			"Record required permissions and their privacy disclosures",
		},
	},
	{
		Title: "Produce the spec",
		Goal:  "Assemble the feature design spec with every required section.",
		Actions: []string{
			"User goal, screen map, interaction states, component rules",
			"Accessibility & localization checklist",
			"Telemetry points",
		},
	},
	{
		Title: "QA gate",
		Goal:  "Hold the spec against the final review items; fix gaps before hand-off.",
		Actions: []string{
			"Minimum touch target stated",
			"Dynamic Type behavior covered",
			"Destructive actions confirmed",
			"Empty, error, and retry states covered",
			"VoiceOver guidance present",
			"Privacy disclosure present",
		},
	},
}
