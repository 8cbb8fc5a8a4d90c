// Package speclint checks produced feature design specs against the
// skill's editorial criteria.
//
// Rules are data-driven: rule packages register RuleDef values from
// init() and an Analyzer runs every registered rule against a parsed
// document. Two groups ship with the skill:
//
//   - sections: the six required spec sections (user goal, screen map,
//     interaction states, component rules, accessibility & localization,
//     telemetry)
//   - qagate: the six review items every spec must address (touch
//     targets, dynamic type, destructive confirmation, empty/error/retry
//     states, VoiceOver, privacy disclosure)
//
// Import the rules packages for their side effects:
//
//	import (
//		_ "github.com/oil-oil/agent-skills/pkg/speclint/rules/qagate"
//		_ "github.com/oil-oil/agent-skills/pkg/speclint/rules/sections"
//	)
package speclint
