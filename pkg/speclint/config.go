package speclint

// Config controls which rules run and at what severity.
type Config struct {
	// Disabled rule IDs.
	Disabled map[string]bool
	// SeverityOverrides maps rule ID to a replacement severity.
	SeverityOverrides map[string]Severity
	// RuleOptions maps rule ID to rule-specific options.
	RuleOptions map[string]map[string]any
}

// NewConfig returns an empty configuration (all rules enabled at their
// default severity).
func NewConfig() *Config {
	return &Config{
		Disabled:          make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// Disable turns a rule off.
func (c *Config) Disable(ruleID string) {
	c.Disabled[ruleID] = true
}

// IsDisabled reports whether a rule is disabled.
func (c *Config) IsDisabled(ruleID string) bool {
	return c.Disabled[ruleID]
}

// GetSeverity returns the effective severity for a rule, applying any
// override to the given default.
func (c *Config) GetSeverity(ruleID string, def Severity) Severity {
	if sev, ok := c.SeverityOverrides[ruleID]; ok {
		return sev
	}
	return def
}

// GetRuleOptions returns rule-specific options, which may be nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	return c.RuleOptions[ruleID]
}
