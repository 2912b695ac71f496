package config

import (
	"log"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// Rule is a configuration rule. Each rule contains a glob pattern matching
// the path of a corpus file; if the rule matches, its Config overlay is
// applied on top of whatever preceded it.
type Rule struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Config  Config `json:"config"`
}

// RuleSet is a set of configuration rules. If multiple rules match a file
// path, they are applied in order.
type RuleSet struct {
	Rules []Rule
}

func (rs *RuleSet) Validate() error {
	for _, rule := range rs.Rules {
		if rule.Pattern == "" {
			return errors.Errorf("config rule %q has an empty pattern", rule.Name)
		}
		if !doublestar.ValidatePattern(rule.Pattern) {
			return errors.Errorf("config rule %q has an invalid pattern %q", rule.Name, rule.Pattern)
		}
	}
	return nil
}

// ConfigForPath returns the configuration for a specific corpus file path,
// applying every matching rule's overlay in order on top of the default.
// Matching is the same doublestar "**" glob the corpus subcommand uses to
// discover files in the first place (cmd/bashscan/corpus_cmd.go), so one
// pattern syntax covers both "which files to scan" and "which rule applies".
func (rs *RuleSet) ConfigForPath(path string) Config {
	c := DefaultConfig()
	for _, rule := range rs.Rules {
		matched, err := doublestar.Match(rule.Pattern, path)
		if err != nil {
			log.Printf("config rule %q has an unmatchable pattern %q: %v\n", rule.Name, rule.Pattern, err)
			continue
		}
		if matched {
			log.Printf("applying config rule %q with pattern %q for path %q\n", rule.Name, rule.Pattern, path)
			c.Apply(rule.Config)
		}
	}
	return c
}
