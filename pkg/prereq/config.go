package prereq

import (
	"fmt"
)

// Config is the YAML configuration of the prerequisite checker.
type Config struct {
	Executor ExecutorConfig `yaml:"executor"`
	Checks   ChecksConfig   `yaml:"checks"`
	Report   ReportConfig   `yaml:"report"`
}

type ExecutorConfig struct {
	// Parallel dispatches checks concurrently. Results keep registration order either way.
	Parallel bool `yaml:"parallel"`
	// MaxConcurrency bounds parallel dispatch; 0 means one goroutine per check.
	MaxConcurrency int `yaml:"maxConcurrency"`
}

type ChecksConfig struct {
	// Disabled lists check IDs that are not registered.
	Disabled []string `yaml:"disabled"`
}

type ReportConfig struct {
	// FailOnWarning makes a WARNING verdict block the operation.
	FailOnWarning bool `yaml:"failOnWarning"`
}

// IsValid implements configmanager.ConfigValidator.
func (c *Config) IsValid() error {
	if c.Executor.MaxConcurrency < 0 {
		return fmt.Errorf("config executor maxConcurrency must not be negative, got %d", c.Executor.MaxConcurrency)
	}
	seen := map[string]bool{}
	for _, id := range c.Checks.Disabled {
		if id == "" {
			return fmt.Errorf("config checks disabled contains an empty check ID")
		}
		if seen[id] {
			return fmt.Errorf("config checks disabled lists %s more than once", id)
		}
		seen[id] = true
	}
	return nil
}

// IsDisabled reports whether the check with the given ID is disabled.
func (c *Config) IsDisabled(id string) bool {
	for _, d := range c.Checks.Disabled {
		if d == id {
			return true
		}
	}
	return false
}
