package config

import (
	"path/filepath"
	"strings"
)

// Overrides carries command-line values that take precedence over the file.
// Zero values leave the loaded setting alone.
type Overrides struct {
	OutputPath  string
	Format      string
	Weeks       int
	ContentPath string
	LogLevel    string
}

// Apply merges o into c, then re-normalizes and validates. Choosing the yaml
// format without an explicit output path renames the default workouts.json
// to workouts.yaml.
func (c *Config) Apply(o Overrides) error {
	if o.OutputPath != "" {
		c.Output.Path = o.OutputPath
	}
	if o.Format != "" {
		c.Output.Format = o.Format
	}
	if o.Weeks != 0 {
		c.Program.Weeks = o.Weeks
	}
	if o.ContentPath != "" {
		c.Program.ContentPath = o.ContentPath
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if err := c.normalize(); err != nil {
		return err
	}
	if o.OutputPath == "" && c.Output.Format == "yaml" && filepath.Base(c.Output.Path) == defaultOutputPath {
		c.Output.Path = strings.TrimSuffix(c.Output.Path, ".json") + ".yaml"
	}
	return c.Validate()
}
