package config

import "time"

// Configfile is the structure of bubbles.yaml. Unset fields keep their
// defaults.
type Configfile struct {
	Version      string         `yaml:"version"`
	Size         *float64       `yaml:"size"`
	Margin       *float64       `yaml:"margin"`
	Padding      *float64       `yaml:"padding"`
	ClickDelay   *time.Duration `yaml:"clickDelay"`
	ZoomDuration *time.Duration `yaml:"zoomDuration"`
	MoveDuration *time.Duration `yaml:"moveDuration"`
	Format       string         `yaml:"format"`
	Assignments  string         `yaml:"assignments"`
	Log          LogDTO         `yaml:"log"`
}

// LogDTO configures logging.
type LogDTO struct {
	JSON bool `yaml:"json"`
}

// SupportedVersion is the only config version understood by this loader.
const SupportedVersion = "1"
