package domain

import "time"

// Output formats for rendered frames.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Settings is the resolved project configuration.
type Settings struct {
	Size         float64
	Margin       float64
	Padding      float64
	ClickDelay   time.Duration
	ZoomDuration time.Duration
	MoveDuration time.Duration
	Format       string
	Assignments  string
	LogJSON      bool
}

// DefaultSettings returns the settings used when no config file is found.
func DefaultSettings() Settings {
	return Settings{
		Size:         DefaultSize,
		Margin:       PageMargin,
		Padding:      NodePadding,
		ClickDelay:   ClickDelay,
		ZoomDuration: ZoomDuration,
		MoveDuration: MoveDuration,
		Format:       FormatSVG,
	}
}
