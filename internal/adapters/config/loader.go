// Package config loads bubbles.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader reading from the real file system.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: OSFS{}}
}

// Load returns the settings for cwd: the defaults overlaid with the nearest
// bubbles.yaml at or above cwd.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path, err := l.DiscoverConfigPath(cwd)
	if err != nil || path == "" {
		return settings, err
	}

	var file Configfile
	if err := readAndUnmarshalYAML(l.FS, path, &file); err != nil {
		return settings, zerr.With(err, "path", path)
	}
	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s: unknown version %q, reading as version %s", path, file.Version, SupportedVersion))
	}

	apply(&settings, &file, filepath.Dir(path))
	if err := validate(settings); err != nil {
		return settings, zerr.With(err, "path", path)
	}
	return settings, nil
}

// DiscoverConfigPath walks up from cwd and returns the first bubbles.yaml it
// finds, or "" when there is none.
func (l *Loader) DiscoverConfigPath(cwd string) (string, error) {
	dir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		_, err := l.FS.Stat(candidate)
		switch {
		case err == nil:
			return candidate, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func apply(s *domain.Settings, f *Configfile, baseDir string) {
	setIf(&s.Size, f.Size)
	setIf(&s.Margin, f.Margin)
	setIf(&s.Padding, f.Padding)
	setIf(&s.ClickDelay, f.ClickDelay)
	setIf(&s.ZoomDuration, f.ZoomDuration)
	setIf(&s.MoveDuration, f.MoveDuration)
	if f.Format != "" {
		s.Format = f.Format
	}
	if f.Assignments != "" {
		s.Assignments = resolvePath(baseDir, f.Assignments)
	}
	s.LogJSON = f.Log.JSON
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// resolvePath makes a configured path relative to the config file's directory.
func resolvePath(baseDir, p string) string {
	if p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

func validate(s domain.Settings) error {
	switch {
	case s.Size <= 0:
		return zerr.With(domain.ErrInvalidConfig, "size", s.Size)
	case s.Margin < 0 || s.Margin >= s.Size:
		return zerr.With(domain.ErrInvalidConfig, "margin", s.Margin)
	case s.Padding < 0:
		return zerr.With(domain.ErrInvalidConfig, "padding", s.Padding)
	case s.ClickDelay <= 0:
		return zerr.With(domain.ErrInvalidConfig, "clickDelay", s.ClickDelay)
	case s.ZoomDuration < 0:
		return zerr.With(domain.ErrInvalidConfig, "zoomDuration", s.ZoomDuration)
	case s.MoveDuration < 0:
		return zerr.With(domain.ErrInvalidConfig, "moveDuration", s.MoveDuration)
	case s.Format != domain.FormatSVG && s.Format != domain.FormatPNG:
		return zerr.With(domain.ErrUnsupportedFormat, "format", s.Format)
	}
	return nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into target.
func readAndUnmarshalYAML[T any](fsys FileSystem, path string, target *T) error {
	raw, err := fsys.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
