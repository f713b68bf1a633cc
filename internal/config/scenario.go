package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/sergeyya18/leakcalc/internal/leakage"
	"github.com/sergeyya18/leakcalc/internal/logging"
)

// scenarioFile mirrors a scenario YAML file. Pointers distinguish a missing
// key from an explicit zero.
type scenarioFile struct {
	Diameter    *float64 `yaml:"diameter"`
	Temperature *float64 `yaml:"temperature"`
	Duration    *float64 `yaml:"duration"`
	Pressure    *float64 `yaml:"pressure"`
	Density     *float64 `yaml:"density"`
	N2Percent   *float64 `yaml:"n2_percent"`
}

// LoadScenario reads the six leak inputs from a YAML file such as
//
//	diameter: 0.005
//	temperature: 20
//	duration: 3600
//	pressure: 5
//	density: 0.68
//	n2_percent: 1
//
// A missing key or a non-numeric value yields leakage.ErrInvalidInput.
// Other failures (unreadable file, malformed YAML) are returned as is.
func LoadScenario(path string) (leakage.Inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return leakage.Inputs{}, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes scenario YAML, see LoadScenario.
func ParseScenario(data []byte) (leakage.Inputs, error) {
	var sf scenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return leakage.Inputs{}, fmt.Errorf("%w: %w", leakage.ErrInvalidInput, err)
	}

	var in leakage.Inputs
	fields := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"diameter", sf.Diameter, &in.Diameter},
		{"temperature", sf.Temperature, &in.Temperature},
		{"duration", sf.Duration, &in.Duration},
		{"pressure", sf.Pressure, &in.Pressure},
		{"density", sf.Density, &in.Density},
		{"n2_percent", sf.N2Percent, &in.N2Percent},
	}
	for _, f := range fields {
		if f.src == nil {
			return leakage.Inputs{}, fmt.Errorf("%w: %s is missing", leakage.ErrInvalidInput, f.name)
		}
		*f.dst = *f.src
	}
	return in, nil
}

// WatchScenario monitors path and calls onChange with the newly loaded inputs
// each time the file is written. It runs until ctx is cancelled.
//
// If a reload fails (missing key, invalid YAML) the error is logged and
// onChange is not called, so the last rendered result stays in place.
func WatchScenario(ctx context.Context, path string, onChange func(leakage.Inputs)) error {
	logger := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: an atomic save renames a new inode over path,
	// which drops a watch held on the file itself.
	target := filepath.Clean(path)
	if _, err = os.Stat(target); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	logger.Info().Ctx(ctx).Str("component", "config").Str("path", path).Msg("watching scenario for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			in, loadErr := LoadScenario(path)
			if loadErr != nil {
				logger.Warn().Ctx(ctx).
					Str("component", "config").
					Str("path", path).
					Err(loadErr).
					Msg("scenario reload failed, keeping previous result")
				continue
			}

			logger.Debug().Ctx(ctx).Str("component", "config").Str("path", path).Msg("scenario reloaded")
			onChange(in)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Ctx(ctx).Str("component", "config").Err(watchErr).Msg("scenario watcher error")
		}
	}
}
