package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/animate/internal/config"
	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/settings"
)

// loadConfig resolves animate.json. Without --config a missing project file
// is not an error: the defaults are used.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case flags.config == "":
		cfg, err = config.LoadFromWorkingDir()
		if errors.CodeOf(err) == "E141" {
			return config.New(), nil
		}
	case isDir(flags.config):
		cfg, err = config.Load(flags.config)
	default:
		cfg, err = config.LoadFile(flags.config)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// settingsSource is --settings when given, else the project source.
func settingsSource(flags *globalFlags, cfg *config.Config) settings.Source {
	if flags.settings != "" {
		path, err := filepath.Abs(flags.settings)
		if err != nil {
			path = flags.settings
		}
		return settings.FileSource{Path: path}
	}
	return cfg.Source()
}

// loadStore loads the global settings for a one-shot command.
func loadStore(ctx context.Context, flags *globalFlags) (*settings.Store, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	return animate.LoadSettings(ctx, settingsSource(flags, cfg))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
