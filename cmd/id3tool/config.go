package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	id3v2 "github.com/tagforge/id3v2"
)

// Config holds the tool's write policy. The zero value is never used
// directly; defaultConfig fills in the library defaults.
type Config struct {
	Padding int  `toml:"padding"`
	Unsync  bool `toml:"unsync"`
}

func defaultConfig() Config {
	opts := id3v2.DefaultOptions()
	return Config{Padding: opts.Padding, Unsync: opts.Unsync}
}

func (c Config) options() id3v2.Options {
	return id3v2.Options{Padding: c.Padding, Unsync: c.Unsync}
}

// loadConfig reads the TOML config from path, or from
// <user config dir>/id3tool/config.toml when path is empty. A missing
// default config is fine; an explicitly named one must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "id3tool", "config.toml")
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0])
	}
	if cfg.Padding < 0 {
		return Config{}, fmt.Errorf("config %s: padding cannot be negative", path)
	}

	return cfg, nil
}
