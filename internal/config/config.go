// Package config loads CLI default overrides from an optional JSON-with-
// comments file, the way the teacher's own config.go loads .tk.json. It
// never touches pkg/fc's Config type: it produces a plain Options struct
// that internal/cli merges into an fc.Config after command-line switches
// are parsed, so the core package stays ignorant of config files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Options holds the subset of fc.Config that a config file may default.
// Every field is a pointer so the loader can tell "file didn't mention
// this key" from "file set this key to its zero value".
type Options struct {
	Mode             *string `json:"mode,omitempty"`
	IgnoreCase       *bool   `json:"ignore_case,omitempty"`
	IgnoreWhitespace *bool   `json:"ignore_whitespace,omitempty"`
	ShowLineNumbers  *bool   `json:"show_line_numbers,omitempty"`
	PreserveRawTabs  *bool   `json:"preserve_raw_tabs,omitempty"`
	ResyncLines      *int    `json:"resync_lines,omitempty"`
	BufferLines      *int    `json:"buffer_lines,omitempty"`
}

// ErrInvalid is the cause reported when a config file exists but cannot be
// read, is not valid JSONC, or is valid JSONC that doesn't match
// [Options]'s shape.
var ErrInvalid = errors.New("invalid config file")

// AppName names the directory under XDG_CONFIG_HOME / ~/.config that
// holds fc's default config file.
const AppName = "fc"

// FileName is the config file's name within [AppName]'s directory.
const FileName = "config.json"

// DefaultPath returns the default config path: $XDG_CONFIG_HOME/fc/config.json
// if XDG_CONFIG_HOME is set, otherwise ~/.config/fc/config.json. Returns
// an empty string if neither can be determined.
func DefaultPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, AppName, FileName)
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, FileName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", AppName, FileName)
}

// Load reads and parses the config file at path. If path is empty, it
// resolves via [DefaultPath]. A missing file is not an error: it returns
// a zero Options. A malformed file wraps [ErrInvalid].
func Load(path string, env map[string]string) (Options, error) {
	if path == "" {
		path = DefaultPath(env)
	}

	if path == "" {
		return Options{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user- or env-controlled by design
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, nil
		}

		return Options{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	var opts Options
	if err := json.Unmarshal(standardized, &opts); err != nil {
		return Options{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	return opts, nil
}
