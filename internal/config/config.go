// Package config loads the optional per-directory configuration file
// <events_dir>/config.yaml. Loading is deliberately forgiving: a missing
// file, an unparseable file, or an individual malformed value all degrade
// to defaults. Configuration problems must never take the queue down.
package config

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up inside the events directory.
const FileName = "config.yaml"

// Defaults.
const (
	DefaultRetentionMaxBytes = 16 * 1024 * 1024 // 16 MiB of processed/ before pruning
	DefaultDedupWindow       = 60 * time.Second
	DefaultAckTimeout        = 300 * time.Second
)

// maxSeconds guards the seconds -> time.Duration conversion against int64
// overflow.
const maxSeconds = math.MaxInt64 / int64(time.Second)

// Config holds the per-invocation settings. Loaded once, never mutated.
type Config struct {
	// RetentionMaxBytes is the size budget for processed/ before prune
	// deletes oldest-first.
	RetentionMaxBytes int64

	// DedupWindow is the default suppression window for dedup-aware
	// publishing.
	DedupWindow time.Duration

	// AckTimeout is the age past which a pending event counts as stale in
	// status output. Advisory only; zero disables the warning.
	AckTimeout time.Duration
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RetentionMaxBytes: DefaultRetentionMaxBytes,
		DedupWindow:       DefaultDedupWindow,
		AckTimeout:        DefaultAckTimeout,
	}
}

// Load reads config.yaml from the events directory. Recognised keys:
//
//	retention-max-bytes: <int>   (> 0)
//	dedup-window: <int seconds>  (>= 0)
//	ack-timeout: <int seconds>   (>= 0)
//
// Unknown keys are ignored. A value that is missing, mistyped, or out of
// range leaves that field at its default; Load itself never fails.
func Load(dir string) Config {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return cfg
	}

	// Decode into a loose map so one bad value cannot poison the rest of
	// the file.
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg
	}

	if v, ok := intValue(raw, "retention-max-bytes"); ok && v > 0 {
		cfg.RetentionMaxBytes = v
	}
	if v, ok := intValue(raw, "dedup-window"); ok && v >= 0 && v <= maxSeconds {
		cfg.DedupWindow = time.Duration(v) * time.Second
	}
	if v, ok := intValue(raw, "ack-timeout"); ok && v >= 0 && v <= maxSeconds {
		cfg.AckTimeout = time.Duration(v) * time.Second
	}
	return cfg
}

// intValue decodes one key of the raw document as an int64.
func intValue(raw map[string]yaml.Node, key string) (int64, bool) {
	node, ok := raw[key]
	if !ok {
		return 0, false
	}
	var v int64
	if err := node.Decode(&v); err != nil {
		return 0, false
	}
	return v, true
}
