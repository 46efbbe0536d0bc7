package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults returns a Config with safe zero-risk defaults: block-level
// segmentation, info logging, JSON output.
func Defaults() Config {
	return Config{
		Logging: Logging{Level: "info"},
		Session: "block",
		Format:  "json",
	}
}

// LoadFile parses a Config from a file path or raw bytes (raw, when
// non-empty, takes precedence over path). The format is chosen by the
// path's extension (".yaml"/".yml" for YAML, anything else for JSON)
// unless raw is supplied directly, in which case it is assumed to be
// JSON. Both decoders reject unknown fields.
func LoadFile(path string, raw []byte) (Config, error) {
	var cfg Config
	var r io.Reader
	yamlFormat := false

	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
		ext := strings.ToLower(filepath.Ext(path))
		yamlFormat = ext == ".yaml" || ext == ".yml"
	default:
		return cfg, errors.New("config: no source provided")
	}

	if yamlFormat {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Merge overlays non-zero fields of over onto base, field by field.
// It does not deep-merge DebugRoster: a non-empty override replaces
// the base roster wholesale.
func Merge(base, over Config) Config {
	out := base
	if strings.TrimSpace(over.Logging.Level) != "" {
		out.Logging.Level = strings.TrimSpace(over.Logging.Level)
	}
	if over.Session != "" {
		out.Session = over.Session
	}
	if over.Format != "" {
		out.Format = over.Format
	}
	if over.Stats {
		out.Stats = over.Stats
	}
	if len(over.DebugRoster) > 0 {
		out.DebugRoster = over.DebugRoster
	}
	return out
}

// EnvOverlay builds a Config overlay from a fixed set of environment
// variables, all under the STREAMSEG_ prefix: STREAMSEG_LOG_LEVEL,
// STREAMSEG_SESSION, STREAMSEG_FORMAT, STREAMSEG_STATS. Any other
// variable is ignored.
func EnvOverlay(environ []string) Config {
	var over Config
	for _, kv := range environ {
		if !strings.HasPrefix(kv, "STREAMSEG_") {
			continue
		}
		eq := strings.IndexByte(kv, '=')
		if eq <= len("STREAMSEG_") {
			continue
		}
		key := kv[:eq]
		val := strings.TrimSpace(kv[eq+1:])
		switch strings.TrimPrefix(key, "STREAMSEG_") {
		case "LOG_LEVEL":
			over.Logging.Level = val
		case "SESSION":
			over.Session = val
		case "FORMAT":
			over.Format = val
		case "STATS":
			if b, err := strconv.ParseBool(val); err == nil {
				over.Stats = b
			}
		}
	}
	return over
}
