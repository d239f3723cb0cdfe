package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Explain returns the effective value of a top-level key and where it came from.
// A zero Source means the value is the built-in default.
func Explain(res *LoadResult, key string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no configuration loaded")
	}

	data, err := Marshal(res.Config)
	if err != nil {
		return nil, Source{}, err
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, Source{}, fmt.Errorf("failed to decode effective config: %w", err)
	}

	value, ok := values[key]
	if !ok {
		if !isKnownKey(key) {
			return nil, Source{}, fmt.Errorf("unknown config key %q (known: %v)", key, KnownKeys())
		}
		value = ""
	}
	return value, res.Sources[key], nil
}

// KnownKeys lists the top-level config keys in sorted order.
func KnownKeys() []string {
	keys := []string{
		"size",
		"min_size",
		"max_size",
		"resize_border",
		"tick_interval",
		"log_level",
		"metrics_addr",
		"display",
	}
	sort.Strings(keys)
	return keys
}

func isKnownKey(key string) bool {
	for _, k := range KnownKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// FormatSource renders a source position for humans.
func FormatSource(src Source) string {
	if src.File == "" {
		return "default"
	}
	return fmt.Sprintf("%s:%d:%d", src.File, src.Line, src.Column)
}
