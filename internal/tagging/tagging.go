// Package tagging parses tag specifications from CLI flags and files.
package tagging

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

// Parse converts a comma-separated "key1=value1,key2=value2" string into a
// tag map. Pairs without "=" are silently dropped; keys and values are
// trimmed of surrounding whitespace. Empty input yields an empty map.
func Parse(s string) map[string]string {
	tags := make(map[string]string)

	for pair := range strings.SplitSeq(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}

		tags[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return tags
}

// LoadFile reads key=value tag pairs from the default section of an INI file.
func LoadFile(path string) (map[string]string, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags file: %w", err)
	}

	return f.Section("").KeysHash(), nil
}

// Merge combines tag maps; later maps win on key collision.
func Merge(maps ...map[string]string) map[string]string {
	return lo.Assign(maps...)
}
