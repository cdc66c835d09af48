package envutil

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Source resolves an environment key. Keys are matched case-insensitively.
type Source func(key string) (string, bool)

// OS reads the process environment.
func OS() Source {
	return FromPairs(os.Environ())
}

// FromPairs builds a Source from KEY=VALUE strings.
func FromPairs(pairs []string) Source {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return FromMap(m)
}

func FromMap(values map[string]string) Source {
	folded := make(map[string]string, len(values))
	for k, v := range values {
		folded[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return func(key string) (string, bool) {
		v, ok := folded[strings.ToUpper(key)]
		return v, ok
	}
}

// Chain consults sources in order; the first one holding a key wins.
func Chain(sources ...Source) Source {
	return func(key string) (string, bool) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			if v, ok := src(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

func ParseInt(raw string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return i, nil
}

func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "t", "y":
		return true, nil
	case "0", "false", "no", "off", "f", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", raw)
	}
}

// ParseList accepts a JSON array of strings or a comma separated list.
func ParseList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}, nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return nil, fmt.Errorf("invalid list %q: %w", raw, err)
		}
		if out == nil {
			out = []string{}
		}
		return out, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
