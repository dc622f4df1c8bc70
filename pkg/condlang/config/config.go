package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/randalmurphal/condlang/pkg/condlang/symbols"
)

// Config wraps a map[string]any for type-safe value extraction.
// Accessors return the default when a key is missing or has the wrong type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal.
//
// Accepts int, int64, and float64 without a fractional part.
func (c Config) Int(key string, defaultVal int) int {
	switch val := c.data[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// StringSlice returns the string slice for key, or defaultVal.
// A []any is accepted only if every element is a string.
func (c Config) StringSlice(key string, defaultVal []string) []string {
	switch val := c.data[key].(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			result = append(result, s)
		}
		return result
	}
	return defaultVal
}

// StringMap returns key as a map of strings. Non-string scalar values are
// formatted with %v; nested values make the whole lookup fall back to
// defaultVal.
func (c Config) StringMap(key string, defaultVal map[string]string) map[string]string {
	m, ok := c.data[key].(map[string]any)
	if !ok {
		return defaultVal
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		switch v.(type) {
		case map[string]any, []any:
			return defaultVal
		case nil:
			out[k] = ""
		default:
			out[k] = fmt.Sprintf("%v", v)
		}
	}
	return out
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}

// ErrInvalidDefines indicates a "defines" value that is neither a list of
// scalars nor a map of name to scalar.
var ErrInvalidDefines = errors.New("defines must be a list of names or a map of name to value")

// Defines returns the "defines" key as name/value pairs. It accepts either
// a list of names (each with an empty value) or a map of name to value.
// Scalar list items and map values are formatted with %v, so YAML such as
// [X86, 64] defines both X86 and 64. Every name must be usable as a
// condition argument.
func (c Config) Defines() (map[string]string, error) {
	out := make(map[string]string)
	switch val := c.data["defines"].(type) {
	case nil:
		return out, nil
	case []string:
		for _, n := range val {
			out[n] = ""
		}
	case []any:
		for i, item := range val {
			if item == nil || !isScalar(item) {
				return nil, fmt.Errorf("defines[%d]: %w", i, ErrInvalidDefines)
			}
			out[fmt.Sprintf("%v", item)] = ""
		}
	case map[string]any:
		for k, v := range val {
			switch {
			case v == nil:
				out[k] = ""
			case isScalar(v):
				out[k] = fmt.Sprintf("%v", v)
			default:
				return nil, fmt.Errorf("defines.%s: %w", k, ErrInvalidDefines)
			}
		}
	default:
		return nil, ErrInvalidDefines
	}

	for name := range out {
		if !symbols.ValidName(name) {
			return nil, fmt.Errorf("defines: %w: %q", symbols.ErrInvalidName, name)
		}
	}
	return out, nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	}
	return true
}

// Settings are the evaluator settings read from a config file.
type Settings struct {
	StackSize int
	MaxDepth  int
	SymbolsDB string
	LogLevel  slog.Level
	Defines   map[string]string
}

// Settings extracts evaluator settings, using the given defaults for
// missing keys. An unrecognized log_level or a malformed defines value is
// an error.
func (c Config) Settings(defaults Settings) (Settings, error) {
	s := Settings{
		StackSize: c.Int("stack_size", defaults.StackSize),
		MaxDepth:  c.Int("max_depth", defaults.MaxDepth),
		SymbolsDB: c.String("symbols_db", defaults.SymbolsDB),
		LogLevel:  defaults.LogLevel,
	}
	defines, err := c.Defines()
	if err != nil {
		return Settings{}, err
	}
	s.Defines = defines
	if lvl := c.String("log_level", ""); lvl != "" {
		if err := s.LogLevel.UnmarshalText([]byte(strings.ToUpper(lvl))); err != nil {
			return Settings{}, fmt.Errorf("log_level: %w", err)
		}
	}
	return s, nil
}

// DefineNames returns the names in s.Defines, sorted.
func (s Settings) DefineNames() []string {
	names := make([]string, 0, len(s.Defines))
	for n := range s.Defines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
