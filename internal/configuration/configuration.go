// Package configuration reads the optional defaults file of the search tool
// and maps its keys onto typed values.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
)

type envReader interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation structure for configuration
// handling.
type Handler struct {
	reader envReader
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(reader envReader) *Handler {
	return &Handler{
		reader: reader,
	}
}

// Load reads the given defaults file into a map. A file that does not exist
// is not a failure; it loads as an empty map.
func (c *Handler) Load(filename string) (map[string]string, error) {
	envMap, err := c.reader.Read(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("(config-load) %w", err)
	}

	return envMap, nil
}

// KeyToString maps a key to its string value, with a fallback for keys that
// are absent or empty.
func (c *Handler) KeyToString(envMap map[string]string, key string, fallback string) string {
	if value, exists := envMap[key]; exists && value != "" {
		return value
	}

	return fallback
}

// KeyToInt maps a key to its integer value, with a fallback for keys that
// are absent, empty or unparseable.
func (c *Handler) KeyToInt(envMap map[string]string, key string, fallback int) int {
	value := c.KeyToString(envMap, key, "")
	if value == "" {
		return fallback
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return intValue
}

// KeyToBool maps a key to its boolean value, with a fallback for keys that
// are absent, empty or unparseable.
func (c *Handler) KeyToBool(envMap map[string]string, key string, fallback bool) bool {
	value := c.KeyToString(envMap, key, "")
	if value == "" {
		return fallback
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return boolValue
}
