// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "modes.dir").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"output.colour",
		"modes.dir", "modes.file",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// All yields every key with its effective value, in ValidKeys order.
func (c *Config) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range ValidKeys() {
			v, err := c.Get(k)
			if err != nil {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "output.colour":
		if c.Colour() {
			return "true", nil
		}
		return "false", nil
	case "modes.dir":
		return fmt.Sprintf("%04o", uint32(c.DirMode())), nil
	case "modes.file":
		return fmt.Sprintf("%04o", uint32(c.FileMode())), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "output.colour":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: output.colour must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Output.Colour = &b
	case "modes.dir":
		if _, err := parseMode(value); err != nil {
			return fmt.Errorf("%w: modes.dir %v", ErrInvalidValue, err)
		}
		c.Modes.Dir = &value
	case "modes.file":
		if _, err := parseMode(value); err != nil {
			return fmt.Errorf("%w: modes.file %v", ErrInvalidValue, err)
		}
		c.Modes.File = &value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
