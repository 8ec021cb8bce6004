// Package guide ships the user documentation inside the binary. Pages are
// plain markdown embedded at build time, so the guide is available wherever
// the binary is, offline included.
package guide

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Default is the page served when no name is given.
const Default = "guide"

// Get returns the markdown of the named page; an empty name serves Default.
// The error for an unknown name already carries the available page list, so
// callers can hand it to the user as-is.
func Get(name string) (string, error) {
	if name == "" {
		name = Default
	}
	data, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no guide page %q (available: %s)", name, strings.Join(List(), ", "))
	}
	return string(data), nil
}

// List returns the page names beyond Default, sorted.
func List() []string {
	entries, err := pages.ReadDir(".")
	if err != nil {
		// The embedded FS always has a readable root.
		panic("guide: " + err.Error())
	}
	var names []string
	for _, e := range entries {
		if name := strings.TrimSuffix(e.Name(), ".md"); name != Default {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
