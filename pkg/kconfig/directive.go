// Package kconfig provides primitives for the small slice of Kconfig
// syntax this tool reads and writes: source directives, the mainmenu
// line, and the generated-file banner. Everything else in a Kconfig
// file is treated as opaque text.
package kconfig

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// RootHeader marks generated root files. Written as the first line.
const RootHeader = "# AUTOGENERATED FILE. DO NOT MODIFY"

// directivePattern matches a source directive: optional leading
// whitespace, the source keyword, and a double-quoted path.
var directivePattern = regexp.MustCompile(`^\s*source\s*"([^"]*)"`)

// ParseDirective extracts the referenced path from a source directive.
// Returns ok=false for non-directive lines and for empty references,
// which pass through a merge untouched.
func ParseDirective(line string) (string, bool) {
	m := directivePattern.FindStringSubmatch(line)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// Directive formats a source directive for the given path.
// Separators are normalized to forward slashes.
func Directive(path string) string {
	return fmt.Sprintf("source \"%s\"\n", filepath.ToSlash(path))
}

// Mainmenu formats the mainmenu line for a generated root file.
func Mainmenu(title string) string {
	return fmt.Sprintf("mainmenu \"%s Configuration\"\n", title)
}
