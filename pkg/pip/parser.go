// pkg/pip/parser.go
package pip

import (
	"strconv"
	"strings"
)

// ParseFreeze extracts installed package base names from `pip freeze`
// output. Each non-empty line is split on the first "==" separator.
func ParseFreeze(output string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, _, _ := strings.Cut(line, "==")
		names = append(names, strings.TrimSpace(name))
	}
	return names
}

// BaseName strips version pins, extras markers, and direct-reference
// suffixes from a requirement string: "foo==1.0", "foo[extra]" and
// "foo @ https://..." all reduce to "foo".
func BaseName(req string) string {
	name := req
	for _, sep := range []string{"==", "@", "["} {
		if i := strings.Index(name, sep); i >= 0 {
			name = name[:i]
		}
	}
	return strings.TrimSpace(name)
}

// ParsePythonVersion parses interpreter version output such as
// "Python 3.11.2".
func ParsePythonVersion(output string) (Version, bool) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) == 0 {
		return Version{}, false
	}
	parts := strings.Split(fields[len(fields)-1], ".")
	if len(parts) < 2 {
		return Version{}, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor}, true
}

// ParseShowVersion extracts the Version field from `pip show` output
func ParseShowVersion(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		if v, ok := strings.CutPrefix(line, "Version:"); ok {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
