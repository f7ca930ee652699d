package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultDisplay is the display template used when none is written.
const DefaultDisplay = "error kind: {kind:?}, source: {source:?}"

// Display is a compiled display template.
type Display struct {
	// Template is the template as written.
	Template string

	// Format is a fmt format string equivalent to the template.
	Format string

	// Args names the field formatted by each verb in Format: "kind" or
	// "source".
	Args []string
}

// verbSpec matches a fmt verb with optional flags, width and precision.
var verbSpec = regexp.MustCompile(`^[-+# 0]*[0-9]*(\.[0-9]*)?[a-zA-Z]$`)

// CompileDisplay compiles a display template.
//
// A placeholder is {kind} or {source}, optionally followed by a format spec
// after a colon. "?" is the debug form, "#?" is the Go-syntax form, and
// anything else is a fmt verb like "d" or "08.3f". An empty spec is "v".
// {{ and }} are literal braces.
//
//	CompileDisplay("Error [kind={kind}]: {source}")
//	// => Format: "Error [kind=%v]: %v", Args: [kind source]
func CompileDisplay(tmpl string) (Display, error) {
	var b strings.Builder
	var args []string

	for i := 0; i < len(tmpl); i++ {
		switch c := tmpl[i]; c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}

			j := strings.IndexByte(tmpl[i+1:], '}')
			if j < 0 {
				return Display{}, fmt.Errorf("unclosed placeholder at offset %d", i)
			}
			inner := tmpl[i+1 : i+1+j]
			i += j + 1

			name, spec, hasSpec := strings.Cut(inner, ":")
			if name != "kind" && name != "source" {
				return Display{}, fmt.Errorf("unknown placeholder {%s}; use {kind} or {source}", inner)
			}

			verb := "v"
			if hasSpec {
				var err error
				if verb, err = compileSpec(spec); err != nil {
					return Display{}, err
				}
			}
			b.WriteString("%" + verb)
			args = append(args, name)

		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return Display{}, fmt.Errorf("unmatched } at offset %d; use }} for a literal brace", i)

		case '%':
			b.WriteString("%%")

		default:
			b.WriteByte(c)
		}
	}

	return Display{Template: tmpl, Format: b.String(), Args: args}, nil
}

func compileSpec(spec string) (string, error) {
	switch {
	case spec == "":
		return "v", nil
	case spec == "?":
		return "+v", nil
	case spec == "#?":
		return "#v", nil
	case verbSpec.MatchString(spec):
		return spec, nil
	}
	return "", fmt.Errorf("invalid format spec %q", spec)
}
