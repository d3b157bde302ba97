// Package cli implements the classic fc switch grammar: two positional
// file arguments plus single-letter options, either "/"- or "-"-prefixed,
// case-insensitive.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zbalkan/fc/pkg/fc"
)

// ParsedArgs is the result of parsing the command line, before any config
// file defaults or fc.Config zero-values are applied.
type ParsedArgs struct {
	Paths []string

	ModeSet bool
	Mode    fc.Mode

	IgnoreCase       bool
	IgnoreWhitespace bool
	ShowLineNumbers  bool
	PreserveRawTabs  bool

	ResyncLines *int
	BufferLines *int
	Interactive bool
	ConfigPath  string
}

// usageError marks an error that should be reported as a syntax/usage
// failure rather than a comparison failure. Check with [IsUsageError].
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func newUsageError(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// IsUsageError reports whether err came from a malformed command line.
func IsUsageError(err error) bool {
	_, ok := err.(*usageError) //nolint:errorlint // sentinel-shaped local type, never wrapped
	return ok
}

// ParseArgs parses args (not including the program name) per the classic
// fc switch grammar. A "/"-prefixed argument that contains a further "/"
// (other than a /CONFIG: switch) is an absolute path, not a switch.
func ParseArgs(args []string) (ParsedArgs, error) {
	var parsed ParsedArgs

	for _, arg := range args {
		if len(arg) == 0 {
			continue
		}

		if (arg[0] != '/' && arg[0] != '-') || isRootedPath(arg) {
			parsed.Paths = append(parsed.Paths, arg)

			continue
		}

		if err := applySwitch(&parsed, arg[1:]); err != nil {
			return ParsedArgs{}, err
		}
	}

	if !parsed.Interactive && len(parsed.Paths) != 2 {
		return ParsedArgs{}, newUsageError("expected two file arguments, got %d", len(parsed.Paths))
	}

	if parsed.Interactive && len(parsed.Paths) != 0 && len(parsed.Paths) != 2 {
		return ParsedArgs{}, newUsageError("expected zero or two file arguments with /I, got %d", len(parsed.Paths))
	}

	return parsed, nil
}

func applySwitch(parsed *ParsedArgs, body string) error {
	if body == "" {
		return newUsageError("empty switch")
	}

	upper := strings.ToUpper(body)

	switch {
	case upper == "B":
		parsed.Mode, parsed.ModeSet = fc.Binary, true
	case upper == "C":
		parsed.IgnoreCase = true
	case upper == "W":
		parsed.IgnoreWhitespace = true
	case upper == "L":
		parsed.Mode, parsed.ModeSet = fc.TextASCII, true
	case upper == "U":
		parsed.Mode, parsed.ModeSet = fc.TextUnicode, true
	case upper == "N":
		parsed.ShowLineNumbers = true
	case upper == "T":
		parsed.PreserveRawTabs = true
	case upper == "I":
		parsed.Interactive = true
	case strings.HasPrefix(upper, "CONFIG:"):
		parsed.ConfigPath = body[len("CONFIG:"):]
	case strings.HasPrefix(upper, "LB"):
		n, err := parsePositiveInt(upper[2:])
		if err != nil {
			return newUsageError("/LB switch: %v", err)
		}

		parsed.BufferLines = &n
	case isAllDigits(upper):
		n, err := parsePositiveInt(upper)
		if err != nil {
			return newUsageError("resync switch: %v", err)
		}

		parsed.ResyncLines = &n
	default:
		return newUsageError("unrecognized switch: /%s", body)
	}

	return nil
}

func isRootedPath(arg string) bool {
	return arg[0] == '/' && strings.Contains(arg[1:], "/") &&
		!strings.HasPrefix(strings.ToUpper(arg[1:]), "CONFIG:")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	if n < 1 {
		return 0, fmt.Errorf("value must be >= 1, got %d", n)
	}

	return n, nil
}
