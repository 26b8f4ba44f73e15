package finder

import (
	"fmt"
	"strings"
)

// Mode selects how substring checks are combined.
type Mode int

const (
	ModeUnset Mode = iota
	ModeAll        // every substring must be present
	ModeAny        // at least one substring must be present
)

var modeNames = map[Mode]string{
	ModeAll: "all",
	ModeAny: "any",
}

// reducers maps each valid mode to its boolean combinator.
var reducers = map[Mode]func([]bool) bool{
	ModeAll: allOf,
	ModeAny: anyOf,
}

// ParseMode converts "all" or "any" into a Mode.
// Anything else, including the empty string, is an InvalidModeError.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "all":
		return ModeAll, nil
	case "any":
		return ModeAny, nil
	default:
		return ModeUnset, &InvalidModeError{Value: s}
	}
}

// Valid reports whether m is ModeAll or ModeAny.
func (m Mode) Valid() bool {
	_, ok := reducers[m]
	return ok
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	if m == ModeUnset {
		return ""
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Set implements pflag.Value so a Mode can be bound to a command-line flag.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "all|any"
}

// Match reports whether the substring checks of items against target,
// combined with mode, hold. An invalid mode fails before any check runs.
func Match(items []string, target string, mode Mode) (bool, error) {
	reduce, ok := reducers[mode]
	if !ok {
		return false, &InvalidModeError{Value: mode.String()}
	}

	checks := make([]bool, len(items))
	for i, item := range items {
		checks[i] = strings.Contains(target, item)
	}
	return reduce(checks), nil
}

func allOf(checks []bool) bool {
	for _, ok := range checks {
		if !ok {
			return false
		}
	}
	return true
}

func anyOf(checks []bool) bool {
	for _, ok := range checks {
		if ok {
			return true
		}
	}
	return false
}
