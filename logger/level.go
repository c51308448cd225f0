package logger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/asd-xiv/node-utils/colors"
)

// Level is the least severe record type a logger emits.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// DefaultLevel is used when Options.Level is empty or unknown.
const DefaultLevel = LevelWarning

// Type is the semantic category of a log line.
type Type string

const (
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
)

// levelTypes maps a minimum level to the record types it lets through.
var levelTypes = map[Level][]Type{
	LevelError:   {TypeError, TypeSuccess},
	LevelWarning: {TypeError, TypeWarning, TypeSuccess},
	LevelInfo:    {TypeError, TypeWarning, TypeInfo, TypeSuccess},
}

// Allows reports whether records of type t pass a logger at level l.
func (l Level) Allows(t Type) bool {
	return slices.Contains(levelTypes[l], t)
}

func (l Level) String() string { return string(l) }

func (t Type) String() string { return string(t) }

// ParseLevel parses "error", "warning" (or "warn") and "info".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	}
	return "", fmt.Errorf("%w: %q (expected error, warning or info)", ErrUnknownLevel, s)
}

// ParseType parses "error", "warning" (or "warn"), "info" and "success".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return TypeError, nil
	case "warning", "warn":
		return TypeWarning, nil
	case "info":
		return TypeInfo, nil
	case "success":
		return TypeSuccess, nil
	}
	return "", fmt.Errorf("%w: %q (expected error, warning, info or success)", ErrUnknownType, s)
}

type theme struct {
	label string
	color func(string) string
}

var themes = map[Type]theme{
	TypeError:   {"ERR", colors.Combine(colors.FgRed, colors.Bold)},
	TypeWarning: {"WRN", colors.Combine(colors.FgYellow, colors.Bold)},
	TypeInfo:    {"INF", colors.Combine(colors.FgBlue, colors.Bold)},
	TypeSuccess: {"SUC", colors.Combine(colors.FgGreen, colors.Bold)},
}
