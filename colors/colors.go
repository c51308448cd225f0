package colors

import (
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Style is a single SGR attribute.
type Style color.Attribute

// Text styles.
const (
	Reset     = Style(color.Reset)
	Bold      = Style(color.Bold)
	Dim       = Style(color.Faint)
	Italic    = Style(color.Italic)
	Underline = Style(color.Underline)
)

// Foreground colors.
const (
	FgBlack   = Style(color.FgBlack)
	FgGray    = Style(color.FgHiBlack)
	FgRed     = Style(color.FgRed)
	FgGreen   = Style(color.FgGreen)
	FgYellow  = Style(color.FgYellow)
	FgBlue    = Style(color.FgBlue)
	FgMagenta = Style(color.FgMagenta)
	FgCyan    = Style(color.FgCyan)
	FgWhite   = Style(color.FgWhite)
)

// Background colors.
const (
	BgBlack   = Style(color.BgBlack)
	BgGray    = Style(color.BgHiBlack)
	BgRed     = Style(color.BgRed)
	BgGreen   = Style(color.BgGreen)
	BgYellow  = Style(color.BgYellow)
	BgBlue    = Style(color.BgBlue)
	BgMagenta = Style(color.BgMagenta)
	BgCyan    = Style(color.BgCyan)
	BgWhite   = Style(color.BgWhite)
)

const escape = "\x1b["

// Marker returns the escape sequence for s, e.g. "\x1b[31m" for FgRed.
func Marker(s Style) string {
	return escape + strconv.Itoa(int(s)) + "m"
}

// Apply wraps text in the given styles. Styles are folded left to right, each
// marker prepended to what was built so far, and one reset marker closes the
// result no matter how many styles were combined.
func Apply(styles []Style, text string) string {
	var b strings.Builder
	for i := len(styles) - 1; i >= 0; i-- {
		b.WriteString(Marker(styles[i]))
	}
	b.WriteString(text)
	b.WriteString(Marker(Reset))
	return b.String()
}

// Combine returns a function applying styles, handy for fixed themes.
func Combine(styles ...Style) func(string) string {
	return func(text string) string {
		return Apply(styles, text)
	}
}

// Single style helpers.
var (
	Black   = Combine(FgBlack)
	Gray    = Combine(FgGray)
	Red     = Combine(FgRed)
	Green   = Combine(FgGreen)
	Yellow  = Combine(FgYellow)
	Blue    = Combine(FgBlue)
	Magenta = Combine(FgMagenta)
	Cyan    = Combine(FgCyan)
	White   = Combine(FgWhite)
)

// Lookup resolves a style by name, as used on the command line: "bold",
// "red" or "fgRed", "bgRed", "gray". Names are case-insensitive.
func Lookup(name string) (Style, bool) {
	s, ok := byName[strings.ToLower(name)]
	return s, ok
}

var byName = map[string]Style{
	"reset":     Reset,
	"bold":      Bold,
	"dim":       Dim,
	"italic":    Italic,
	"underline": Underline,

	"black":   FgBlack,
	"gray":    FgGray,
	"red":     FgRed,
	"green":   FgGreen,
	"yellow":  FgYellow,
	"blue":    FgBlue,
	"magenta": FgMagenta,
	"cyan":    FgCyan,
	"white":   FgWhite,

	"fgblack":   FgBlack,
	"fggray":    FgGray,
	"fgred":     FgRed,
	"fggreen":   FgGreen,
	"fgyellow":  FgYellow,
	"fgblue":    FgBlue,
	"fgmagenta": FgMagenta,
	"fgcyan":    FgCyan,
	"fgwhite":   FgWhite,

	"bgblack":   BgBlack,
	"bggray":    BgGray,
	"bgred":     BgRed,
	"bggreen":   BgGreen,
	"bgyellow":  BgYellow,
	"bgblue":    BgBlue,
	"bgmagenta": BgMagenta,
	"bgcyan":    BgCyan,
	"bgwhite":   BgWhite,
}

// Enabled reports whether styled output should be produced.
func Enabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return !IsCI()
}

// IsCI reports whether the CI environment variable is set to a truthy value.
// Any non-empty value counts except ones strconv.ParseBool reads as false.
func IsCI() bool {
	v := os.Getenv("CI")
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}
