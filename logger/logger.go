package logger

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/asd-xiv/node-utils/colors"
	"github.com/asd-xiv/node-utils/hrtime"
	"github.com/fatih/color"
)

// Options configures a Logger. Only Namespace is required.
type Options struct {
	Namespace string
	Level     Level

	// Writer receives every line. Defaults to the process error stream.
	Writer io.Writer

	// Clock, when set, appends the time since the previous line emitted by
	// any logger sharing it.
	Clock *Clock

	// Spinner animation. Defaults to the bouncing bar at 100ms.
	Frames   []string
	Interval time.Duration

	// NewIndicator replaces the animated spinner, mostly for tests.
	NewIndicator func(label string) Indicator
}

// Logger writes leveled lines for one namespace.
type Logger struct {
	namespace string
	level     Level
	out       io.Writer
	clock     *Clock

	newIndicator func(label string) Indicator
	spinner      *Spinner
	now          func() time.Time

	mu sync.Mutex
}

// New builds a Logger. An empty or unknown level falls back to DefaultLevel.
func New(opts Options) *Logger {
	l := &Logger{
		namespace: opts.Namespace,
		level:     opts.Level,
		out:       opts.Writer,
		clock:     opts.Clock,
		now:       time.Now,
	}
	if _, ok := levelTypes[l.level]; !ok {
		l.level = DefaultLevel
	}
	if l.out == nil {
		l.out = color.Error
	}

	l.newIndicator = opts.NewIndicator
	if l.newIndicator == nil {
		frames, interval := opts.Frames, opts.Interval
		if len(frames) == 0 {
			frames = FrameSets[DefaultFrames]
		}
		if interval <= 0 {
			interval = DefaultInterval
		}
		l.newIndicator = func(label string) Indicator {
			return newSpinnerIndicator(l.out, frames, interval, label)
		}
	}

	l.spinner = &Spinner{log: l}
	return l
}

// Namespace returns the namespace the logger was built with.
func (l *Logger) Namespace() string { return l.namespace }

// Level returns the effective minimum level.
func (l *Logger) Level() Level { return l.level }

// Spinner returns the logger's spinner controller.
func (l *Logger) Spinner() *Spinner { return l.spinner }

// Error logs an error record.
func (l *Logger) Error(message string, vars ...Var) { l.Log(TypeError, message, vars...) }

// Warn logs a warning record.
func (l *Logger) Warn(message string, vars ...Var) { l.Log(TypeWarning, message, vars...) }

// Info logs an info record.
func (l *Logger) Info(message string, vars ...Var) { l.Log(TypeInfo, message, vars...) }

// Success logs a success record.
func (l *Logger) Success(message string, vars ...Var) { l.Log(TypeSuccess, message, vars...) }

// Log writes one line for a record of type t, unless the logger's level
// filters it out. The message is written verbatim.
func (l *Logger) Log(t Type, message string, vars ...Var) {
	if !l.level.Allows(t) {
		return
	}

	styled := colors.Enabled()
	line := l.format(t, message, vars, styled)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.clock != nil {
		line += sinceLast(l.clock.Lap(), styled)
	}
	_, _ = io.WriteString(l.out, line+"\n")
}

func (l *Logger) format(t Type, message string, vars []Var, styled bool) string {
	th := themes[t]

	var b strings.Builder
	if styled {
		b.WriteString(th.color(th.label))
	} else {
		b.WriteString(th.label)
	}
	b.WriteByte(' ')

	if l.namespace != "" {
		ns := l.namespace + ": "
		if styled {
			ns = colors.Gray(ns)
		}
		b.WriteString(ns)
	}

	b.WriteString(message)

	for _, v := range vars {
		b.WriteByte(' ')
		if styled {
			b.WriteString(colors.Gray(v.Name + "="))
		} else {
			b.WriteString(v.Name + "=")
		}
		b.WriteString(stringify(v.Value))
	}

	return b.String()
}

// sinceLast renders the gap to the previous line, colored by how slow it was.
func sinceLast(d time.Duration, styled bool) string {
	text := " (" + hrtime.Format(hrtime.FromDuration(d)) + ")"
	if !styled {
		return text
	}
	switch {
	case d < 100*time.Millisecond:
		return colors.Green(text)
	case d < time.Second:
		return colors.Yellow(text)
	default:
		return colors.Red(text)
	}
}
