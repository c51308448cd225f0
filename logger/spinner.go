package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/asd-xiv/node-utils/hrtime"
	"github.com/briandowns/spinner"
)

// Indicator is the animation shown while a spinner session runs.
// *spinner.Spinner satisfies it.
type Indicator interface {
	Start()
	Stop()
}

// DefaultFrames and DefaultInterval describe the stock animation.
const (
	DefaultFrames   = "bouncingBar"
	DefaultInterval = 100 * time.Millisecond
)

// FrameSets holds the named animations available to Options.Frames.
var FrameSets = map[string][]string{
	"simpleDots": {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	"minimal":    {"◜", "◠", "◝", "◞", "◡", "◟"},
	"blocks":     {"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
	"circles":    {"◐", "◓", "◑", "◒"},
	"lines":      {"—", "\\", "|", "/"},
	"dots":       {"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
	"arrows":     {"▹▹▹▹▹", "▸▹▹▹▹", "▹▸▹▹▹", "▹▹▸▹▹", "▹▹▹▸▹", "▹▹▹▹▸"},
	"bouncingBar": {
		"[    ]", "[=   ]", "[==  ]", "[=== ]",
		"[====]", "[ ===]", "[  ==]", "[   =]",
		"[    ]", "[   =]", "[  ==]", "[ ===]",
		"[====]", "[=== ]", "[==  ]", "[=   ]",
	},
}

// newSpinnerIndicator animates frames on w. The spinner package checks its
// file for a terminal, so only *os.File writers animate; any other writer
// gets an indicator that draws nothing.
func newSpinnerIndicator(w io.Writer, frames []string, interval time.Duration, label string) Indicator {
	f, ok := w.(*os.File)
	if !ok {
		return silentIndicator{}
	}
	return spinner.New(frames, interval, spinner.WithSuffix(" "+label), spinner.WithWriterFile(f))
}

type silentIndicator struct{}

func (silentIndicator) Start() {}
func (silentIndicator) Stop()  {}

// Spinner wraps a running operation. It is idle until Start and returns to
// idle on Stop.
type Spinner struct {
	log *Logger

	mu        sync.Mutex
	indicator Indicator
	label     string
	startedAt time.Time
	running   bool
}

// Start shows the indicator with "{label}..." and records the start time.
// It returns ErrSpinnerRunning, leaving the current session alone, when a
// session is already running.
func (s *Spinner) Start(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrSpinnerRunning
	}

	s.label = label + "..."
	s.indicator = s.log.newIndicator(s.label)
	s.indicator.Start()
	s.startedAt = s.log.now()
	s.running = true
	return nil
}

// Stop halts and clears the indicator. A non-empty message is logged as
// "{label}...{message}" with type t and a leading duration variable.
// It returns ErrSpinnerIdle when no session is running.
func (s *Spinner) Stop(message string, t Type, vars ...Var) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrSpinnerIdle
	}

	s.indicator.Stop()
	s.indicator = nil
	s.running = false

	if message == "" {
		return nil
	}

	elapsed := hrtime.FromDuration(s.log.now().Sub(s.startedAt))
	s.log.Log(t, s.label+message, withVar(V("duration", elapsed.String()), vars)...)
	return nil
}

// Running reports whether a session is in progress.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
