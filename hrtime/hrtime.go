package hrtime

import (
	"strconv"
	"strings"
	"time"
)

// Elapsed is a duration split into whole seconds and nanoseconds in [0, 1e9).
type Elapsed struct {
	Seconds     int64
	Nanoseconds int64
}

// FromDuration splits d into seconds and nanoseconds. Negative durations
// clamp to zero.
func FromDuration(d time.Duration) Elapsed {
	if d < 0 {
		return Elapsed{}
	}
	return Elapsed{
		Seconds:     int64(d / time.Second),
		Nanoseconds: int64(d % time.Second),
	}
}

// Since returns the time elapsed since t. Pass a time obtained from
// time.Now so the monotonic reading is used.
func Since(t time.Time) Elapsed {
	return FromDuration(time.Since(t))
}

// Duration converts e back into a time.Duration.
func (e Elapsed) Duration() time.Duration {
	return time.Duration(e.Seconds)*time.Second + time.Duration(e.Nanoseconds)
}

// String implements fmt.Stringer using Format.
func (e Elapsed) String() string {
	return Format(e)
}

// Format renders e choosing the unit by magnitude. Negative fields are
// treated as zero.
func Format(e Elapsed) string {
	seconds, nanos := e.Seconds, e.Nanoseconds
	if seconds < 0 {
		seconds = 0
	}
	if nanos < 0 {
		nanos = 0
	}

	if seconds >= 60 {
		return strconv.FormatInt(seconds/60, 10) + "m " + strconv.FormatInt(seconds%60, 10) + "s"
	}

	if seconds >= 1 {
		// Milliseconds are the third decimal of a second.
		return decimal(seconds, nanos/1e6) + "s"
	}

	ms := nanos / 1e6
	if ms >= 100 {
		return strconv.FormatInt(ms, 10) + "ms"
	}

	// Microseconds are the third decimal of a millisecond.
	return decimal(ms, (nanos%1e6)/1e3) + "ms"
}

// decimal renders whole.frac where frac holds exactly three digits, dropping
// trailing zeros and the point itself when nothing is left.
func decimal(whole, frac int64) string {
	s := strconv.FormatInt(whole, 10)
	if frac == 0 {
		return s
	}
	digits := strings.TrimRight(strconv.FormatInt(1000+frac, 10)[1:], "0")
	return s + "." + digits
}
