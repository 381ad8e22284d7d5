package sunsign

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/subtlepseudonym/sunsign/solar"
	"github.com/subtlepseudonym/sunsign/zodiac"
)

const (
	// the sun moves about a quarter of a degree in six hours, so a step
	// can never skip over a whole sign
	ingressStep      = 6 * time.Hour
	ingressPrecision = time.Minute
)

// Event is the sun entering a sign
type Event struct {
	At   time.Time
	Sign zodiac.Sign
}

// Ingress is a schedule that fires each time the sun moves into a new
// sign. If Signs is non-empty, only ingresses into those signs are
// scheduled.
//
// This implements robfig/cron.Schedule
type Ingress struct {
	Signs []zodiac.Sign
}

// Next returns the first whole minute after now at which the sun is in
// a different sign. The zero time is returned once the search leaves the
// range the timescale formula is valid for, which stops cron from
// scheduling the job again.
func (i Ingress) Next(now time.Time) time.Time {
	event, ok := i.next(now)
	if !ok {
		return time.Time{}
	}
	return event.At.In(now.Location())
}

// Upcoming lists up to n ingresses after from
func (i Ingress) Upcoming(from time.Time, n int) []Event {
	events := make([]Event, 0, n)
	for len(events) < n {
		event, ok := i.next(from)
		if !ok {
			break
		}
		events = append(events, event)
		from = event.At
	}
	return events
}

func (i Ingress) next(now time.Time) (Event, bool) {
	t := now.UTC().Truncate(ingressPrecision)
	for {
		event, ok := nextIngress(t)
		if !ok {
			return Event{}, false
		}
		if i.matches(event.Sign) {
			return event, true
		}
		t = event.At
	}
}

func (i Ingress) matches(sign zodiac.Sign) bool {
	if len(i.Signs) == 0 {
		return true
	}
	for _, s := range i.Signs {
		if s == sign {
			return true
		}
	}
	return false
}

// nextIngress steps forward from a minute-aligned time until the sign
// changes, then bisects down to the minute
func nextIngress(from time.Time) (Event, bool) {
	start, ok := signAt(from)
	if !ok {
		return Event{}, false
	}

	lo, hi := from, from
	var sign zodiac.Sign
	for {
		hi = lo.Add(ingressStep)
		sign, ok = signAt(hi)
		if !ok {
			return Event{}, false
		}
		if sign != start {
			break
		}
		lo = hi
	}

	for hi.Sub(lo) > ingressPrecision {
		mid := lo.Add(hi.Sub(lo) / 2).Truncate(ingressPrecision)
		if s, _ := signAt(mid); s == start {
			lo = mid
		} else {
			hi = mid
		}
	}

	return Event{At: hi, Sign: sign}, true
}

func signAt(t time.Time) (zodiac.Sign, bool) {
	t = t.UTC()
	if !solar.InWindow(t.Year(), int(t.Month())) {
		return 0, false
	}

	sign, err := zodiac.SignOf(solar.EclipticLongitude(solar.TimescaleOf(t)))
	if err != nil {
		return 0, false
	}
	return sign, true
}

// Watcher logs the sun's sign each time it runs
//
// This implements robfig/cron.Job
type Watcher struct {
	Logger zerolog.Logger

	now func() time.Time
}

func NewWatcher(logger zerolog.Logger) Watcher {
	return Watcher{
		Logger: logger,
		now:    time.Now,
	}
}

func (w Watcher) Run() {
	now := w.now
	if now == nil {
		now = time.Now
	}

	m := MomentOf(now())
	reading, err := Compute(m)
	if err != nil {
		w.Logger.Error().Err(err).Str("moment", m.String()).Msg("compute reading")
		return
	}

	w.Logger.Info().
		Str("sign", reading.Sign.String()).
		Float64("longitude", reading.Longitude()).
		Time("at", m.Time()).
		Msg("sun ingress")
}
