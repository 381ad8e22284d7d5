package sunsign

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/sunsign/zodiac"
)

var (
	_ cron.Schedule = Ingress{}
	_ cron.Job      = Watcher{}
)

var (
	ariesIngress2024  = time.Date(2024, time.March, 20, 2, 55, 0, 0, time.UTC)
	cancerIngress2024 = time.Date(2024, time.June, 20, 20, 41, 0, 0, time.UTC)
)

func TestIngressNext(t *testing.T) {
	var schedule Ingress

	next := schedule.Next(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, ariesIngress2024, next)

	next = schedule.Next(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, cancerIngress2024, next)
}

func TestIngressNextIsAfterNow(t *testing.T) {
	var schedule Ingress

	// already in Aries, the next change is into Taurus
	now := ariesIngress2024.Add(30 * time.Second)
	next := schedule.Next(now)
	require.True(t, next.After(now))
	assert.True(t, next.After(ariesIngress2024.AddDate(0, 0, 28)))

	sign, ok := signAt(next)
	require.True(t, ok)
	assert.Equal(t, zodiac.Taurus, sign)
}

func TestIngressNextKeepsLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, est)

	next := Ingress{}.Next(now)
	assert.True(t, next.Equal(ariesIngress2024))
	assert.Equal(t, est, next.Location())
}

func TestIngressNextFiltered(t *testing.T) {
	schedule := Ingress{Signs: []zodiac.Sign{zodiac.Cancer}}
	next := schedule.Next(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, cancerIngress2024, next)
}

func TestIngressNextOutsideWindow(t *testing.T) {
	var schedule Ingress

	assert.True(t, schedule.Next(time.Date(1850, time.June, 1, 0, 0, 0, 0, time.UTC)).IsZero())
	assert.True(t, schedule.Next(time.Date(2100, time.February, 20, 0, 0, 0, 0, time.UTC)).IsZero())
}

func TestIngressUpcoming(t *testing.T) {
	events := Ingress{}.Upcoming(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 4)
	require.Len(t, events, 4)

	expected := []zodiac.Sign{zodiac.Aries, zodiac.Taurus, zodiac.Gemini, zodiac.Cancer}
	for i, event := range events {
		assert.Equal(t, expected[i], event.Sign)
		if i > 0 {
			gap := event.At.Sub(events[i-1].At)
			assert.Greater(t, gap, 28*24*time.Hour)
			assert.Less(t, gap, 33*24*time.Hour)
		}
	}
	assert.Equal(t, ariesIngress2024, events[0].At)
	assert.Equal(t, cancerIngress2024, events[3].At)
}

func TestIngressUpcomingStopsAtWindow(t *testing.T) {
	events := Ingress{}.Upcoming(time.Date(2099, time.December, 1, 0, 0, 0, 0, time.UTC), 12)
	// capricorn, aquarius and pisces remain before February 2100 ends
	assert.Len(t, events, 3)
}

func TestWatcherRun(t *testing.T) {
	var buf bytes.Buffer
	w := Watcher{
		Logger: zerolog.New(&buf),
		now:    func() time.Time { return ariesIngress2024.Add(200 * time.Millisecond) },
	}
	w.Run()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "sun ingress", entry["message"])
	assert.Equal(t, "Aries", entry["sign"])
}

func TestWatcherRunOutsideWindow(t *testing.T) {
	var buf bytes.Buffer
	w := Watcher{
		Logger: zerolog.New(&buf),
		now:    func() time.Time { return time.Date(2150, time.January, 1, 0, 0, 0, 0, time.UTC) },
	}
	w.Run()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "compute reading", entry["message"])
}
