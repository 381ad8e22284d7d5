package solar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEclipticLongitude(t *testing.T) {
	tests := []struct {
		name      string
		timescale float64
		expected  float64
	}{
		{"1990-01-01 00:00", Timescale(1990, 1, 1, 0, 0), 280.3077189116317},
		{"2000-01-01 12:00", Timescale(2000, 1, 1, 12, 0), 280.38145222150746},
		{"1985-07-04 15:30", Timescale(1985, 7, 4, 15, 30), 102.59575917063512},
		{"1969-07-20 20:17", Timescale(1969, 7, 20, 20, 17), 117.91790380363994},
		{"1977-05-25 00:00", Timescale(1977, 5, 25, 0, 0), 63.68250836776542},
		{"2021-12-21 15:59", Timescale(2021, 12, 21, 15, 59), 270.01446391319604},
		{"window start", Timescale(1900, 3, 1, 0, 0), 339.9726937729847},
		{"window end", Timescale(2100, 2, 28, 23, 59), 340.4636428879058},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, EclipticLongitude(tc.timescale), 1e-6)
		})
	}
}

func TestLocate(t *testing.T) {
	perihelion := Locate(Timescale(2000, 1, 3, 0, 0))
	assert.InDelta(t, 0.98329, perihelion.Distance, 1e-5)
	assert.InDelta(t, 359.0038, perihelion.MeanAnomaly, 1e-4)
	assert.InDelta(t, -1.0302, perihelion.TrueAnomaly, 1e-4)

	aphelion := Locate(Timescale(2000, 7, 4, 0, 0))
	assert.InDelta(t, 1.01671, aphelion.Distance, 1e-5)
	assert.InDelta(t, 179.3893, aphelion.TrueAnomaly, 1e-4)
}

// Negative timescales produce a negative raw mean anomaly, which must
// still come out normalized.
func TestLocateBeforeEpoch(t *testing.T) {
	p := Locate(Timescale(1990, 1, 1, 0, 0))
	assert.InDelta(t, 357.6204562, p.MeanAnomaly, 1e-6)
	assert.GreaterOrEqual(t, p.MeanAnomaly, 0.0)
}

func TestEclipticLongitudeRange(t *testing.T) {
	start := time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, time.March, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Before(end); d = d.Add(37 * time.Hour) {
		lon := EclipticLongitude(TimescaleOf(d))
		require.GreaterOrEqual(t, lon, 0.0, d.String())
		require.Less(t, lon, FullCircle, d.String())
	}
}

func TestEclipticLongitudeIdempotent(t *testing.T) {
	ts := Timescale(1985, 7, 4, 15, 30)
	first := EclipticLongitude(ts)
	second := EclipticLongitude(ts)
	assert.Equal(t, math.Float64bits(first), math.Float64bits(second))
}

func TestEclipticLongitudeTropicalYear(t *testing.T) {
	const tropicalYear = 365.2422

	for _, ts := range []float64{-36000, -3651, 0, 8846.13, 30000} {
		a := EclipticLongitude(ts)
		b := EclipticLongitude(ts + tropicalYear)

		diff := math.Abs(a - b)
		if diff > FullCircle/2 {
			diff = FullCircle - diff
		}
		assert.Less(t, diff, 1.0, "timescale %f", ts)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-30, 330},
		{-720, 0},
		{-1e-15, 0},
	}

	for _, tc := range tests {
		got := Normalize(tc.in)
		assert.InDelta(t, tc.expected, got, 1e-9, "normalize(%f)", tc.in)
		assert.Less(t, got, FullCircle)
		assert.GreaterOrEqual(t, got, 0.0)
	}
}

func TestDeclination(t *testing.T) {
	assert.InDelta(t, 0, Declination(0, Obliquity), 1e-9)
	assert.InDelta(t, 0, Declination(180, Obliquity), 1e-9)
	assert.InDelta(t, Obliquity, Declination(90, Obliquity), 1e-9)
	assert.InDelta(t, -Obliquity, Declination(270, Obliquity), 1e-9)
}

func TestLocateDeclination(t *testing.T) {
	// june solstice, the sun enters cancer at its northernmost point
	solstice := Locate(Timescale(2024, 6, 20, 20, 41))
	assert.InDelta(t, 23.44, solstice.Declination, 0.01)

	winter := Locate(Timescale(2023, 12, 21, 12, 0))
	assert.Less(t, winter.Declination, -23.0)

	equinox := Locate(Timescale(2024, 3, 20, 2, 55))
	assert.InDelta(t, 0, equinox.Declination, 0.05)
}
