package sunsign

import (
	"errors"
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/subtlepseudonym/sunsign/solar"
)

const (
	dateString = "2006-01-02"
)

var ErrNoSunrise = errors.New("sun does not rise or set")

// Location is a place on the earth's surface in decimal degrees, with
// east longitude and north latitude positive
type Location struct {
	Latitude  float64 `json:"latitude" yaml:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" yaml:"longitude" validate:"min=-180,max=180"`
}

func (l Location) Validate() error {
	err := validate.Struct(l)
	if err != nil {
		return fmt.Errorf("invalid location %s: %w", l, err)
	}
	return nil
}

func (l Location) String() string {
	return fmt.Sprintf("%.4f,%.4f", l.Latitude, l.Longitude)
}

// Sect is whether a birth took place while the sun was above the horizon
type Sect string

const (
	DaySect   Sect = "day"
	NightSect Sect = "night"
)

// Daylight is the sunrise and sunset surrounding a birth moment. Both
// times are zero during midnight sun and polar night.
type Daylight struct {
	Sunrise time.Time
	Sunset  time.Time
	Sect    Sect
}

// GetSunriseSunset returns the sunrise and sunset at location on the
// given UTC date
func GetSunriseSunset(location Location, date time.Time) (time.Time, time.Time, error) {
	date = date.UTC()
	rise, set := sunrise.SunriseSunset(location.Latitude, location.Longitude, date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%s on %s: %w", location, date.Format(dateString), ErrNoSunrise)
	}

	return rise.UTC(), set.UTC(), nil
}

// DaylightAt determines whether the sun was up at location during the
// given moment.
//
// The day that go-sunrise computes is anchored on local solar noon rather
// than on the UTC date. West of Greenwich an evening can roll over into the
// next UTC date, and east of it a morning can still fall on the previous
// one, so the windows of the neighbouring dates are checked as well.
//
// When the sun neither rises nor sets on the moment's date, the sect comes
// from the sign of the sun's declination relative to the latitude and both
// times are left zero.
func DaylightAt(location Location, m BirthMoment) Daylight {
	t := m.Time()

	var (
		closest Daylight
		polar   bool
		best    time.Duration = -1
	)
	for _, offset := range []int{-1, 0, 1} {
		rise, set, err := GetSunriseSunset(location, t.AddDate(0, 0, offset))
		if err != nil {
			polar = polar || offset == 0
			continue
		}

		if within(t, rise, set) {
			return Daylight{Sunrise: rise, Sunset: set, Sect: DaySect}
		}

		noon := rise.Add(set.Sub(rise) / 2)
		distance := t.Sub(noon)
		if distance < 0 {
			distance = -distance
		}
		if best < 0 || distance < best {
			best = distance
			closest = Daylight{Sunrise: rise, Sunset: set, Sect: NightSect}
		}
	}

	if polar {
		return Daylight{Sect: polarSect(location, m)}
	}
	return closest
}

// polarSect reports midnight sun as a day birth and polar night as a night
// birth. The sun stays up when it is on the same side of the celestial
// equator as the location.
func polarSect(location Location, m BirthMoment) Sect {
	declination := solar.Locate(m.Timescale()).Declination
	if location.Latitude*declination > 0 {
		return DaySect
	}
	return NightSect
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
