// Package zodiac divides the ecliptic into the twelve tropical signs.
package zodiac

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// SignWidth is the number of degrees of ecliptic longitude covered by
// each sign
const SignWidth = 30.0

var ErrLongitudeRange = errors.New("longitude out of range")

// Sign is one of the twelve 30 degree segments of the ecliptic, starting
// from the vernal equinox
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces

	numSigns = 12
)

var signNames = [numSigns]string{
	"Aries",
	"Taurus",
	"Gemini",
	"Cancer",
	"Leo",
	"Virgo",
	"Libra",
	"Scorpio",
	"Sagittarius",
	"Capricorn",
	"Aquarius",
	"Pisces",
}

// Signs returns all signs in ecliptic order
func Signs() []Sign {
	signs := make([]Sign, numSigns)
	for i := range signs {
		signs[i] = Sign(i)
	}
	return signs
}

func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// SignOf returns the sign containing the given ecliptic longitude.
// Longitudes must already be normalized to [0, 360).
func SignOf(longitude float64) (Sign, error) {
	if math.IsNaN(longitude) || longitude < 0 || longitude >= numSigns*SignWidth {
		return 0, fmt.Errorf("%w: %f", ErrLongitudeRange, longitude)
	}

	return Sign(longitude / SignWidth), nil
}

// ParseSign looks up a sign by name, ignoring case
func ParseSign(name string) (Sign, error) {
	name = strings.TrimSpace(name)
	for _, s := range Signs() {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sign %q", name)
}
