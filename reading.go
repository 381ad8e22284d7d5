package sunsign

import (
	"fmt"

	"github.com/subtlepseudonym/sunsign/solar"
	"github.com/subtlepseudonym/sunsign/zodiac"
)

// Reading is the sun's position and sign for a single birth moment
type Reading struct {
	Moment    BirthMoment
	Timescale float64
	Position  solar.Position
	Sign      zodiac.Sign
}

// Longitude is shorthand for the sun's ecliptic longitude
func (r Reading) Longitude() float64 {
	return r.Position.Longitude
}

// Compute validates the moment and determines the sun sign for it
func Compute(m BirthMoment) (Reading, error) {
	if err := m.Validate(); err != nil {
		return Reading{}, err
	}

	ts := m.Timescale()
	position := solar.Locate(ts)

	sign, err := zodiac.SignOf(position.Longitude)
	if err != nil {
		return Reading{}, fmt.Errorf("classify %s: %w", m, err)
	}

	return Reading{
		Moment:    m,
		Timescale: ts,
		Position:  position,
		Sign:      sign,
	}, nil
}
