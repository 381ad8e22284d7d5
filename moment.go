package sunsign

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/subtlepseudonym/sunsign/solar"
)

// NumMomentArgs is the number of positional values needed to describe a
// birth moment: month, day, year, hour, minute
const NumMomentArgs = 5

var (
	ErrArgumentCount = errors.New("wrong number of arguments")
	ErrInvalidMoment = errors.New("invalid birth moment")
	ErrOutsideWindow = errors.New("date outside of March 1900 to February 2100")
)

var validate = validator.New()

// BirthMoment is a date and time of birth in UTC
type BirthMoment struct {
	Year   int `validate:"min=1"`
	Month  int `validate:"min=1,max=12"`
	Day    int `validate:"min=1,max=31"`
	Hour   int `validate:"min=0,max=23"`
	Minute int `validate:"min=0,max=59"`
}

// ParseError records which argument could not be read as an integer
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %s", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseMoment reads a BirthMoment from command line arguments in
// MM DD YYYY HH MM order. The result is not validated.
func ParseMoment(args []string) (BirthMoment, error) {
	if len(args) != NumMomentArgs {
		return BirthMoment{}, fmt.Errorf("%w: expected %d, got %d", ErrArgumentCount, NumMomentArgs, len(args))
	}

	var m BirthMoment
	fields := []struct {
		name string
		dest *int
	}{
		{"month", &m.Month},
		{"day", &m.Day},
		{"year", &m.Year},
		{"hour", &m.Hour},
		{"minute", &m.Minute},
	}

	for i, f := range fields {
		value, err := strconv.Atoi(strings.TrimSpace(args[i]))
		if err != nil {
			return BirthMoment{}, &ParseError{Field: f.name, Value: args[i], Err: err}
		}
		*f.dest = value
	}

	return m, nil
}

// MomentOf returns the BirthMoment for t, truncated to the minute
func MomentOf(t time.Time) BirthMoment {
	t = t.UTC()
	return BirthMoment{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Validate checks that every field is in range, that the day exists in
// the given month and that the date is one the timescale formula handles
func (m BirthMoment) Validate() error {
	err := validate.Struct(m)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s %v fails %s=%s", ErrInvalidMoment, strings.ToLower(fe.Field()), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %s", ErrInvalidMoment, err)
	}

	if m.Day > daysIn(m.Year, time.Month(m.Month)) {
		return fmt.Errorf("%w: %s has no day %d", ErrInvalidMoment, time.Month(m.Month), m.Day)
	}

	if !solar.InWindow(m.Year, m.Month) {
		return fmt.Errorf("%w: %04d-%02d", ErrOutsideWindow, m.Year, m.Month)
	}

	return nil
}

// Time returns the moment as a UTC time
func (m BirthMoment) Time() time.Time {
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, 0, 0, time.UTC)
}

// Timescale returns the moment's day count for use with the solar package
func (m BirthMoment) Timescale() float64 {
	return solar.Timescale(m.Year, m.Month, m.Day, m.Hour, m.Minute)
}

func (m BirthMoment) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", m.Year, m.Month, m.Day, m.Hour, m.Minute)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the following month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
