package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/sunsign"
	"github.com/subtlepseudonym/sunsign/config"
	"github.com/subtlepseudonym/sunsign/zodiac"
)

const (
	usage      = "usage: sunsign MM DD YYYY HH MM"
	timeFormat = "2006-01-02T15:04"
)

// errUsage is returned once the usage message has been printed
var errUsage = errors.New("usage")

type app struct {
	configFile string
	logLevel   string
	latitude   float64
	longitude  float64

	config *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "sunsign MM DD YYYY HH MM",
		Short: "Find the sun sign for a birth date and time",
		Long: `Calculates the sun's ecliptic longitude at a birth moment using a
simplified model of the earth's orbit and reports the zodiac sign it falls in.

All times are UTC. Dates must fall between March 1900 and February 2100.
Flags go before the date, so that a negative value is read as part of it.

Example:
  sunsign 07 04 1985 15 30
  sunsign --lat 40.7128 --lon=-74.006 07 04 1985 15 30`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSign,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "path to YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level, overrides config")
	cmd.Flags().Float64Var(&a.latitude, "lat", 0, "birth latitude, north positive")
	cmd.Flags().Float64Var(&a.longitude, "lon", 0, "birth longitude, east positive")
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(newIngressCmd(a), newWatchCmd(a))
	return cmd
}

// setup loads configuration and builds the logger shared by all commands
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.configFile != "" {
		a.config, err = config.Open(a.configFile)
		if err != nil {
			return err
		}
	} else {
		a.config = config.Default()
	}

	if a.logLevel != "" {
		a.config.Log.Level = a.logLevel
	}

	a.logger, err = newLogger(cmd.ErrOrStderr(), a.config.Log.Level, a.config.Log.Format)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
		if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
			return fmt.Errorf("--lat and --lon must be set together")
		}
		location := sunsign.Location{Latitude: a.latitude, Longitude: a.longitude}
		err = location.Validate()
		if err != nil {
			return err
		}
		a.config.Location = &location
	}

	return nil
}

func (a *app) runSign(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	moment, err := sunsign.ParseMoment(args)
	if errors.Is(err, sunsign.ErrArgumentCount) {
		fmt.Fprintln(out, usage)
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	if err != nil {
		return err
	}

	reading, err := sunsign.Compute(moment)
	if err != nil {
		return err
	}

	a.logger.Debug().
		Str("moment", moment.String()).
		Float64("timescale", reading.Timescale).
		Float64("mean_anomaly", reading.Position.MeanAnomaly).
		Float64("true_anomaly", reading.Position.TrueAnomaly).
		Float64("distance_au", reading.Position.Distance).
		Msg("computed reading")

	fmt.Fprintf(out, "Sun sign: %s\n", reading.Sign)
	fmt.Fprintf(out, "Sun longitude: %.2f\n", reading.Longitude())

	if a.config.Location == nil {
		return nil
	}

	daylight := sunsign.DaylightAt(*a.config.Location, moment)
	if daylight.Sunrise.IsZero() {
		a.logger.Debug().Str("location", a.config.Location.String()).Msg("sun does not rise or set")
	}

	fmt.Fprintf(out, "Sunrise: %s\n", formatTime(daylight.Sunrise))
	fmt.Fprintf(out, "Sunset: %s\n", formatTime(daylight.Sunset))
	fmt.Fprintf(out, "Sect: %s\n", daylight.Sect)
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "none"
	}
	return t.Format(time.RFC3339)
}

// watchSigns prefers signs given on the command line over those in the
// config file
func (a *app) watchSigns(names []string) ([]zodiac.Sign, error) {
	if len(names) == 0 {
		return a.config.WatchSigns()
	}

	signs := make([]zodiac.Sign, 0, len(names))
	for _, name := range names {
		sign, err := zodiac.ParseSign(name)
		if err != nil {
			return nil, err
		}
		signs = append(signs, sign)
	}
	return signs, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if !errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "ERR: %s\n", err)
	}
	return 1
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
