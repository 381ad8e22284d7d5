package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/sunsign"
)

const defaultIngressCount = 12

func newIngressCmd(a *app) *cobra.Command {
	var (
		from  string
		count int
		signs []string
	)

	cmd := &cobra.Command{
		Use:   "ingress",
		Short: "List the upcoming times the sun enters a new sign",
		Long: `Prints the next ingresses after --from (default now), one per line, as
an RFC3339 UTC time followed by the sign being entered.

Example:
  sunsign ingress --from 2024-03-01T00:00 --count 4
  sunsign ingress --sign leo --count 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().UTC()
			if from != "" {
				var err error
				start, err = time.Parse(timeFormat, from)
				if err != nil {
					return fmt.Errorf("parse --from: %w", err)
				}
			}

			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			filter, err := a.watchSigns(signs)
			if err != nil {
				return err
			}

			schedule := sunsign.Ingress{Signs: filter}
			events := schedule.Upcoming(start, count)
			for _, event := range events {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", event.At.Format(time.RFC3339), event.Sign)
			}

			if len(events) < count {
				a.logger.Warn().
					Int("requested", count).
					Int("found", len(events)).
					Msg("ingress search reached end of February 2100")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start searching at this UTC time, "+timeFormat)
	cmd.Flags().IntVarP(&count, "count", "n", defaultIngressCount, "number of ingresses to list")
	cmd.Flags().StringSliceVar(&signs, "sign", nil, "only list ingresses into these signs")
	return cmd
}
