package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/sunsign"
)

var errNoIngress = errors.New("no ingress before the end of February 2100")

func newWatchCmd(a *app) *cobra.Command {
	var signs []string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Log each time the sun enters a new sign",
		Long: `Runs until interrupted, logging every ingress as it happens. The signs
to watch for can be limited with --sign or the watch.signs config key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := a.watchSigns(signs)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watch(ctx, a.logger, sunsign.Ingress{Signs: filter})
		},
	}

	cmd.Flags().StringSliceVar(&signs, "sign", nil, "only log ingresses into these signs")
	return cmd
}

// watch schedules a Watcher on every ingress and blocks until ctx is done
func watch(ctx context.Context, logger zerolog.Logger, schedule sunsign.Ingress) error {
	next := schedule.Next(time.Now())
	if next.IsZero() {
		return errNoIngress
	}

	ingressCron := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger{logger: logger}),
	)
	ingressCron.Schedule(schedule, sunsign.NewWatcher(logger))

	logger.Info().Time("next", next).Msg("watching for ingress")
	ingressCron.Start()

	<-ctx.Done()
	<-ingressCron.Stop().Done()
	logger.Info().Msg("stopped watching")
	return nil
}
