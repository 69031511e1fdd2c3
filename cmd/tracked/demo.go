package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tracked/pkg/devtools"
	"github.com/vango-dev/tracked/pkg/hooks"
	"github.com/vango-dev/tracked/pkg/tracked"
)

func demoCmd() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a demo component with the live inspector",
		Long: `Mount a sample component on the hook runtime, re-render it on a
timer, and serve the inspector.

Endpoints:
  /effects       JSON snapshot of recent effect runs
  /effects/live  WebSocket stream of runs
  /metrics       Prometheus metrics

Examples:
  tracked demo
  tracked demo --addr=:7070 --interval=250ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(addr, interval)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":6070", "Inspector listen address")
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "Re-render interval")

	return cmd
}

func runDemo(addr string, interval time.Duration) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	rec := devtools.NewRecorder(
		devtools.WithCapacity(1024),
		devtools.WithMetrics(devtools.MetricsConfig{}),
	)
	srv := devtools.NewServer(rec, devtools.ServerConfig{
		Addr:   addr,
		Logger: logger,
	})

	errs := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	owner := hooks.NewOwner(nil)
	defer owner.Dispose()

	// Demo state: a counter that changes every tick and a phase label
	// that changes every fourth tick.
	tick := 0
	phase := "warmup"

	component := func() {
		hooks.UseTrackedEffect(func(s tracked.Summary) hooks.Cleanup {
			if s.IsMount {
				logger.Info("demo effect mounted", "keys", len(s.Did))
				return nil
			}
			if c := s.Did["phase"]; c.Changed {
				prev, _ := s.PreviousValue("phase")
				logger.Info("phase changed", "from", prev, "to", phase)
			}
			return nil
		}, tracked.Deps{"tick": tick, "phase": phase},
			tracked.WithName("demo.ticker"),
			tracked.WithObserver(rec))

		hooks.UseTrackedLayoutEffect(func(s tracked.Summary) hooks.Cleanup {
			return nil
		}, tracked.Deps{"phase": phase},
			tracked.WithName("demo.layout"),
			tracked.WithObserver(rec))
	}

	owner.Render(component)
	owner.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fmt.Printf("Inspector on http://localhost%s (Ctrl+C to stop)\n", addr)

	for {
		select {
		case <-ticker.C:
			tick++
			if tick%4 == 0 {
				phase = fmt.Sprintf("phase-%d", tick/4)
			}
			owner.Render(component)
			owner.Flush()

		case err := <-errs:
			return err

		case <-ctx.Done():
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
}
