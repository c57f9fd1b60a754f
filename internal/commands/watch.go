package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ntpmon/internal/config"
	"ntpmon/internal/ntpclient"
	"ntpmon/internal/poller"
	"ntpmon/internal/stats"
	"ntpmon/internal/ui"
)

// pollOverrides carries command-line overrides of the polling defaults.
// Zero values mean "keep the configured value".
type pollOverrides struct {
	interval time.Duration
	timeout  time.Duration
	workers  int
}

func (o pollOverrides) apply(cfg *config.Config) {
	if o.interval > 0 {
		cfg.Defaults.Interval = o.interval
	}
	if o.timeout > 0 {
		cfg.Defaults.Timeout = o.timeout
	}
	if o.workers > 0 {
		cfg.Defaults.Workers = o.workers
	}
}

func watchCmd() *cobra.Command {
	var overrides pollOverrides

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the interactive dashboard",
		Long: `Poll all configured NTP servers on a fixed interval and render a live table.

Examples:
  ntpmon watch
  ntpmon watch --interval 10s
  ntpmon watch --config servers.yaml --timeout 1s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			return runWatch(cfgPath, overrides)
		},
	}

	cmd.Flags().DurationVar(&overrides.interval, "interval", 0, "Refresh interval (default from config, 5s)")
	cmd.Flags().DurationVar(&overrides.timeout, "timeout", 0, "Per-request timeout (default from config, 2s)")
	cmd.Flags().IntVar(&overrides.workers, "workers", 0, "Max concurrent queries (default from config, 20)")
	return cmd
}

func runWatch(cfgPath string, overrides pollOverrides) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	overrides.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	tracker := stats.NewTracker()
	client := ntpclient.New(cfg.Defaults.Timeout)
	p := poller.New(client, tracker, cfg.Servers, cfg.Defaults.Workers)

	program := tea.NewProgram(
		ui.NewModel(p, tracker, cfg.Defaults.Interval),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
