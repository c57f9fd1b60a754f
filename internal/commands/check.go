package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"ntpmon/internal/config"
	"ntpmon/internal/format"
	"ntpmon/internal/ntpclient"
	"ntpmon/internal/poller"
	"ntpmon/internal/stats"
)

func checkCmd() *cobra.Command {
	var overrides pollOverrides

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Poll every server once and print the results",
		Long: `Run a single poll cycle and print a table, then exit. Exits non-zero when
no server could be reached, so it can gate scripts and CI jobs.

Examples:
  ntpmon check
  ntpmon check --timeout 1s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			return runCheck(cfgPath, overrides)
		},
	}

	cmd.Flags().DurationVar(&overrides.timeout, "timeout", 0, "Per-request timeout (default from config, 2s)")
	cmd.Flags().IntVar(&overrides.workers, "workers", 0, "Max concurrent queries (default from config, 20)")
	return cmd
}

func runCheck(cfgPath string, overrides pollOverrides) error {
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

	fmt.Fprintf(os.Stderr, "Polling %d servers (timeout %s)...\n\n", len(cfg.Servers), cfg.Defaults.Timeout)
	snap := p.Poll(context.Background())

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Server", "Status", "RTT", "Offset (s)", "NTP Time", "Stratum", "Ref ID")
	tbl.WithHeaderFormatter(headerFmt)

	reachable := 0
	for _, r := range snap.Results {
		if !r.OK() {
			tbl.AddRow(r.Server, format.ColorStatus(r.Status.String(), false),
				format.NA, format.NA, format.NA, format.NA, format.NA)
			continue
		}
		reachable++
		resp := r.Response
		tbl.AddRow(
			r.Server,
			format.ColorStatus(r.Status.String(), true),
			format.ColorRTT(r.RTTMillis),
			fmt.Sprintf("%+.6f", resp.ClockOffset.Seconds()),
			resp.Time.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", resp.Stratum),
			resp.ReferenceID.String(),
		)
	}

	tbl.Print()
	fmt.Println()

	if reachable == 0 {
		return fmt.Errorf("none of the %d servers answered", len(cfg.Servers))
	}
	fmt.Printf("%s %d/%d servers answered\n", format.Bold("Reachable:"), reachable, len(cfg.Servers))
	return nil
}
