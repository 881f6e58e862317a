package cli

import (
	"github.com/spf13/cobra"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/response"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the wheel segments and payout statistics",
		Long: `Show the wheel in use and the statistics computer players base their
spin decisions on. Pass --wheel-path to inspect a custom wheel file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			segments := wheel.DefaultSegments()
			if appCfg.WheelPath != "" {
				var err error
				if segments, err = wheel.LoadFile(appCfg.WheelPath); err != nil {
					return err
				}
			}
			NewOutput(opts.Output).Print(response.WheelFromModel(segments, wheel.ComputeStats(segments)))
			return nil
		},
	}
}
