package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/whisper/compose/internal/app"
)

// replay [file|-]: apply JSON-line events headlessly and print the results.
func replayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [file|-]",
		Short: "Apply JSON-line UI events and print sent messages and final state",
		Long: `Reads one JSON event per line, for example:

  {"type":"edit","text":"hello"}
  {"type":"keydown","key":"Enter"}

and writes one JSON record per delivered message followed by the final state.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open events: %w", err)
				}
				defer f.Close()
				in = f
			}

			log.SetOutput(cmd.ErrOrStderr())

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			startMetrics(ctx)

			a := app.New(cfg)
			return a.Replay(ctx, in, cmd.OutOrStdout())
		},
	}
	return cmd
}
