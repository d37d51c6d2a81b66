package commands

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/whisper/compose/internal/app"
	"github.com/whisper/compose/internal/ui"
)

// tui: run the interactive terminal UI (the default command).
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive chat composer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	// The UI owns the terminal; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "compose")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()
	startMetrics(ctx)

	a := app.New(cfg)
	log.Printf("[tui] starting composer=%s transcript_size=%d char_limit=%d", a.Composer.ID(), cfg.TranscriptSize, cfg.CharLimit)
	return ui.Run(a, cfg, tea.WithContext(ctx))
}
