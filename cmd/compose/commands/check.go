package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whisper/compose/internal/chat"
)

// check <text>: report whether text would be sent.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <text>",
		Short: "Report whether a message is sendable (exit 1 if not)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if !chat.IsSendable(text) {
				fmt.Fprintln(cmd.OutOrStdout(), "not sendable")
				return errNotSendable
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sendable")
			return nil
		},
	}
}
