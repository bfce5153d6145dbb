package inbound

import (
	"github.com/shandysiswandi/payloadguard/internal/pkg/cli"
	"github.com/spf13/cobra"
)

const flagJSON = "json"

func RegisterCommands(ru *cli.Runner, uc uc) {
	end := &CLIEndpoint{uc: uc}

	ru.Command("user", "Validate a user create or update payload", end.ValidateUser, func(cmd *cobra.Command) {
		cmd.Flags().String("email", "", "email address")
		cmd.Flags().String("password", "", "password")
		cmd.Flags().String("username", "", "username")
		cmd.Flags().String(flagJSON, "", `read the payload as JSON from a file, or "-" for stdin`)
		cmd.MarkFlagsMutuallyExclusive(flagJSON, "email")
		cmd.MarkFlagsMutuallyExclusive(flagJSON, "password")
		cmd.MarkFlagsMutuallyExclusive(flagJSON, "username")
	})

	ru.Command("message", "Validate a message create or update payload", end.ValidateMessage, func(cmd *cobra.Command) {
		cmd.Flags().String("content", "", "message content")
		cmd.Flags().String(flagJSON, "", `read the payload as JSON from a file, or "-" for stdin`)
		cmd.MarkFlagsMutuallyExclusive(flagJSON, "content")
	})

	ru.Command("batch", "Validate JSON lines of user and message payloads", end.ValidateBatch, func(cmd *cobra.Command) {
		cmd.Flags().String("file", cli.StdinPath, `JSON lines file, or "-" for stdin`)
	})
}
