package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/shandysiswandi/payloadguard/internal/pkg/instrument"
	"github.com/shandysiswandi/payloadguard/internal/pkg/uid"
	"github.com/spf13/cobra"
)

// Handler is the application-style handler run by a command.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(r *Request) (any, error)

// FlagCorrelationID lets callers propagate an existing correlation ID.
const FlagCorrelationID = "correlation-id"

// Config holds dependencies required to build a Runner.
type Config struct {
	// Use is the root command name.
	Use string
	// Short is the one-line root description.
	Short string
	// Version is printed by the version command.
	Version string
	// UUID generates correlation IDs when none is passed.
	UUID uid.StringID
}

// Runner owns the cobra command tree and the exit code of the last command.
type Runner struct {
	root     *cobra.Command
	exitCode int
}

// NewRunner builds the root command with the persistent flags shared by all commands.
func NewRunner(cfg Config) *Runner {
	ru := &Runner{}

	ru.root = &cobra.Command{
		Use:           cfg.Use,
		Short:         cfg.Short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cid, _ := cmd.Flags().GetString(FlagCorrelationID)
			if instrument.NormalizeCorrelationID(cid) == "" && cfg.UUID != nil {
				cid = cfg.UUID.Generate()
			}
			cmd.SetContext(instrument.SetCorrelationID(cmd.Context(), cid))
		},
	}
	ru.root.PersistentFlags().String(FlagCorrelationID, "", "correlation ID attached to every log line")

	ru.root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Version)
		},
	})

	return ru
}

// Root exposes the root command so modules can attach flags or inspect it in tests.
func (ru *Runner) Root() *cobra.Command {
	return ru.root
}

// Command registers a sub command that runs h. setup may declare flags.
func (ru *Runner) Command(use, short string, h Handler, setup func(cmd *cobra.Command)) {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := h(NewRequest(cmd, args))
			if err != nil {
				ru.exitCode = writeError(cmd.OutOrStdout(), err)
				return nil
			}

			ru.exitCode = writeSuccess(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	if setup != nil {
		setup(cmd)
	}

	ru.root.AddCommand(cmd)
}

// SetIO redirects command input and output, mainly for tests.
func (ru *Runner) SetIO(in io.Reader, out, errOut io.Writer) {
	ru.root.SetIn(in)
	ru.root.SetOut(out)
	ru.root.SetErr(errOut)
}

// Execute runs the command selected by args and returns the process exit code.
func (ru *Runner) Execute(ctx context.Context, args []string) int {
	ru.exitCode = ExitOK
	ru.root.SetArgs(args)

	if err := ru.root.ExecuteContext(ctx); err != nil {
		ru.root.PrintErrln("Error:", err)
		return ExitFailure
	}

	return ru.exitCode
}
