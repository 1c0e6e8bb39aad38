package main

import (
	"context"

	"github.com/at-ishikawa/ogura-an/internal/cli"
	"github.com/at-ishikawa/ogura-an/internal/errorlog"
	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	var (
		wordContext string
		register    bool
	)
	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up the meaning of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDependencies()
			if err != nil {
				return err
			}
			defer deps.close()
			defer deps.supervisor.Recover()

			lookupCLI := cli.NewLookupCLI(deps.service, cmd.InOrStdin(), cmd.OutOrStdout())
			return lookupCLI.Lookup(cmd.Context(), args[0], wordContext, register)
		},
	}
	command.Flags().StringVar(&wordContext, "context", "", "sentence the word was found in")
	command.Flags().BoolVar(&register, "register", false, "register the result without asking")
	return command
}

func newRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register [file|-]",
		Short: "Register a reviewed lookup result to Notion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			deps, err := newDependencies()
			if err != nil {
				return err
			}
			defer deps.close()
			defer deps.supervisor.Recover()

			lookupCLI := cli.NewLookupCLI(deps.service, cmd.InOrStdin(), cmd.OutOrStdout())
			return lookupCLI.Register(cmd.Context(), text)
		},
	}
}

func newInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Look up words one after another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDependencies()
			if err != nil {
				return err
			}
			defer deps.close()

			lookupCLI := cli.NewLookupCLI(deps.service, cmd.InOrStdin(), cmd.OutOrStdout())
			return lookupCLI.Run(cmd.Context(), supervisedSession{
				session:    lookupCLI,
				supervisor: deps.supervisor,
			})
		},
	}
}

// supervisedSession logs a panicking session and lets the loop continue.
type supervisedSession struct {
	session    cli.Session
	supervisor *errorlog.Supervisor
}

func (s supervisedSession) Session(ctx context.Context) error {
	defer s.supervisor.Recover()
	return s.session.Session(ctx)
}
