package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/at-ishikawa/ogura-an/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var address string
	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API for a browser UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDependencies()
			if err != nil {
				return err
			}
			defer deps.close()

			if address == "" {
				address = deps.cfg.Server.Address
			}
			handler := server.NewHTTPHandler(
				server.NewHandler(deps.service),
				deps.supervisor,
				deps.cfg.Server.AllowedOrigin,
			)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			errCh := make(chan error, 1)
			deps.supervisor.Go(ctx, func(ctx context.Context) error {
				err := server.Run(ctx, server.Config{Address: address}, handler)
				errCh <- err
				return err
			})
			deps.supervisor.Wait()

			select {
			case err := <-errCh:
				return err
			default:
				return nil
			}
		},
	}
	command.Flags().StringVar(&address, "addr", "", "address to listen on (default: server.address of the config)")
	return command
}
