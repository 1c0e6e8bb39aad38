package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/at-ishikawa/ogura-an/internal/i18n"
	"github.com/spf13/cobra"
)

var (
	configFile string
	language   = Language(i18n.DefaultLocale)
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	language = Language(i18n.DefaultLocale)

	rootCommand := &cobra.Command{
		Use:           "ogura-an",
		Short:         "Look up the meaning of a word and register it to Notion",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.Var(&language, "lang", fmt.Sprintf("Language of messages. Possible values are %v", i18n.SupportedLocales()))

	rootCommand.AddCommand(
		newLookupCommand(),
		newRegisterCommand(),
		newParseCommand(),
		newInteractiveCommand(),
		newServeCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
