package main

import (
	"fmt"
	"io"
	"os"

	"github.com/at-ishikawa/ogura-an/internal/app"
	"github.com/at-ishikawa/ogura-an/internal/config"
	"github.com/at-ishikawa/ogura-an/internal/errorlog"
	"github.com/at-ishikawa/ogura-an/internal/i18n"
	"github.com/at-ishikawa/ogura-an/internal/inference/openai"
	"github.com/at-ishikawa/ogura-an/internal/notion"
	"github.com/spf13/cobra"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load > %w", err)
	}
	if err := cfg.Validate(language.String()); err != nil {
		return nil, err
	}
	return cfg, nil
}

type dependencies struct {
	cfg        *config.Config
	service    *app.Service
	supervisor *errorlog.Supervisor
	close      func()
}

func newDependencies() (*dependencies, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	translator, err := i18n.NewTranslator(language.String())
	if err != nil {
		return nil, fmt.Errorf("i18n.NewTranslator > %w", err)
	}

	sink := errorlog.NewSink(cfg.Log.Directory)
	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model,
		openai.WithBaseURL(cfg.OpenAI.BaseURL),
		openai.WithTimeout(cfg.OpenAI.Timeout),
	)
	notionClient := notion.NewClient(cfg.Notion.SecretKey, cfg.Notion.DatabaseID,
		notion.WithBaseURL(cfg.Notion.BaseURL),
		notion.WithTimeout(cfg.Notion.Timeout),
		notion.WithVersion(cfg.Notion.Version),
	)

	return &dependencies{
		cfg:        cfg,
		service:    app.NewService(openaiClient, notionClient, sink, translator),
		supervisor: errorlog.NewSupervisor(sink),
		close: func() {
			_ = openaiClient.Close()
		},
	}, nil
}

// readInput reads the named file, or stdin when the name is empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("io.ReadAll > %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
	}
	return string(content), nil
}
