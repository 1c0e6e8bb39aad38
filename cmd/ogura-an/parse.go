package main

import (
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/ogura-an/internal/meaning"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type parsedRecord struct {
	Word    string   `json:"word" yaml:"word"`
	Meaning string   `json:"meaning" yaml:"meaning"`
	Tags    []string `json:"tags" yaml:"tags"`
	Usage   string   `json:"usage" yaml:"usage"`
}

func newParseCommand() *cobra.Command {
	format := FormatYAML
	command := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Validate a lookup result and print the record that would be registered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			result, err := meaning.Parse(text)
			if err != nil {
				return fmt.Errorf("meaning.Parse > %w", err)
			}

			output, err := formatRecord(parsedRecord{
				Word:    result.Word,
				Meaning: result.Meaning,
				Tags:    result.Tags(),
				Usage:   result.Usage,
			}, format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}
	command.Flags().Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allFormats))
	return command
}

func formatRecord(record parsedRecord, format Format) (string, error) {
	switch format {
	case FormatJSON:
		output, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return "", fmt.Errorf("json.MarshalIndent > %w", err)
		}
		return string(output) + "\n", nil
	default:
		output, err := yaml.Marshal(record)
		if err != nil {
			return "", fmt.Errorf("yaml.Marshal > %w", err)
		}
		return string(output), nil
	}
}
