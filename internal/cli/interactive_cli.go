package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/at-ishikawa/ogura-an/internal/app"
	"github.com/at-ishikawa/ogura-an/internal/i18n"
	"github.com/fatih/color"
)

var errEnd = errors.New("end")

// LookupCLI looks words up from the terminal and registers the reviewed results.
type LookupCLI struct {
	service      *app.Service
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	failure      *color.Color
}

func NewLookupCLI(service *app.Service, stdin io.Reader, stdout io.Writer) *LookupCLI {
	return &LookupCLI{
		service:      service,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		failure:      color.New(color.FgRed),
	}
}

//go:generate mockgen -source=interactive_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(context context.Context) error
}

// Run repeats session until it ends, fails or an interrupt arrives.
func (cli *LookupCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, cli.service.Message(i18n.KeySessionEnded))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session asks for a word and its context, shows the lookup result and offers to register it.
func (cli *LookupCLI) Session(ctx context.Context) error {
	word, err := cli.prompt(i18n.KeyWordPrompt)
	if err != nil {
		return err
	}
	if word == "quit" || word == "exit" {
		_, _ = fmt.Fprintln(cli.stdoutWriter, cli.service.Message(i18n.KeySessionEnded))
		return errEnd
	}
	if word == "" {
		cli.printFailure(cli.service.Message(i18n.KeyWordRequired))
		return nil
	}

	wordContext, err := cli.prompt(i18n.KeyContextPrompt)
	if err != nil {
		return err
	}

	if err := cli.Lookup(ctx, word, wordContext, false); err != nil {
		var userErr *app.UserError
		if errors.As(err, &userErr) {
			return nil
		}
		return err
	}
	return nil
}

// Lookup prints the raw result for review. It registers the result when register is true,
// and otherwise asks first. A failure of the service is shown before it is returned.
func (cli *LookupCLI) Lookup(ctx context.Context, word, wordContext string, register bool) error {
	text, err := cli.service.FetchWordMeaning(ctx, word, wordContext)
	if err != nil {
		cli.printFailure(cli.service.UserMessage(err, i18n.KeyLookupFailed))
		return err
	}

	_, _ = cli.bold.Fprintln(cli.stdoutWriter, word)
	_, _ = fmt.Fprintln(cli.stdoutWriter, text)

	if !register {
		answer, err := cli.prompt(i18n.KeyConfirmPrompt)
		if errors.Is(err, errEnd) {
			return nil
		}
		if err != nil {
			return err
		}
		if !isYes(answer) {
			return nil
		}
	}
	return cli.Register(ctx, text)
}

// Register persists text and reports the outcome. The returned error has already been shown.
func (cli *LookupCLI) Register(ctx context.Context, text string) error {
	page, err := cli.service.RegisterRecord(ctx, text)
	if err != nil {
		cli.printFailure(cli.service.UserMessage(err, i18n.KeyRegisterFailed))
		return err
	}

	_, _ = fmt.Fprintln(cli.stdoutWriter, cli.service.Message(i18n.KeyRegistered))
	if page.URL != "" {
		_, _ = cli.italic.Fprintln(cli.stdoutWriter, page.URL)
	}
	return nil
}

// prompt returns errEnd when the input is closed.
func (cli *LookupCLI) prompt(key string) (string, error) {
	_, _ = fmt.Fprint(cli.stdoutWriter, cli.service.Message(key))
	input, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input == "" {
			return "", errEnd
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("stdinReader.ReadString > %w", err)
		}
	}
	return strings.TrimSpace(input), nil
}

func (cli *LookupCLI) printFailure(message string) {
	_, _ = cli.failure.Fprintln(cli.stdoutWriter, message)
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes", "はい":
		return true
	}
	return false
}
