// Package app implements the operations the user interface calls: looking up a word,
// registering the reviewed result and reporting UI-side errors.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/ogura-an/internal/apperror"
	"github.com/at-ishikawa/ogura-an/internal/i18n"
	"github.com/at-ishikawa/ogura-an/internal/inference"
	"github.com/at-ishikawa/ogura-an/internal/meaning"
	"github.com/at-ishikawa/ogura-an/internal/notion"
)

// Error log kinds.
const (
	KindFetchWordMeaning = "fetch-word-meaning"
	KindRegisterRecord   = "register-record"
	KindNotifyError      = "notify-error"
)

// UserError carries the message to show to the user. Err keeps the internal detail.
type UserError struct {
	MessageKey string
	Message    string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

type Service struct {
	lookup   inference.Client
	pages    PageCreator
	errorLog ErrorLogger
	messages *i18n.Translator
}

func NewService(
	lookup inference.Client,
	pages PageCreator,
	errorLog ErrorLogger,
	messages *i18n.Translator,
) *Service {
	return &Service{
		lookup:   lookup,
		pages:    pages,
		errorLog: errorLog,
		messages: messages,
	}
}

// FetchWordMeaning returns the raw lookup text for the user to review.
func (s *Service) FetchWordMeaning(ctx context.Context, word, wordContext string) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", s.userError(i18n.KeyWordRequired, &apperror.InvalidRecordError{Field: "word"})
	}

	text, err := s.lookup.LookupMeaning(ctx, inference.LookupRequest{
		Word:    word,
		Context: wordContext,
	})
	if err != nil {
		s.errorLog.LogError(KindFetchWordMeaning, err.Error())
		return "", s.userError(i18n.KeyLookupFailed, fmt.Errorf("lookup.LookupMeaning > %w", err))
	}
	return text, nil
}

// RegisterRecord parses the reviewed text and persists it. Nothing is persisted when the
// text is malformed.
func (s *Service) RegisterRecord(ctx context.Context, rawResultText string) (notion.Page, error) {
	result, err := meaning.Parse(rawResultText)
	if err != nil {
		s.errorLog.LogError(KindRegisterRecord, err.Error())
		return notion.Page{}, s.userError(i18n.KeyRegisterFailed, fmt.Errorf("meaning.Parse > %w", err))
	}

	page, err := s.pages.CreatePage(ctx, result)
	if err != nil {
		s.errorLog.LogError(KindRegisterRecord, err.Error())
		return notion.Page{}, s.userError(i18n.KeyRegisterFailed, fmt.Errorf("pages.CreatePage > %w", err))
	}

	slog.Default().Info("registered a word",
		"word", result.Word,
		"page_id", page.ID)
	return page, nil
}

// NotifyError records an error the user interface could not handle itself.
func (s *Service) NotifyError(kind, message string) {
	if kind == "" {
		kind = KindNotifyError
	}
	s.errorLog.LogError(kind, message)
}

// Message returns the localized message for key.
func (s *Service) Message(key string) string {
	return s.messages.T(key)
}

func (s *Service) userError(key string, err error) *UserError {
	return &UserError{
		MessageKey: key,
		Message:    s.messages.T(key),
		Err:        err,
	}
}

// UserMessage returns the message to show for err, falling back to the message for
// fallbackKey when err carries none.
func (s *Service) UserMessage(err error, fallbackKey string) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Message
	}
	return s.messages.T(fallbackKey)
}
