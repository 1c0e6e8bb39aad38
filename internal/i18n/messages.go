// Package i18n holds the messages shown to the user when an operation fails.
package i18n

import (
	"fmt"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
)

const (
	LocaleJapanese = "ja"
	LocaleEnglish  = "en"

	DefaultLocale = LocaleJapanese
)

// Message keys.
const (
	KeyLookupFailed   = "lookupFailed"
	KeyRegisterFailed = "registerFailed"
	KeyRegistered     = "registered"
	KeyWordRequired   = "wordRequired"
	KeyBadRequest     = "badRequest"

	KeyWordPrompt    = "wordPrompt"
	KeyContextPrompt = "contextPrompt"
	KeyConfirmPrompt = "confirmPrompt"
	KeySessionEnded  = "sessionEnded"
)

var catalog = map[string]map[string]string{
	LocaleJapanese: {
		KeyLookupFailed:   "エラーが発生しました",
		KeyRegisterFailed: "Notionへの登録に失敗しました",
		KeyRegistered:     "Notionに登録しました",
		KeyWordRequired:   "ワードを入力してください",
		KeyBadRequest:     "リクエストが不正です",
		KeyWordPrompt:     "ワード: ",
		KeyContextPrompt:  "文脈: ",
		KeyConfirmPrompt:  "Notionに登録しますか? [y/N]: ",
		KeySessionEnded:   "終了します",
	},
	LocaleEnglish: {
		KeyLookupFailed:   "An error occurred",
		KeyRegisterFailed: "Failed to register to Notion",
		KeyRegistered:     "Registered to Notion",
		KeyWordRequired:   "Enter a word",
		KeyBadRequest:     "Invalid request",
		KeyWordPrompt:     "Word: ",
		KeyContextPrompt:  "Context: ",
		KeyConfirmPrompt:  "Register to Notion? [y/N]: ",
		KeySessionEnded:   "Session ended",
	},
}

// Translator resolves message keys for one locale.
type Translator struct {
	trans ut.Translator
}

// NewTranslator returns a translator for locale. An unknown locale falls back to Japanese.
func NewTranslator(locale string) (*Translator, error) {
	jaLocale := ja.New()
	uni := ut.New(jaLocale, jaLocale, en.New())

	trans, found := uni.GetTranslator(locale)
	if !found {
		trans = uni.GetFallback()
	}

	for key, text := range catalog[trans.Locale()] {
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("trans.Add(%s) > %w", key, err)
		}
	}
	return &Translator{trans: trans}, nil
}

func (t *Translator) Locale() string {
	return t.trans.Locale()
}

// T returns the message for key, or the key itself when none is registered.
func (t *Translator) T(key string) string {
	message, err := t.trans.T(key)
	if err != nil {
		return key
	}
	return message
}

// SupportedLocales lists the locales NewTranslator knows.
func SupportedLocales() []string {
	return []string{LocaleJapanese, LocaleEnglish}
}
