package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_T(t *testing.T) {
	tests := []struct {
		name       string
		locale     string
		key        string
		wantLocale string
		want       string
	}{
		{
			name:       "japanese lookup failure",
			locale:     "ja",
			key:        KeyLookupFailed,
			wantLocale: "ja",
			want:       "エラーが発生しました",
		},
		{
			name:       "japanese register failure",
			locale:     "ja",
			key:        KeyRegisterFailed,
			wantLocale: "ja",
			want:       "Notionへの登録に失敗しました",
		},
		{
			name:       "english",
			locale:     "en",
			key:        KeyRegisterFailed,
			wantLocale: "en",
			want:       "Failed to register to Notion",
		},
		{
			name:       "unknown locale falls back to japanese",
			locale:     "fr",
			key:        KeyWordRequired,
			wantLocale: "ja",
			want:       "ワードを入力してください",
		},
		{
			name:       "empty locale",
			locale:     "",
			key:        KeyRegistered,
			wantLocale: "ja",
			want:       "Notionに登録しました",
		},
		{
			name:       "unknown key",
			locale:     "en",
			key:        "missing",
			wantLocale: "en",
			want:       "missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator, err := NewTranslator(tt.locale)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLocale, translator.Locale())
			assert.Equal(t, tt.want, translator.T(tt.key))
		})
	}
}

func TestCatalog_SameKeys(t *testing.T) {
	for key := range catalog[LocaleJapanese] {
		assert.Contains(t, catalog[LocaleEnglish], key)
	}
	assert.Len(t, catalog[LocaleEnglish], len(catalog[LocaleJapanese]))
}
