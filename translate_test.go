package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCatalogTranslator(t *testing.T) {
	tr := NewCatalogTranslator()

	t.Run("english", func(t *testing.T) {
		got := tr.Translate(language.English, KeyCurCodeAmount, map[string]string{"amount": "1.5", "code": "BTC"})
		assert.Equal(t, "1.5 BTC", got)
		got = tr.Translate(language.AmericanEnglish, KeyCurSymbolAmount, map[string]string{"symbol": "₿", "amount": "1.5"})
		assert.Equal(t, "₿1.5", got)
		got = tr.Translate(language.English, KeyProvideAmount, nil)
		assert.Equal(t, "Please provide an amount.", got)
	})

	t.Run("reordered parameters", func(t *testing.T) {
		require.NoError(t, tr.Set(language.German, KeyCurCodeAmount, "%{code} %{amount}"))
		got := tr.Translate(language.German, KeyCurCodeAmount, map[string]string{"amount": "1,5", "code": "BTC"})
		assert.Equal(t, "BTC 1,5", got)
	})

	t.Run("fallback", func(t *testing.T) {
		got := tr.Translate(language.French, KeyCurrencyPairing, map[string]string{
			"baseCurValue":      "a",
			"convertedCurValue": "b",
		})
		assert.Equal(t, "a (b)", got)
	})

	t.Run("missing parameter", func(t *testing.T) {
		got := tr.Translate(language.English, KeyCurCodeAmount, map[string]string{"amount": "2"})
		assert.Equal(t, "2 ", got)
	})

	t.Run("literal percent", func(t *testing.T) {
		require.NoError(t, tr.Set(language.English, "discount", "%{value}% off"))
		got := tr.Translate(language.English, "discount", map[string]string{"value": "10"})
		assert.Equal(t, "10% off", got)
	})

	t.Run("unknown key", func(t *testing.T) {
		assert.Equal(t, "no.such.key", tr.Translate(language.English, "no.such.key", nil))
	})
}
