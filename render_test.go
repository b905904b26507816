package currency

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	f, _ := newTestFormatter(t)

	t.Run("default template", func(t *testing.T) {
		r, err := NewRenderer(f, "")
		require.NoError(t, err)
		got, err := r.RenderString(RenderData{Price: dec("0.5"), FromCur: "BTC", ToCur: "USD"})
		require.NoError(t, err)
		assert.Equal(t, `<span class="formatted-currency">₿0.5 ($32,000.00)</span>`, string(got))
	})

	t.Run("options", func(t *testing.T) {
		r, err := NewRenderer(f, "")
		require.NoError(t, err)
		got, err := r.RenderString(RenderData{
			Price:   dec("0.5"),
			FromCur: "BTC",
			ToCur:   "BTC",
			Options: []FormatOption{WithBTCUnit(UnitSatoshi)},
		})
		require.NoError(t, err)
		assert.Equal(t, `<span class="formatted-currency">50,000,000 sat</span>`, string(got))
	})

	t.Run("custom template", func(t *testing.T) {
		r, err := NewRenderer(f, `{{formatCurrency .Price .FromCur}}|{{validity .ToCur}}`)
		require.NoError(t, err)
		var b strings.Builder
		require.NoError(t, r.Render(&b, RenderData{Price: dec("2"), FromCur: "XMR", ToCur: "GBP"}))
		assert.Equal(t, "2 XMR|EXCHANGE_RATE_MISSING", b.String())
	})

	t.Run("escaping", func(t *testing.T) {
		r, err := NewRenderer(f, `<b>{{formatCurrency .Price .FromCur}}</b>`)
		require.NoError(t, err)
		got, err := r.RenderString(RenderData{Price: dec("1"), FromCur: "<X>"})
		require.NoError(t, err)
		assert.Equal(t, "<b>1 &lt;X&gt;</b>", string(got))
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := NewRenderer(f, "{{")
		assert.Error(t, err)
	})
}
