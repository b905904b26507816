package currency

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys looked up through a [Translator].
const (
	KeyCurSymbolAmount = "cryptoCurrencyFormat.curSymbolAmount"
	KeyCurCodeAmount   = "cryptoCurrencyFormat.curCodeAmount"
	KeyCurrencyPairing = "currencyPairing"

	KeyProvideAmount        = "priceModelErrors.provideAmount"
	KeyProvideNumericAmount = "priceModelErrors.provideNumericAmount"
	KeyAmountMustBePositive = "priceModelErrors.amountMustBePositive"
	KeyProvideCurrencyCode  = "priceModelErrors.provideCurrencyCode"
)

// Translator renders a message key with named substitution parameters.
type Translator interface {
	Translate(tag language.Tag, key string, params map[string]string) string
}

var englishMessages = map[string]string{
	KeyCurSymbolAmount:      "%{symbol}%{amount}",
	KeyCurCodeAmount:        "%{amount} %{code}",
	KeyCurrencyPairing:      "%{baseCurValue} (%{convertedCurValue})",
	KeyProvideAmount:        "Please provide an amount.",
	KeyProvideNumericAmount: "Please provide the amount as a number.",
	KeyAmountMustBePositive: "The amount must be greater than 0.",
	KeyProvideCurrencyCode:  "Please provide a currency code.",
}

var placeholder = regexp.MustCompile(`%\{(\w+)\}`)

// CatalogTranslator is a [Translator] backed by an x/text message catalog.
// Messages use polyglot style "%{name}" placeholders. Unknown keys render as
// the key itself. Languages without a translation fall back to English.
type CatalogTranslator struct {
	builder *catalog.Builder

	mu     sync.RWMutex
	params map[string][]string // key -> parameter names in argument order
}

// NewCatalogTranslator returns a translator preloaded with English messages.
func NewCatalogTranslator() *CatalogTranslator {
	t := &CatalogTranslator{
		builder: catalog.NewBuilder(catalog.Fallback(language.English)),
		params:  make(map[string][]string),
	}
	for key, msg := range englishMessages {
		if err := t.Set(language.English, key, msg); err != nil {
			panic(fmt.Sprintf("Set(%q) failed: %v", key, err))
		}
	}
	return t
}

// Set registers msg for key in language tag.
func (t *CatalogTranslator) Set(tag language.Tag, key, msg string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := t.params[key]
	index := func(name string) int {
		for i, n := range names {
			if n == name {
				return i + 1
			}
		}
		names = append(names, name)
		return len(names)
	}

	var b strings.Builder
	last := 0
	for _, m := range placeholder.FindAllStringSubmatchIndex(msg, -1) {
		b.WriteString(strings.ReplaceAll(msg[last:m[0]], "%", "%%"))
		fmt.Fprintf(&b, "%%[%d]s", index(msg[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(strings.ReplaceAll(msg[last:], "%", "%%"))

	if err := t.builder.SetString(tag, key, b.String()); err != nil {
		return fmt.Errorf("setting message %q: %w", key, err)
	}
	t.params[key] = names
	return nil
}

// Translate implements [Translator].
func (t *CatalogTranslator) Translate(tag language.Tag, key string, params map[string]string) string {
	t.mu.RLock()
	names, ok := t.params[key]
	t.mu.RUnlock()
	if !ok {
		return key
	}
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = params[n]
	}
	p := message.NewPrinter(tag, message.Catalog(t.builder))
	return p.Sprintf(key, args...)
}
