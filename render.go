package currency

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/shopspring/decimal"
)

// DefaultCurrencyTemplate is the markup rendered by a [Renderer] unless
// another template is supplied.
const DefaultCurrencyTemplate = `<span class="formatted-currency">{{pairedCurrency .}}</span>`

// RenderData is the input of the formattedCurrency template.
type RenderData struct {
	Price   decimal.Decimal
	FromCur string
	ToCur   string
	Options []FormatOption
}

// Renderer executes the formattedCurrency template with a [Formatter].
// The template can call:
//
//	pairedCurrency .               -> Formatter.RenderPairedCurrency
//	formatCurrency .Price .FromCur -> Formatter.FormatCurrency
//	validity .FromCur              -> Formatter.CurrencyValidity
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses text as the formattedCurrency template. An empty text
// selects [DefaultCurrencyTemplate].
func NewRenderer(f *Formatter, text string) (*Renderer, error) {
	if text == "" {
		text = DefaultCurrencyTemplate
	}
	funcs := template.FuncMap{
		"pairedCurrency": func(d RenderData) string {
			return f.RenderPairedCurrency(d.Price, d.FromCur, d.ToCur, d.Options...)
		},
		"formatCurrency": func(amount decimal.Decimal, code string) string {
			return f.FormatCurrency(amount, code)
		},
		"validity": func(code string) string {
			return f.CurrencyValidity(code).String()
		},
	}
	tmpl, err := template.New("formattedCurrency").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing currency template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the template output for data to w.
func (r *Renderer) Render(w io.Writer, data RenderData) error {
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering currency: %w", err)
	}
	return nil
}

// RenderString returns the template output for data.
func (r *Renderer) RenderString(data RenderData) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec
}
