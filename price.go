package currency

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/govalues/decimal"
	"golang.org/x/text/language"
)

// Price is a price as entered by a user: a decimal amount in a currency.
type Price struct {
	Amount       string `json:"amount" validate:"required,decimal,positive"`
	CurrencyCode string `json:"currencyCode" validate:"required"`
}

// ValidationErrors maps a field name to its validation messages.
type ValidationErrors map[string][]string

func (e ValidationErrors) Error() string {
	var b strings.Builder
	for _, field := range []string{"amount", "currencyCode"} {
		for _, msg := range e[field] {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			b.WriteString(field + ": " + msg)
		}
	}
	return b.String()
}

var (
	priceValidate = newPriceValidator()

	// satoshiFactor and centFactor are the fixed scaling factors of
	// ConvertPriceOut and ConvertPriceIn.
	satoshiFactor = decimal.MustNew(1_000_000_000, 0)
	centFactor    = decimal.MustNew(100, 0)
)

func newPriceValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := parsePriceAmount(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("RegisterValidation(decimal) failed: %v", err))
	}
	if err := v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		d, err := parsePriceAmount(fl.Field().String())
		return err == nil && d.IsPos()
	}); err != nil {
		panic(fmt.Sprintf("RegisterValidation(positive) failed: %v", err))
	}
	return v
}

func parsePriceAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.Parse(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not numeric", ErrInvalidAmount, s)
	}
	return d, nil
}

// NewPrice returns a price with a normalised currency code.
func NewPrice(amount, code string) Price {
	return Price{Amount: strings.TrimSpace(amount), CurrencyCode: normCode(code)}
}

// Validate checks the price and returns English messages keyed by field
// name, or nil when the price is valid.
func (p Price) Validate() ValidationErrors {
	return p.ValidateWith(defaultTranslator, language.English)
}

var defaultTranslator = NewCatalogTranslator()

// ValidateWith is like [Price.Validate] but renders messages with tr in the
// language tag.
func (p Price) ValidateWith(tr Translator, tag language.Tag) ValidationErrors {
	err := priceValidate.Struct(p)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{"amount": {err.Error()}}
	}
	errs := make(ValidationErrors)
	for _, fe := range fieldErrs {
		key := priceMessageKey(fe.Field(), fe.Tag())
		errs[fe.Field()] = append(errs[fe.Field()], tr.Translate(tag, key, nil))
	}
	return errs
}

func priceMessageKey(field, tag string) string {
	switch {
	case field == "currencyCode":
		return KeyProvideCurrencyCode
	case tag == "required":
		return KeyProvideAmount
	case tag == "decimal":
		return KeyProvideNumericAmount
	default:
		return KeyAmountMustBePositive
	}
}

// priceFactor returns the fixed factor between the display amount and the
// stored integer amount of a price: 10^9 for BTC, 10^2 for everything else.
func priceFactor(code string) decimal.Decimal {
	if normCode(code) == "BTC" {
		return satoshiFactor
	}
	return centFactor
}

// ConvertPriceOut multiplies the amount of p in place by the price factor
// of its currency, e.g. 1 BTC becomes 1000000000 and 1 USD becomes 100.
//
// The factor is a fixed storage convention and ignores the divisibility of
// the currency; use [Registry.PriceToBaseUnits] for base units.
//
// Results are bounded by a 19-digit coefficient: ConvertPriceOut returns an
// error when the result has more than 19 integer digits, e.g. for
// 100000000000 BTC.
func ConvertPriceOut(p *Price) error {
	d, err := parsePriceAmount(p.Amount)
	if err != nil {
		return fmt.Errorf("converting price out: %w", err)
	}
	r, err := d.Mul(priceFactor(p.CurrencyCode))
	if err != nil {
		return fmt.Errorf("%q.Mul(%v) failed: %w", d, priceFactor(p.CurrencyCode), err)
	}
	p.Amount = r.Trim(0).String()
	return nil
}

// ConvertPriceIn reverses [ConvertPriceOut] in place.
// Fraction digits beyond the 19-digit coefficient are rounded.
func ConvertPriceIn(p *Price) error {
	d, err := parsePriceAmount(p.Amount)
	if err != nil {
		return fmt.Errorf("converting price in: %w", err)
	}
	r, err := d.Quo(priceFactor(p.CurrencyCode))
	if err != nil {
		return fmt.Errorf("%q.Quo(%v) failed: %w", d, priceFactor(p.CurrencyCode), err)
	}
	p.Amount = r.Trim(0).String()
	return nil
}

// PriceToBaseUnits returns the amount of p as an integer number of base
// units of its currency, using [Registry.CoinDivisibility].
func (r *Registry) PriceToBaseUnits(p Price, def WalletCurDef) (string, error) {
	div, err := r.CoinDivisibility(p.CurrencyCode, def)
	if err != nil {
		return "", fmt.Errorf("price to base units: %w", err)
	}
	return DecimalToInteger(p.Amount, div)
}

// PriceFromBaseUnits returns a price from an integer number of base units
// of the currency identified by code.
func (r *Registry) PriceFromBaseUnits(units, code string, def WalletCurDef) (Price, error) {
	div, err := r.CoinDivisibility(code, def)
	if err != nil {
		return Price{}, fmt.Errorf("price from base units: %w", err)
	}
	amount, err := IntegerToDecimal(units, div)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(amount, code), nil
}
