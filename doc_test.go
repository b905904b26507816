package currency_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/marketdesk/currency"
)

// In this example, a display amount is converted to satoshis and back.
func Example_baseUnits() {
	sats, err := currency.DecimalToInteger("0.00012345", 8)
	if err != nil {
		panic(err)
	}
	btc, err := currency.IntegerToDecimal(sats, 8)
	if err != nil {
		panic(err)
	}
	fmt.Println(sats)
	fmt.Println(btc)
	// Output:
	// 12345
	// 0.00012345
}

func ExampleRegistry_CoinDivisibility() {
	r := currency.NewRegistry(currency.WithDefaultWalletCurDef())
	for _, code := range []string{"USD", "BTC", "ETH", "XMR"} {
		d, err := r.CoinDivisibility(code, nil)
		if err != nil {
			panic(err)
		}
		fmt.Println(code, d)
	}
	// Output:
	// USD 2
	// BTC 8
	// ETH 18
	// XMR 8
}

func ExampleRegistry_CurMeta() {
	r := currency.NewRegistry()
	m, err := r.CurMeta("btc")
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Code, m.IsWalletCur, m.IsCryptoListingCur, m.Kind())

	_, err = r.CurMeta("QQQ")
	fmt.Println(currency.IsUnrecognizedCurrency(err))
	// Output:
	// BTC true true wallet
	// true
}

func ExampleConvert() {
	rates := currency.NewRateCache(currency.RateCacheConfig{})
	rates.Replace(map[string]float64{"USD": 64000, "EUR": 59000}, "BTC")

	usd, err := currency.Convert(rates, "0.25", "BTC", "USD")
	if err != nil {
		panic(err)
	}
	fmt.Println(usd)

	_, err = currency.Convert(rates, "1", "BTC", "GBP")
	fmt.Println(err)
	// Output:
	// 16000
	// converting BTC to GBP: no exchange rate data for GBP
}

func ExampleRateCache_Fetch() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"USD": 64000, "EUR": 59000}`)
	}))
	defer srv.Close()

	rates := currency.NewRateCache(currency.RateCacheConfig{
		Source:           currency.NewHTTPRateSource(currency.HTTPRateSourceConfig{URL: srv.URL}),
		WalletCurrencies: []string{"BTC"},
	})
	rates.Events().Subscribe(currency.TopicRateChange, func(ev currency.Event) {
		fmt.Println("changed:", ev.Payload.(currency.RateChangeEvent).Changed)
	})

	if err := rates.Refresh(context.Background()); err != nil {
		panic(err)
	}
	usd, _ := rates.ExchangeRate("USD")
	fmt.Println(usd)
	// Output:
	// changed: [BTC EUR USD]
	// 64000
}

func ExampleFormatter_Format() {
	f := currency.NewFormatter(currency.FormatterConfig{})
	amount := decimal.RequireFromString("0.00012345")

	for _, unit := range []currency.BTCUnit{currency.UnitBTC, currency.UnitMBTC, currency.UnitSatoshi} {
		s, err := f.Format(amount, "BTC", currency.WithBTCUnit(unit))
		if err != nil {
			panic(err)
		}
		fmt.Println(s)
	}
	// Output:
	// ₿0.00012345
	// 0.12345 mBTC
	// 12,345 sat
}

func ExampleFormatter_RenderPairedCurrency() {
	rates := currency.NewRateCache(currency.RateCacheConfig{})
	rates.Replace(map[string]float64{"USD": 64000, "EUR": 59000}, "BTC")
	f := currency.NewFormatter(currency.FormatterConfig{Rates: rates})

	amount := decimal.RequireFromString("1.5")
	fmt.Println(f.RenderPairedCurrency(amount, "BTC", "USD"))
	fmt.Println(f.RenderPairedCurrency(amount, "BTC", "EUR", currency.WithLocale(language.German)))
	// Output:
	// ₿1.5 ($96,000.00)
	// ₿1,5 (€88.500,00)
}

func ExamplePrice_Validate() {
	fmt.Println(currency.Price{Amount: "0", CurrencyCode: "USD"}.Validate())
	fmt.Println(currency.Price{Amount: "5", CurrencyCode: "USD"}.Validate() == nil)
	// Output:
	// amount: The amount must be greater than 0.
	// true
}

func ExampleConvertPriceOut() {
	p := currency.Price{Amount: "1", CurrencyCode: "BTC"}
	if err := currency.ConvertPriceOut(&p); err != nil {
		panic(err)
	}
	fmt.Println(p.Amount)
	// Output: 1000000000
}
