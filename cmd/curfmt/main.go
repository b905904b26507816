// Command curfmt formats an amount, optionally paired with its value in a
// second currency.
//
//	curfmt -amount 0.5 -from BTC -to USD -fetch
//	curfmt -amount 0.5 -from BTC -to USD -rates USD=64000,EUR=59000
//	curfmt -amount 0.0012 -from BTC -unit SATOSHI
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/marketdesk/currency"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "curfmt:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("curfmt", flag.ContinueOnError)
	var (
		configName = fs.String("config", "curfmt", "settings file name, without extension")
		amountFlag = fs.String("amount", "", "amount to format")
		from       = fs.String("from", "", "currency of the amount")
		to         = fs.String("to", "", "currency to show the converted amount in")
		fetch      = fs.Bool("fetch", false, "fetch exchange rates before formatting")
		rates      = fs.String("rates", "", "exchange rates against the pivot coin, e.g. USD=64000,EUR=59000")
		unit       = fs.String("unit", "", "bitcoin display unit: BTC, MBTC, UBTC or SATOSHI")
		locale     = fs.String("locale", "", "display locale, e.g. en-US")
		html       = fs.Bool("html", false, "render through the formattedCurrency template")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := currency.LoadSettings(*configName)
	if err != nil {
		return err
	}
	if *unit != "" {
		settings.BTCUnit = *unit
	}
	if *locale != "" {
		settings.Locale = *locale
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	log := currency.NewLogger("curfmt", settings.LogLevel)
	defer log.Sync() //nolint:errcheck

	amount, err := decimal.NewFromString(strings.TrimSpace(*amountFlag))
	if err != nil {
		return fmt.Errorf("%w: %q", currency.ErrInvalidAmount, *amountFlag)
	}
	if strings.TrimSpace(*from) == "" {
		return fmt.Errorf("missing -from currency")
	}

	registry := currency.NewRegistry(currency.WithDefaultWalletCurDef())
	cache := currency.NewRateCache(currency.RateCacheConfig{
		Registry: registry,
		Source: currency.NewHTTPRateSource(currency.HTTPRateSourceConfig{
			URL:     settings.RatesURL,
			Breaker: settings.Breaker,
			Logger:  log,
		}),
		WalletCurrencies: settings.WalletCurrencies,
		Logger:           log,
	})

	if *rates != "" {
		table, err := parseRates(*rates)
		if err != nil {
			return err
		}
		pivot, err := registry.PivotCoin(settings.WalletCurrencies)
		if err != nil {
			return err
		}
		cache.Replace(table, pivot)
	}
	if *fetch {
		fctx := ctx
		if settings.FetchTimeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(ctx, settings.FetchTimeout)
			defer cancel()
		}
		if err := cache.Refresh(fctx); err != nil {
			log.Warn("exchange rates unavailable", zap.Error(err))
		}
	}

	tag, _ := settings.Tag()
	btcUnit, _ := settings.Unit()
	f := currency.NewFormatter(currency.FormatterConfig{
		Registry: registry,
		Rates:    cache,
		Logger:   log,
		Locale:   tag,
		BTCUnit:  btcUnit,
	})

	toCur := *to
	if toCur == "" {
		toCur = *from
	}

	if *html {
		r, err := currency.NewRenderer(f, "")
		if err != nil {
			return err
		}
		return r.Render(stdout, currency.RenderData{Price: amount, FromCur: *from, ToCur: toCur})
	}

	out := f.RenderPairedCurrency(amount, *from, toCur)
	if out == "" {
		return fmt.Errorf("unable to format %v %v", amount, *from)
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// parseRates parses a comma separated list of CODE=RATE pairs.
func parseRates(s string) (map[string]float64, error) {
	table := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		code, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("parsing rates: malformed pair %q", pair)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing rates: %q: %w", pair, err)
		}
		table[strings.TrimSpace(code)] = rate
	}
	return table, nil
}
