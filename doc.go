/*
Package currency implements currency classification, base-unit conversion,
exchange rate caching and locale-aware display formatting for fiat and
crypto currencies.

# Features

  - Exact conversion between display amounts and integer base units
  - Classification of codes against fiat, wallet and crypto listing registries
  - An exchange rate cache fed by an HTTP rate source, with change events
  - Conversion between currencies through a common pivot coin
  - Localized formatting with Bitcoin units (BTC, mBTC, μBTC, sat)
  - Validation and storage conversion of user entered prices

# Registries

A [Registry] holds three independent tables: fiat currencies (ISO 4217,
always two decimal places), wallet currencies (coins with a declared
divisibility, a symbol and a testnet code) and crypto listing currencies
(bare codes). A code may appear in more than one table; [Registry.CurMeta]
reports each match and [Registry.Lookup] returns the most specific
[Definition].

Exchange rates of wallet currencies are keyed on their mainnet code: TBTC
shares the rate of BTC. See [Registry.MainnetCode].

# Divisibility

Divisibility is the number of decimal places between the display unit and
the base unit of a currency: 8 for BTC (satoshi), 2 for USD (cent).
[Registry.CoinDivisibility] resolves it from a per-call wallet currency
definition, the process-wide definition, and the registries, in that order.

# Numbers

Functions accepting a [Number] take either a string or a float64.
String amounts are processed with arbitrary precision decimal arithmetic
and float64 amounts with floating point arithmetic.

# Exchange Rates

A [RateCache] stores rates against a pivot coin, whose own rate is 1.
[RateCache.Fetch] queries a [RateSource] and replaces the whole table on
success, publishing events on an [Events] hub:

  - [TopicFetchingRates] when a fetch starts;
  - [TopicRateChange] with the codes whose rate changed;
  - one [RateChangeTopic] event per changed code with its previous rate.

# Formatting

A [Formatter] renders amounts for display. Strict methods such as
[Formatter.Format] return errors; lenient twins such as
[Formatter.FormatCurrency] log the failure and return an empty string, so
that a display never fails.

# Errors

Recognition and rate failures are reported as [*UnrecognizedCurrencyError]
and [*NoExchangeRateDataError]. Input validation failures wrap
[ErrInvalidAmount] and [ErrInvalidDivisibility].
*/
package currency
