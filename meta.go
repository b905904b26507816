package currency

// Meta classifies a currency code against the three registries.
// A code may belong to more than one registry; each flag is independent.
type Meta struct {
	Code               string
	IsFiat             bool
	IsWalletCur        bool
	IsCryptoListingCur bool

	// Def is the wallet or fiat definition of the code, or nil for codes
	// that are only known as crypto listing currencies.
	Def Definition
}

// CurMeta normalises code to upper case and classifies it.
// It returns an [UnrecognizedCurrencyError] if the code matches no registry.
func (r *Registry) CurMeta(code string) (Meta, error) {
	code = normCode(code)
	m := Meta{Code: code}

	if c, ok := r.wallet[code]; ok {
		m.IsWalletCur = true
		m.Def = c
	}
	if c, ok := r.fiat[code]; ok {
		m.IsFiat = true
		if m.Def == nil {
			m.Def = c
		}
	}
	_, m.IsCryptoListingCur = r.listing[code]

	if !m.IsFiat && !m.IsWalletCur && !m.IsCryptoListingCur {
		return Meta{}, &UnrecognizedCurrencyError{Code: code}
	}
	return m, nil
}

// Kind returns the kind used for display: wallet currencies take
// precedence over fiat, which takes precedence over crypto listing codes.
func (m Meta) Kind() Kind {
	switch {
	case m.IsWalletCur:
		return KindWallet
	case m.IsFiat:
		return KindFiat
	case m.IsCryptoListingCur:
		return KindCryptoListing
	default:
		return KindUnknown
	}
}
