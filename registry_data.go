package currency

var walletCurrencies = []WalletCurrency{
	MustNewWalletCurrency("BTC", "TBTC", "Bitcoin", "₿", 8),
	MustNewWalletCurrency("BCH", "TBCH", "Bitcoin Cash", "", 8),
	MustNewWalletCurrency("LTC", "TLTC", "Litecoin", "Ł", 8),
	MustNewWalletCurrency("ZEC", "TZEC", "Zcash", "ⓩ", 8),
	MustNewWalletCurrency("ETH", "TETH", "Ethereum", "Ξ", 18),
}

var cryptoListingCurrencies = []string{
	"ADA", "ATOM", "BAT", "BCH", "BNB", "BSV", "BTC", "BTG", "DAI", "DASH",
	"DCR", "DGB", "DOGE", "EOS", "ETC", "ETH", "FIL", "GRIN", "HOT", "ICX",
	"IOST", "KMD", "LINK", "LSK", "LTC", "MIOTA", "MKR", "NANO", "NEO", "OMG",
	"ONT", "QTUM", "REP", "RVN", "SC", "STEEM", "TRX", "USDC", "USDT", "VET",
	"WAVES", "XEM", "XLM", "XMR", "XRP", "XTZ", "XVG", "ZEC", "ZIL", "ZRX",
}
