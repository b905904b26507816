package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Setenv("CURFMT_LOG_LEVEL", "error")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"paired", []string{"-amount", "0.5", "-from", "BTC", "-to", "USD", "-rates", "USD=64000"}, "₿0.5 ($32,000.00)\n"},
		{"no rate", []string{"-amount", "0.5", "-from", "BTC", "-to", "GBP", "-rates", "USD=64000"}, "₿0.5\n"},
		{"single", []string{"-amount", "19.99", "-from", "usd"}, "$19.99\n"},
		{"unit", []string{"-amount", "0.0012", "-from", "BTC", "-unit", "satoshi"}, "120,000 sat\n"},
		{"locale", []string{"-amount", "1234.5", "-from", "BTC", "-locale", "de-DE"}, "₿1.234,5\n"},
		{"html", []string{"-amount", "1", "-from", "LTC", "-html"}, `<span class="formatted-currency">Ł1</span>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), append([]string{"-config", "none"}, tt.args...), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_Fetch(t *testing.T) {
	t.Setenv("CURFMT_LOG_LEVEL", "error")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/BTC", r.URL.Path)
		_, _ = w.Write([]byte(`{"EUR": 50000}`))
	}))
	defer srv.Close()
	t.Setenv("CURFMT_RATES_URL", srv.URL)

	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", "none", "-amount", "2", "-from", "BTC", "-to", "EUR", "-fetch"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "₿2 (€100,000.00)\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("CURFMT_LOG_LEVEL", "error")
	tests := map[string][]string{
		"bad amount":   {"-amount", "lots", "-from", "BTC"},
		"missing from": {"-amount", "1"},
		"bad unit":     {"-amount", "1", "-from", "BTC", "-unit", "bits"},
		"bad rates":    {"-amount", "1", "-from", "BTC", "-rates", "USD"},
		"unrecognized": {"-amount", "1", "-from", "NOPE"},
		"bad flag":     {"-nope"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), append([]string{"-config", "none"}, args...), &out)
			assert.Error(t, err)
		})
	}
}

func TestParseRates(t *testing.T) {
	got, err := parseRates("usd=64000, EUR = 59000.5")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"usd": 64000, "EUR": 59000.5}, got)

	for _, in := range []string{"USD", "=1", "USD=x"} {
		_, err := parseRates(in)
		assert.Error(t, err, in)
	}
}
