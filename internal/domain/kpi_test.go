package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidChannel(t *testing.T) {
	for _, channel := range []string{"general", "seo", "sem", "email", "social", "affiliate", "marketplace", "direct", "other"} {
		assert.True(t, IsValidChannel(channel), channel)
	}

	assert.False(t, IsValidChannel("tiktok"))
	assert.False(t, IsValidChannel("SEO")) // a normalização acontece antes
	assert.False(t, IsValidChannel(""))
}

func TestIsValidCurrency(t *testing.T) {
	assert.True(t, IsValidCurrency("EUR"))
	assert.True(t, IsValidCurrency("BRL"))

	assert.False(t, IsValidCurrency("eur"))
	assert.False(t, IsValidCurrency("EURO"))
	assert.False(t, IsValidCurrency("E1R"))
	assert.False(t, IsValidCurrency(""))
}

func TestIsValidTaxRate(t *testing.T) {
	assert.True(t, IsValidTaxRate(0))
	assert.True(t, IsValidTaxRate(0.19))
	assert.True(t, IsValidTaxRate(1))

	assert.False(t, IsValidTaxRate(-0.01))
	assert.False(t, IsValidTaxRate(1.01))
}
