package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
)

func TestQuantityProblem(t *testing.T) {
	assert.Equal(t, domain.MsgPositiveInteger, domain.QuantityProblem(0))
	assert.Equal(t, domain.MsgPositiveInteger, domain.QuantityProblem(-3))
	assert.Empty(t, domain.QuantityProblem(1))
	assert.Empty(t, domain.QuantityProblem(domain.MaxQuantity))
	assert.Equal(t, domain.MsgQuantityTooLarge, domain.QuantityProblem(domain.MaxQuantity+1))
}

func TestPriceProblem(t *testing.T) {
	cases := map[string]string{
		"0":               domain.MsgPositiveDecimal,
		"-1":              domain.MsgPositiveDecimal,
		"0.004":           domain.MsgPriceScale,
		"1.005":           domain.MsgPriceScale,
		"0.01":            "",
		"1.50":            "",
		"1.500":           "",
		"999999999999.99": "",
		"1000000000000":   domain.MsgPriceTooLarge,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, domain.PriceProblem(decimal.RequireFromString(in)))
		})
	}
}
