package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

func newCustomer(tier entity.CustomerTier) *entity.Customer {
	return &entity.Customer{
		ID:            "C1001",
		FirstName:     "María",
		LastName:      "González",
		Tier:          tier,
		TotalSpent:    decimal.Zero,
		LoyaltyPoints: decimal.Zero,
		Active:        true,
	}
}

func TestDiscountRate_PorNivel(t *testing.T) {
	cases := []struct {
		tier entity.CustomerTier
		want string
	}{
		{entity.TierRegular, "0"},
		{entity.TierPremium, "0.05"},
		{entity.TierVIP, "0.1"},
		{entity.TierEmployee, "0.15"},
	}
	for _, tc := range cases {
		c := newCustomer(tc.tier)
		want := decimal.RequireFromString(tc.want)
		assert.True(t, c.DiscountRate().Equal(want),
			"nivel %s: esperado %s, obtenido %s", tc.tier, want, c.DiscountRate())
	}
}

func TestPointsMultiplier_PorNivel(t *testing.T) {
	cases := []struct {
		tier entity.CustomerTier
		want string
	}{
		{entity.TierRegular, "1"},
		{entity.TierPremium, "1.5"},
		{entity.TierVIP, "2"},
		{entity.TierEmployee, "3"},
	}
	for _, tc := range cases {
		c := newCustomer(tc.tier)
		want := decimal.RequireFromString(tc.want)
		assert.True(t, c.PointsMultiplier().Equal(want),
			"nivel %s: esperado %s, obtenido %s", tc.tier, want, c.PointsMultiplier())
	}
}

func TestRecordPurchase_AcumulaGastoYPuntos(t *testing.T) {
	c := newCustomer(entity.TierVIP)

	c.RecordPurchase(decimal.NewFromInt(100))

	assert.True(t, c.TotalSpent.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, c.TransactionCount)
	// 100 * 0.01 * 2.0 = 2 puntos
	assert.True(t, c.LoyaltyPoints.Equal(decimal.NewFromInt(2)),
		"obtenido %s puntos", c.LoyaltyPoints)
}

func TestRecordPurchase_MontoNegativoRevierte(t *testing.T) {
	c := newCustomer(entity.TierRegular)
	c.RecordPurchase(decimal.NewFromInt(100))

	c.RecordPurchase(decimal.NewFromInt(-40))

	assert.True(t, c.TotalSpent.Equal(decimal.NewFromInt(60)))
	// el contador registra el evento también en la reversión
	assert.Equal(t, 2, c.TransactionCount)
	// 1 - 0.4 = 0.6 puntos
	assert.True(t, c.LoyaltyPoints.Equal(decimal.NewFromFloat(0.6)),
		"obtenido %s puntos", c.LoyaltyPoints)
}

func TestRedeemPoints_FallaSinMutar(t *testing.T) {
	c := newCustomer(entity.TierRegular)
	c.AddPoints(decimal.NewFromInt(10))

	err := c.RedeemPoints(decimal.NewFromInt(15))
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
	assert.True(t, c.LoyaltyPoints.Equal(decimal.NewFromInt(10)),
		"un canje fallido no debe tocar el saldo")

	require.NoError(t, c.RedeemPoints(decimal.NewFromInt(10)))
	assert.True(t, c.LoyaltyPoints.IsZero())
}

func TestEligibleForUpgrade_Umbrales(t *testing.T) {
	regular := newCustomer(entity.TierRegular)
	regular.TotalSpent = decimal.NewFromInt(499)
	assert.False(t, regular.EligibleForUpgrade())
	regular.TotalSpent = decimal.NewFromInt(500)
	assert.True(t, regular.EligibleForUpgrade(), "Regular con gasto >= 500 es candidato")

	premium := newCustomer(entity.TierPremium)
	premium.TotalSpent = decimal.NewFromInt(1999)
	assert.False(t, premium.EligibleForUpgrade())
	premium.TotalSpent = decimal.NewFromInt(2000)
	assert.True(t, premium.EligibleForUpgrade(), "Premium con gasto >= 2000 es candidato")

	vip := newCustomer(entity.TierVIP)
	vip.TotalSpent = decimal.NewFromInt(100000)
	assert.False(t, vip.EligibleForUpgrade(), "VIP y Employee no tienen ascenso")

	employee := newCustomer(entity.TierEmployee)
	employee.TotalSpent = decimal.NewFromInt(100000)
	assert.False(t, employee.EligibleForUpgrade())
}

func TestFullName(t *testing.T) {
	c := newCustomer(entity.TierRegular)
	assert.Equal(t, "María González", c.FullName())
}
