package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain"
)

// CustomerTier clasificación del cliente. Conjunto cerrado: determina la tasa
// de descuento en compras y el multiplicador de acumulación de puntos.
type CustomerTier string

const (
	TierRegular  CustomerTier = "REGULAR"
	TierPremium  CustomerTier = "PREMIUM"
	TierVIP      CustomerTier = "VIP"
	TierEmployee CustomerTier = "EMPLOYEE"
)

// AllTiers en el orden de los menús.
var AllTiers = []CustomerTier{TierRegular, TierPremium, TierVIP, TierEmployee}

// Umbrales de elegibilidad para subir de nivel (señal informativa, nunca automática).
var (
	upgradeThresholdRegular = decimal.NewFromInt(500)
	upgradeThresholdPremium = decimal.NewFromInt(2000)
)

// Customer representa un cliente del directorio. El directorio (repositorio)
// es dueño de la estructura; las transacciones solo la referencian.
type Customer struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Tier             CustomerTier
	TotalSpent       decimal.Decimal
	TransactionCount int
	LoyaltyPoints    decimal.Decimal // invariante: nunca negativo vía RedeemPoints
	MembershipDate   time.Time
	Active           bool
}

// FullName nombre completo para recibos y listados.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// DiscountRate fracción de descuento plana por nivel.
func (c *Customer) DiscountRate() decimal.Decimal {
	switch c.Tier {
	case TierPremium:
		return decimal.NewFromFloat(0.05)
	case TierVIP:
		return decimal.NewFromFloat(0.10)
	case TierEmployee:
		return decimal.NewFromFloat(0.15)
	default:
		return decimal.Zero
	}
}

// PointsMultiplier multiplicador de acumulación de puntos por nivel.
func (c *Customer) PointsMultiplier() decimal.Decimal {
	switch c.Tier {
	case TierPremium:
		return decimal.NewFromFloat(1.5)
	case TierVIP:
		return decimal.NewFromFloat(2.0)
	case TierEmployee:
		return decimal.NewFromFloat(3.0)
	default:
		return decimal.NewFromFloat(1.0)
	}
}

// RecordPurchase registra una compra: suma al gasto acumulado, incrementa el
// contador de transacciones y acumula puntos a razón de amount*0.01*multiplicador.
//
// Uso dual deliberado: con un monto NEGATIVO revierte el efecto de una compra
// reembolsada sobre el gasto acumulado (y descuenta la acumulación de puntos
// correspondiente). El contador de transacciones se incrementa en ambas
// direcciones, igual que el registro histórico.
func (c *Customer) RecordPurchase(amount decimal.Decimal) {
	c.TotalSpent = c.TotalSpent.Add(amount)
	c.TransactionCount++
	c.AddPoints(amount.Mul(decimal.NewFromFloat(0.01)).Mul(c.PointsMultiplier()))
}

// AddPoints suma puntos al saldo (acepta valores negativos en la reversión).
func (c *Customer) AddPoints(points decimal.Decimal) {
	c.LoyaltyPoints = c.LoyaltyPoints.Add(points)
}

// RedeemPoints canjea puntos del saldo. Falla sin mutar si el saldo es menor
// al solicitado (el saldo nunca queda negativo por esta vía).
func (c *Customer) RedeemPoints(points decimal.Decimal) error {
	if c.LoyaltyPoints.LessThan(points) {
		return domain.ErrInsufficientPoints
	}
	c.LoyaltyPoints = c.LoyaltyPoints.Sub(points)
	return nil
}

// EligibleForUpgrade señal informativa de ascenso de nivel: Regular con gasto
// ≥500 o Premium con gasto ≥2000. El sistema nunca asciende automáticamente.
func (c *Customer) EligibleForUpgrade() bool {
	if c.Tier == TierRegular && c.TotalSpent.GreaterThanOrEqual(upgradeThresholdRegular) {
		return true
	}
	if c.Tier == TierPremium && c.TotalSpent.GreaterThanOrEqual(upgradeThresholdPremium) {
		return true
	}
	return false
}
