package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newStandardProduct() *entity.Product {
	return &entity.Product{
		ID:            "P001",
		Name:          "Gaseosa 600ml",
		Category:      entity.CategoryBeverages,
		Type:          entity.ProductTypeStandard,
		CostPrice:     decimal.NewFromInt(8),
		Markup:        decimal.NewFromFloat(0.25),
		CurrentStock:  50,
		MinStockLevel: 10,
		MaxStockLevel: 100,
		Active:        true,
	}
}

func newPerishableProduct(ref time.Time, daysLeft, shelfLife int) *entity.Product {
	return &entity.Product{
		ID:                 "P002",
		Name:               "Leche Entera 1L",
		Category:           entity.CategoryDairy,
		Type:               entity.ProductTypePerishable,
		CostPrice:          decimal.NewFromFloat(1.20),
		BasePrice:          decimal.NewFromInt(2),
		ExpirationDate:     ref.Add(time.Duration(daysLeft) * 24 * time.Hour),
		ShelfLifeDays:      shelfLife,
		NearExpiryDiscount: decimal.NewFromFloat(0.30),
		CurrentStock:       30,
		MinStockLevel:      5,
		MaxStockLevel:      60,
		Active:             true,
	}
}

func newBulkProduct() *entity.Product {
	return &entity.Product{
		ID:              "P003",
		Name:            "Arroz a Granel",
		Category:        entity.CategoryOther,
		Type:            entity.ProductTypeBulk,
		CostPrice:       decimal.NewFromFloat(0.70),
		PricePerUnit:    decimal.NewFromFloat(1.20),
		Unit:            "kg",
		MinimumQuantity: decimal.NewFromFloat(0.5),
		CurrentStock:    100,
		MinStockLevel:   20,
		MaxStockLevel:   200,
		Active:          true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Precio de venta por variante
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeSellingPrice_EstandarAplicaMargen(t *testing.T) {
	p := newStandardProduct()

	// 8 * (1 + 0.25) = 10
	price := p.ComputeSellingPrice(time.Now())
	assert.True(t, price.Equal(decimal.NewFromInt(10)),
		"el precio estándar debe ser costo*(1+margen), obtenido %s", price)
}

func TestComputeSellingPrice_PerecederoLejosDelVencimiento(t *testing.T) {
	ref := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := newPerishableProduct(ref, 8, 14) // 8 días > 20% de 14 (2.8)

	price := p.ComputeSellingPrice(ref)
	assert.True(t, price.Equal(decimal.NewFromInt(2)),
		"lejos del vencimiento se cobra el precio de lista, obtenido %s", price)
}

func TestComputeSellingPrice_PerecederoCercaDelVencimiento(t *testing.T) {
	ref := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := newPerishableProduct(ref, 2, 14) // 2 días <= 20% de 14 (2.8)

	// 2 * (1 - 0.30) = 1.40
	price := p.ComputeSellingPrice(ref)
	assert.True(t, price.Equal(decimal.NewFromFloat(1.40)),
		"cerca del vencimiento se aplica el descuento automático, obtenido %s", price)
}

func TestComputeSellingPrice_GranelEsPrecioPorUnidad(t *testing.T) {
	p := newBulkProduct()

	price := p.ComputeSellingPrice(time.Now())
	assert.True(t, price.Equal(decimal.NewFromFloat(1.20)))
}

func TestComputePriceForQuantity_AjustaAlMinimo(t *testing.T) {
	p := newBulkProduct()

	// 0.3 kg < mínimo 0.5 kg: se cobra el mínimo (ajusta, no rechaza)
	price := p.ComputePriceForQuantity(decimal.NewFromFloat(0.3))
	assert.True(t, price.Equal(decimal.NewFromFloat(0.60)),
		"por debajo del mínimo se cobra como el mínimo, obtenido %s", price)

	// 2 kg: precio proporcional normal
	price = p.ComputePriceForQuantity(decimal.NewFromInt(2))
	assert.True(t, price.Equal(decimal.NewFromFloat(2.40)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestIsExpired_SoloPerecederosVencidos(t *testing.T) {
	ref := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	expired := newPerishableProduct(ref, -1, 14)
	assert.True(t, expired.IsExpired(ref), "un perecedero con fecha pasada está vencido")

	fresh := newPerishableProduct(ref, 5, 14)
	assert.False(t, fresh.IsExpired(ref))

	standard := newStandardProduct()
	assert.False(t, standard.IsExpired(ref), "un producto estándar nunca vence")
}

func TestIsNearExpiration_NoAplicaAOtrasVariantes(t *testing.T) {
	assert.False(t, newStandardProduct().IsNearExpiration(time.Now()))
	assert.False(t, newBulkProduct().IsNearExpiration(time.Now()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestReduceStock_DescuentaYValida(t *testing.T) {
	p := newStandardProduct()

	require.NoError(t, p.ReduceStock(3))
	assert.Equal(t, 47, p.CurrentStock)
}

func TestReduceStock_FallaSinMutar(t *testing.T) {
	p := newStandardProduct()

	err := p.ReduceStock(51)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 50, p.CurrentStock, "un descuento fallido no debe tocar el stock")

	err = p.ReduceStock(0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 50, p.CurrentStock)

	err = p.ReduceStock(-5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 50, p.CurrentStock)
}

func TestAddStock_TechoEnMaximo(t *testing.T) {
	p := newStandardProduct()

	p.AddStock(30)
	assert.Equal(t, 80, p.CurrentStock)

	p.AddStock(500)
	assert.Equal(t, 100, p.CurrentStock, "el stock nunca supera MaxStockLevel")

	p.AddStock(-10)
	assert.Equal(t, 100, p.CurrentStock, "cantidades no positivas se ignoran")
}

func TestIsLowStock_YRecomendacion(t *testing.T) {
	p := newStandardProduct()
	p.CurrentStock = 10 // igual al mínimo cuenta como bajo

	assert.True(t, p.IsLowStock())
	assert.Equal(t, 90, p.RestockRecommendation())

	p.CurrentStock = 11
	assert.False(t, p.IsLowStock())
	assert.Equal(t, 0, p.RestockRecommendation())
}

func TestIsOverstocked_DesdeElNoventaPorCiento(t *testing.T) {
	p := newStandardProduct()

	p.CurrentStock = 90
	assert.True(t, p.IsOverstocked())

	p.CurrentStock = 89
	assert.False(t, p.IsOverstocked())
}

// ──────────────────────────────────────────────────────────────────────────────
// Finanzas y etiquetas
// ──────────────────────────────────────────────────────────────────────────────

func TestProfitMargin_PorcentajeSobreCosto(t *testing.T) {
	p := newStandardProduct()

	// precio 10, costo 8: margen (10-8)/8*100 = 25%
	margin := p.ProfitMargin(time.Now())
	assert.True(t, margin.Equal(decimal.NewFromInt(25)), "obtenido %s", margin)

	p.CostPrice = decimal.Zero
	assert.True(t, p.ProfitMargin(time.Now()).IsZero(), "costo cero no divide")
}

func TestInventoryValueAndCost(t *testing.T) {
	p := newStandardProduct() // 50 unidades, precio 10, costo 8

	assert.True(t, p.InventoryValue(time.Now()).Equal(decimal.NewFromInt(500)))
	assert.True(t, p.InventoryCost().Equal(decimal.NewFromInt(400)))
}

func TestTags_AgregarSinDuplicarYQuitar(t *testing.T) {
	p := newStandardProduct()

	p.AddTag("bebida")
	p.AddTag("bebida")
	assert.Equal(t, []string{"bebida"}, p.Tags)
	assert.True(t, p.HasTag("bebida"))

	p.RemoveTag("bebida")
	assert.False(t, p.HasTag("bebida"))
}

func TestParseCategory_DesconocidaCaeEnOtros(t *testing.T) {
	assert.Equal(t, entity.CategoryDairy, entity.ParseCategory("Lácteos"))
	assert.Equal(t, entity.CategoryOther, entity.ParseCategory("Mascotas"))
}
