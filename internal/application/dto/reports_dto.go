package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// InventoryValuation totales financieros del inventario activo.
type InventoryValuation struct {
	TotalValue      decimal.Decimal // stock a precio de venta
	TotalCost       decimal.Decimal // stock a precio de costo
	PotentialProfit decimal.Decimal
}

// CategorySummary agregado por categoría para el reporte de inventario.
type CategorySummary struct {
	Category entity.ProductCategory
	Products int
	Units    int
	Value    decimal.Decimal
	Cost     decimal.Decimal
}

// SupplierSummary agregado por proveedor.
type SupplierSummary struct {
	Supplier string
	Products int
	Value    decimal.Decimal
}

// ProductProfit margen por producto para el reporte de rentabilidad.
type ProductProfit struct {
	ID         string
	Name       string
	UnitPrice  decimal.Decimal
	UnitCost   decimal.Decimal
	MarginPct  decimal.Decimal
	StockValue decimal.Decimal
}
