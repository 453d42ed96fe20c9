package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// CreateProductRequest alta de producto. Los campos de variante solo se leen
// según Type (unión etiquetada, igual que la entidad).
type CreateProductRequest struct {
	ID          string
	Name        string
	Description string
	Category    entity.ProductCategory
	Supplier    string
	Tags        []string

	BasePrice decimal.Decimal
	CostPrice decimal.Decimal

	InitialStock  int
	MinStockLevel int
	MaxStockLevel int

	Type entity.ProductType

	// STANDARD
	Markup decimal.Decimal

	// PERISHABLE
	ExpirationDate     time.Time
	ShelfLifeDays      int
	NearExpiryDiscount decimal.Decimal

	// BULK
	Unit            string
	PricePerUnit    decimal.Decimal
	MinimumQuantity decimal.Decimal
}
