package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain"
)

// ProductType discrimina la variante de precio del producto (unión etiquetada).
type ProductType string

const (
	ProductTypeStandard   ProductType = "STANDARD"   // margen fijo sobre el costo
	ProductTypePerishable ProductType = "PERISHABLE" // descuento automático cerca del vencimiento
	ProductTypeBulk       ProductType = "BULK"       // venta por peso/volumen con cantidad mínima
)

// ProductCategory categoría del producto para reportes y búsqueda.
type ProductCategory string

const (
	CategoryBeverages    ProductCategory = "Bebidas"
	CategorySnacks       ProductCategory = "Snacks"
	CategoryDairy        ProductCategory = "Lácteos"
	CategoryBakery       ProductCategory = "Panadería"
	CategoryHousehold    ProductCategory = "Hogar"
	CategoryElectronics  ProductCategory = "Electrónica"
	CategoryHealthBeauty ProductCategory = "Salud y Belleza"
	CategoryOther        ProductCategory = "Otros"
)

// AllCategories lista cerrada de categorías, en el orden de los menús.
var AllCategories = []ProductCategory{
	CategoryBeverages, CategorySnacks, CategoryDairy, CategoryBakery,
	CategoryHousehold, CategoryElectronics, CategoryHealthBeauty, CategoryOther,
}

// ParseCategory convierte el texto de una categoría; desconocidas caen en Otros.
func ParseCategory(s string) ProductCategory {
	for _, c := range AllCategories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// Product representa un producto del catálogo. Es una unión etiquetada sobre Type:
// los campos de variante solo tienen significado para su tipo correspondiente.
// El catálogo (repositorio) es dueño de la estructura; las transacciones solo
// la referencian.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    ProductCategory
	Supplier    string
	Barcode     string
	Tags        []string

	BasePrice decimal.Decimal // precio de lista (perecederos)
	CostPrice decimal.Decimal // costo de compra al proveedor

	CurrentStock  int // invariante: 0 <= CurrentStock <= MaxStockLevel
	MinStockLevel int
	MaxStockLevel int

	Active bool // inactivo = excluido de venta y de la mayoría de reportes

	Type ProductType

	// Variante STANDARD
	Markup decimal.Decimal // fracción de margen sobre el costo (0.3 = 30%)

	// Variante PERISHABLE
	ExpirationDate     time.Time
	ShelfLifeDays      int
	NearExpiryDiscount decimal.Decimal // fracción de descuento cerca del vencimiento

	// Variante BULK
	Unit            string          // kg, lb, lt, ...
	PricePerUnit    decimal.Decimal
	MinimumQuantity decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeSellingPrice calcula el precio de venta vigente. Función pura de los
// campos del producto y de la fecha de referencia (los perecederos dependen
// del calendario; ref se inyecta para mantener el cálculo determinista).
func (p *Product) ComputeSellingPrice(ref time.Time) decimal.Decimal {
	switch p.Type {
	case ProductTypePerishable:
		price := p.BasePrice
		if p.IsNearExpiration(ref) {
			price = price.Mul(decimal.NewFromInt(1).Sub(p.NearExpiryDiscount))
		}
		return price
	case ProductTypeBulk:
		return p.PricePerUnit
	default:
		return p.CostPrice.Mul(decimal.NewFromInt(1).Add(p.Markup))
	}
}

// ComputePriceForQuantity precio total para una cantidad de producto a granel.
// Cantidades por debajo del mínimo se cobran como el mínimo (se ajusta, no se
// rechaza: el rechazo es responsabilidad de la validación del carrito).
func (p *Product) ComputePriceForQuantity(qty decimal.Decimal) decimal.Decimal {
	if qty.LessThan(p.MinimumQuantity) {
		qty = p.MinimumQuantity
	}
	return p.PricePerUnit.Mul(qty)
}

// DaysUntilExpiration días de calendario hasta el vencimiento (negativo si ya venció).
func (p *Product) DaysUntilExpiration(ref time.Time) int {
	exp := p.ExpirationDate.Truncate(24 * time.Hour)
	today := ref.Truncate(24 * time.Hour)
	return int(exp.Sub(today).Hours() / 24)
}

// IsNearExpiration indica si el producto está dentro del 20% final de su vida útil.
func (p *Product) IsNearExpiration(ref time.Time) bool {
	if p.Type != ProductTypePerishable {
		return false
	}
	daysLeft := p.DaysUntilExpiration(ref)
	return float64(daysLeft) <= float64(p.ShelfLifeDays)*0.2
}

// IsExpired indica si la fecha de vencimiento ya pasó.
func (p *Product) IsExpired(ref time.Time) bool {
	return p.Type == ProductTypePerishable && p.DaysUntilExpiration(ref) < 0
}

// ReduceStock descuenta unidades de forma atómica: o valida y descuenta, o no
// toca nada. Falla con cantidades no positivas o mayores al stock disponible.
func (p *Product) ReduceStock(qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	if qty > p.CurrentStock {
		return domain.ErrInsufficientStock
	}
	p.CurrentStock -= qty
	return nil
}

// AddStock suma unidades al stock. MaxStockLevel actúa como techo duro; las
// cantidades no positivas se ignoran.
func (p *Product) AddStock(qty int) {
	if qty <= 0 {
		return
	}
	p.CurrentStock += qty
	if p.CurrentStock > p.MaxStockLevel {
		p.CurrentStock = p.MaxStockLevel
	}
}

// IsLowStock stock actual en o por debajo del mínimo configurado.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStockLevel
}

// IsOverstocked stock actual en o por encima del 90% del máximo. Predicado
// independiente de IsLowStock: con datos mal configurados ambos pueden ser true.
func (p *Product) IsOverstocked() bool {
	return float64(p.CurrentStock) >= float64(p.MaxStockLevel)*0.9
}

// RestockRecommendation unidades sugeridas para volver al máximo cuando el
// stock está bajo; 0 en caso contrario.
func (p *Product) RestockRecommendation() int {
	if p.IsLowStock() {
		return p.MaxStockLevel - p.CurrentStock
	}
	return 0
}

// ProfitMargin margen de ganancia porcentual sobre el costo.
func (p *Product) ProfitMargin(ref time.Time) decimal.Decimal {
	if p.CostPrice.IsZero() {
		return decimal.Zero
	}
	return p.ComputeSellingPrice(ref).Sub(p.CostPrice).
		Div(p.CostPrice).
		Mul(decimal.NewFromInt(100))
}

// InventoryValue valor del stock actual a precio de venta.
func (p *Product) InventoryValue(ref time.Time) decimal.Decimal {
	return p.ComputeSellingPrice(ref).Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}

// InventoryCost valor del stock actual a precio de costo.
func (p *Product) InventoryCost() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}

// AddTag agrega una etiqueta de búsqueda si no existe.
func (p *Product) AddTag(tag string) {
	if p.HasTag(tag) {
		return
	}
	p.Tags = append(p.Tags, tag)
}

// RemoveTag elimina una etiqueta.
func (p *Product) RemoveTag(tag string) {
	for i, t := range p.Tags {
		if t == tag {
			p.Tags = append(p.Tags[:i], p.Tags[i+1:]...)
			return
		}
	}
}

// HasTag indica si el producto tiene la etiqueta.
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
