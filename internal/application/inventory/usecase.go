package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/application/dto"
	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
	domaininv "github.com/tu-usuario/pos-tienda/internal/domain/inventory"
	"github.com/tu-usuario/pos-tienda/internal/domain/repository"
	"github.com/tu-usuario/pos-tienda/pkg/logger"
)

// Clock fuente de tiempo inyectable.
type Clock func() time.Time

// UseCase gestión del catálogo e inventario: altas, reabastecimiento (con
// asiento en kardex), actualizaciones de precio, alertas de stock y reportes
// de valoración.
type UseCase struct {
	products repository.ProductRepository
	kardex   repository.StockMovementRepository
	now      Clock
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	kardex repository.StockMovementRepository,
	now Clock,
	log *logger.Logger,
) *UseCase {
	return &UseCase{products: products, kardex: kardex, now: now, log: log}
}

// AddProduct da de alta un producto nuevo a partir de la solicitud.
func (uc *UseCase) AddProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.ID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 || in.MaxStockLevel <= 0 || in.InitialStock > in.MaxStockLevel {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.ProductTypeStandard, entity.ProductTypePerishable, entity.ProductTypeBulk:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	product := &entity.Product{
		ID:                 in.ID,
		Name:               in.Name,
		Description:        in.Description,
		Category:           in.Category,
		Supplier:           in.Supplier,
		Barcode:            "BAR" + in.ID,
		Tags:               in.Tags,
		BasePrice:          in.BasePrice,
		CostPrice:          in.CostPrice,
		CurrentStock:       in.InitialStock,
		MinStockLevel:      in.MinStockLevel,
		MaxStockLevel:      in.MaxStockLevel,
		Active:             true,
		Type:               in.Type,
		Markup:             in.Markup,
		ExpirationDate:     in.ExpirationDate,
		ShelfLifeDays:      in.ShelfLifeDays,
		NearExpiryDiscount: in.NearExpiryDiscount,
		Unit:               in.Unit,
		PricePerUnit:       in.PricePerUnit,
		MinimumQuantity:    in.MinimumQuantity,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("type", string(product.Type)).Msg("producto creado")
	return product, nil
}

// Restock suma unidades al stock (con techo en MaxStockLevel) y asienta la
// entrada efectiva en el kardex. Devuelve las unidades realmente agregadas,
// que pueden ser menos que las pedidas por el techo.
//
// unitCost es el costo de compra de esta entrada; si es positivo y distinto
// del costo vigente, el costo del producto pasa al promedio ponderado. Con
// unitCost cero se asume el costo vigente.
func (uc *UseCase) Restock(productID string, qty int, unitCost decimal.Decimal, operator string) (int, error) {
	if qty <= 0 || unitCost.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return 0, fmt.Errorf("buscar producto: %w", err)
	}

	before := product.CurrentStock
	product.AddStock(qty)
	added := product.CurrentStock - before
	if added == 0 {
		return 0, nil
	}

	units := decimal.NewFromInt(int64(added))
	if unitCost.IsZero() {
		unitCost = product.CostPrice
	}
	product.CostPrice = domaininv.WeightedAverageCost(
		decimal.NewFromInt(int64(before)), product.CostPrice, units, unitCost)
	product.UpdatedAt = uc.now()

	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: "RESTOCK-" + uuid.New().String(),
		ProductID:     product.ID,
		Type:          entity.MovementTypeIn,
		Quantity:      units,
		UnitCost:      unitCost,
		TotalCost:     units.Mul(unitCost),
		Date:          uc.now(),
		CreatedBy:     operator,
	}
	if err := uc.kardex.Create(mov); err != nil {
		return added, fmt.Errorf("asentar kardex: %w", err)
	}

	uc.log.Info().Str("product_id", product.ID).Int("added", added).Msg("reabastecimiento")
	return added, nil
}

// SetActive activa o desactiva un producto del catálogo.
func (uc *UseCase) SetActive(productID string, active bool) error {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	product.Active = active
	product.UpdatedAt = uc.now()
	return nil
}

// UpdateAllPrices escala el precio de venta de todos los productos activos en
// un porcentaje (0.10 = +10%). Devuelve cuántos productos se ajustaron.
func (uc *UseCase) UpdateAllPrices(pct decimal.Decimal) (int, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return 0, err
	}
	for _, p := range products {
		uc.scalePrice(p, pct)
	}
	uc.log.Info().Str("pct", pct.String()).Int("products", len(products)).Msg("precios actualizados")
	return len(products), nil
}

// UpdateCategoryPrices escala el precio de venta de una categoría.
func (uc *UseCase) UpdateCategoryPrices(category entity.ProductCategory, pct decimal.Decimal) (int, error) {
	products, err := uc.products.ListByCategory(category)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range products {
		if !p.Active {
			continue
		}
		uc.scalePrice(p, pct)
		count++
	}
	return count, nil
}

// scalePrice ajusta el parámetro de la variante que gobierna el precio de
// venta, de modo que ComputeSellingPrice escale exactamente en pct.
func (uc *UseCase) scalePrice(p *entity.Product, pct decimal.Decimal) {
	one := decimal.NewFromInt(1)
	factor := one.Add(pct)
	switch p.Type {
	case entity.ProductTypePerishable:
		p.BasePrice = p.BasePrice.Mul(factor)
	case entity.ProductTypeBulk:
		p.PricePerUnit = p.PricePerUnit.Mul(factor)
	default:
		// precio = costo*(1+markup); escalar (1+markup) escala el precio
		p.Markup = one.Add(p.Markup).Mul(factor).Sub(one)
	}
	p.UpdatedAt = uc.now()
}

// DeactivateExpired desactiva los perecederos ya vencidos. Devuelve cuántos.
func (uc *UseCase) DeactivateExpired() (int, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return 0, err
	}
	now := uc.now()
	count := 0
	for _, p := range products {
		if p.IsExpired(now) {
			p.Active = false
			p.UpdatedAt = now
			count++
			uc.log.Warn().Str("product_id", p.ID).Msg("producto vencido desactivado")
		}
	}
	return count, nil
}

// LowStock productos activos en o por debajo de su stock mínimo.
func (uc *UseCase) LowStock() ([]*entity.Product, error) {
	return uc.filterActive(func(p *entity.Product) bool { return p.IsLowStock() })
}

// Overstocked productos activos en o por encima del 90% de su máximo.
func (uc *UseCase) Overstocked() ([]*entity.Product, error) {
	return uc.filterActive(func(p *entity.Product) bool { return p.IsOverstocked() })
}

// OutOfStock productos activos sin stock.
func (uc *UseCase) OutOfStock() ([]*entity.Product, error) {
	return uc.filterActive(func(p *entity.Product) bool { return p.CurrentStock == 0 })
}

func (uc *UseCase) filterActive(keep func(*entity.Product) bool) ([]*entity.Product, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}
	var result []*entity.Product
	for _, p := range products {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// Valuation totales financieros del inventario activo.
func (uc *UseCase) Valuation() (dto.InventoryValuation, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return dto.InventoryValuation{}, err
	}
	now := uc.now()
	var v dto.InventoryValuation
	v.TotalValue = decimal.Zero
	v.TotalCost = decimal.Zero
	for _, p := range products {
		v.TotalValue = v.TotalValue.Add(p.InventoryValue(now))
		v.TotalCost = v.TotalCost.Add(p.InventoryCost())
	}
	v.PotentialProfit = v.TotalValue.Sub(v.TotalCost)
	return v, nil
}

// CategoryReport agregados por categoría (solo productos activos), en el orden
// cerrado de categorías.
func (uc *UseCase) CategoryReport() ([]dto.CategorySummary, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	byCat := make(map[entity.ProductCategory]*dto.CategorySummary)
	for _, p := range products {
		s, ok := byCat[p.Category]
		if !ok {
			s = &dto.CategorySummary{Category: p.Category, Value: decimal.Zero, Cost: decimal.Zero}
			byCat[p.Category] = s
		}
		s.Products++
		s.Units += p.CurrentStock
		s.Value = s.Value.Add(p.InventoryValue(now))
		s.Cost = s.Cost.Add(p.InventoryCost())
	}
	var result []dto.CategorySummary
	for _, c := range entity.AllCategories {
		if s, ok := byCat[c]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

// SupplierReport agregados por proveedor (solo productos activos).
func (uc *UseCase) SupplierReport() ([]dto.SupplierSummary, error) {
	suppliers, err := uc.products.Suppliers()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	var result []dto.SupplierSummary
	for _, supplier := range suppliers {
		products, err := uc.products.ListBySupplier(supplier)
		if err != nil {
			return nil, err
		}
		s := dto.SupplierSummary{Supplier: supplier, Value: decimal.Zero}
		for _, p := range products {
			if !p.Active {
				continue
			}
			s.Products++
			s.Value = s.Value.Add(p.InventoryValue(now))
		}
		if s.Products > 0 {
			result = append(result, s)
		}
	}
	return result, nil
}

// ProfitabilityReport margen por producto activo, de mayor a menor.
func (uc *UseCase) ProfitabilityReport() ([]dto.ProductProfit, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	result := make([]dto.ProductProfit, 0, len(products))
	for _, p := range products {
		result = append(result, dto.ProductProfit{
			ID:         p.ID,
			Name:       p.Name,
			UnitPrice:  p.ComputeSellingPrice(now),
			UnitCost:   p.CostPrice,
			MarginPct:  p.ProfitMargin(now),
			StockValue: p.InventoryValue(now),
		})
	}
	// mayor margen primero
	sort.Slice(result, func(i, j int) bool {
		return result[i].MarginPct.GreaterThan(result[j].MarginPct)
	})
	return result, nil
}

// Movements kardex de un producto.
func (uc *UseCase) Movements(productID string) ([]*entity.StockMovement, error) {
	return uc.kardex.ListByProduct(productID)
}
