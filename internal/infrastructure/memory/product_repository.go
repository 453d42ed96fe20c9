package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// ProductRepository catálogo de productos en memoria.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
}

// NewProductRepository construye el catálogo vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*entity.Product)}
}

// Create agrega un producto al catálogo. Falla con ID duplicado.
func (r *ProductRepository) Create(product *entity.Product) error {
	if product == nil || product.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.products[product.ID] = product
	return nil
}

// GetByID devuelve el producto o ErrNotFound.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// GetByName busca por nombre exacto sin distinguir mayúsculas.
func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve todos los productos ordenados por ID.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(*entity.Product) bool { return true }), nil
}

// ListActive devuelve los productos activos ordenados por ID.
func (r *ProductRepository) ListActive() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(p *entity.Product) bool { return p.Active }), nil
}

// ListByCategory productos de una categoría.
func (r *ProductRepository) ListByCategory(category entity.ProductCategory) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(p *entity.Product) bool { return p.Category == category }), nil
}

// ListBySupplier productos de un proveedor.
func (r *ProductRepository) ListBySupplier(supplier string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(p *entity.Product) bool { return p.Supplier == supplier }), nil
}

// Suppliers lista de proveedores distintos, ordenada.
func (r *ProductRepository) Suppliers() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var suppliers []string
	for _, p := range r.products {
		if p.Supplier == "" {
			continue
		}
		if _, ok := seen[p.Supplier]; !ok {
			seen[p.Supplier] = struct{}{}
			suppliers = append(suppliers, p.Supplier)
		}
	}
	sort.Strings(suppliers)
	return suppliers, nil
}

// Search busca por nombre, descripción o etiqueta (sin distinguir mayúsculas).
func (r *ProductRepository) Search(term string) ([]*entity.Product, error) {
	needle := strings.ToLower(term)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(p *entity.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return true
		}
		if strings.Contains(strings.ToLower(p.Description), needle) {
			return true
		}
		return p.HasTag(term)
	}), nil
}

// Delete elimina el producto del catálogo.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// sorted requiere el lock tomado por el caller.
func (r *ProductRepository) sorted(keep func(*entity.Product) bool) []*entity.Product {
	result := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if keep(p) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
