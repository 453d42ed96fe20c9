package memory

import (
	"sync"

	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// StockMovementRepository kardex en memoria, en orden de inserción.
type StockMovementRepository struct {
	mu        sync.RWMutex
	movements []*entity.StockMovement
}

// NewStockMovementRepository construye el kardex vacío.
func NewStockMovementRepository() *StockMovementRepository {
	return &StockMovementRepository{}
}

// Create agrega una fila al kardex.
func (r *StockMovementRepository) Create(movement *entity.StockMovement) error {
	if movement == nil || movement.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, movement)
	return nil
}

// ListByProduct filas de un producto, en orden cronológico de registro.
func (r *StockMovementRepository) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			result = append(result, m)
		}
	}
	return result, nil
}

// List todas las filas en orden cronológico de registro.
func (r *StockMovementRepository) List() ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entity.StockMovement, len(r.movements))
	copy(result, r.movements)
	return result, nil
}
