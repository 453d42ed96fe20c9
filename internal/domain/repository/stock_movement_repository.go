package repository

import (
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// StockMovementRepository define el puerto del kardex (DIP).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	List() ([]*entity.StockMovement, error)
}
