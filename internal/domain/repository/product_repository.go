package repository

import (
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// ProductRepository define el puerto del catálogo de productos (DIP).
// La implementación es dueña de las entidades: los punteros que devuelve son
// préstamos estables sobre el arena del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	ListByCategory(category entity.ProductCategory) ([]*entity.Product, error)
	ListBySupplier(supplier string) ([]*entity.Product, error)
	Suppliers() ([]string, error)
	Search(term string) ([]*entity.Product, error)
	Delete(id string) error
}
