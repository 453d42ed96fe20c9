package repository

import "github.com/tu-usuario/pos-tienda/internal/domain/entity"

// CustomerRepository define el puerto del directorio de clientes (DIP).
// Create asigna el ID desde la secuencia del directorio (C1001, C1002, ...).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	ListByTier(tier entity.CustomerTier) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
