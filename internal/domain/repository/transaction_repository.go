package repository

import "github.com/tu-usuario/pos-tienda/internal/domain/entity"

// TransactionRepository define el puerto del registro histórico de ventas (DIP).
// Las transacciones confirmadas se conservan como registro inmutable, salvo
// por las transiciones de reembolso.
type TransactionRepository interface {
	Save(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
	ListByCustomer(customerID string) ([]*entity.Transaction, error)
	ListByStatus(status entity.TransactionStatus) ([]*entity.Transaction, error)
}
