package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// TransactionRepository registro histórico de ventas en memoria.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*entity.Transaction
}

// NewTransactionRepository construye el registro vacío.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{transactions: make(map[string]*entity.Transaction)}
}

// Save guarda (o re-guarda) la transacción; es idempotente respecto al ID.
func (r *TransactionRepository) Save(tx *entity.Transaction) error {
	if tx == nil || tx.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[tx.ID] = tx
	return nil
}

// GetByID devuelve la transacción o ErrNotFound.
func (r *TransactionRepository) GetByID(id string) (*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.transactions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

// List devuelve todas las transacciones ordenadas por ID.
func (r *TransactionRepository) List() ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(*entity.Transaction) bool { return true }), nil
}

// ListByCustomer transacciones de un cliente.
func (r *TransactionRepository) ListByCustomer(customerID string) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(t *entity.Transaction) bool {
		return t.Customer != nil && t.Customer.ID == customerID
	}), nil
}

// ListByStatus transacciones en un estado dado.
func (r *TransactionRepository) ListByStatus(status entity.TransactionStatus) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(t *entity.Transaction) bool { return t.Status == status }), nil
}

// sorted requiere el lock tomado por el caller.
func (r *TransactionRepository) sorted(keep func(*entity.Transaction) bool) []*entity.Transaction {
	result := make([]*entity.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		if keep(t) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
