package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// CustomerRepository directorio de clientes en memoria. Asigna los IDs desde
// su propia secuencia (C1001, C1002, ...).
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*entity.Customer
	seq       *Sequence
}

// NewCustomerRepository construye el directorio vacío.
func NewCustomerRepository(seq *Sequence) *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*entity.Customer),
		seq:       seq,
	}
}

// Create registra un cliente y le asigna su ID de la secuencia del directorio.
func (r *CustomerRepository) Create(customer *entity.Customer) error {
	if customer == nil {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	customer.ID = r.seq.Next()
	r.customers[customer.ID] = customer
	return nil
}

// GetByID devuelve el cliente o ErrNotFound.
func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// GetByEmail busca por email exacto.
func (r *CustomerRepository) GetByEmail(email string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Email != "" && c.Email == email {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByPhone busca por teléfono exacto.
func (r *CustomerRepository) GetByPhone(phone string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Phone != "" && c.Phone == phone {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve todos los clientes ordenados por ID.
func (r *CustomerRepository) List() ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(*entity.Customer) bool { return true }), nil
}

// ListByTier clientes de un nivel.
func (r *CustomerRepository) ListByTier(tier entity.CustomerTier) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(c *entity.Customer) bool { return c.Tier == tier }), nil
}

// Update reemplaza la entrada del cliente. Con el arena en memoria los
// mutadores ya operan sobre el puntero del directorio; existe para que el
// puerto soporte implementaciones con almacenamiento real.
func (r *CustomerRepository) Update(customer *entity.Customer) error {
	if customer == nil || customer.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.customers[customer.ID] = customer
	return nil
}

// Delete elimina el cliente del directorio.
func (r *CustomerRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

// sorted requiere el lock tomado por el caller.
func (r *CustomerRepository) sorted(keep func(*entity.Customer) bool) []*entity.Customer {
	result := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if keep(c) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
