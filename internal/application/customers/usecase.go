package customers

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/application/dto"
	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
	"github.com/tu-usuario/pos-tienda/internal/domain/repository"
	"github.com/tu-usuario/pos-tienda/pkg/logger"
)

// Clock fuente de tiempo inyectable.
type Clock func() time.Time

// UseCase gestión del directorio de clientes: altas, búsquedas, estadísticas
// y la señal de elegibilidad de ascenso (informativa; nunca asciende sola).
type UseCase struct {
	customers repository.CustomerRepository
	now       Clock
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(customers repository.CustomerRepository, now Clock, log *logger.Logger) *UseCase {
	return &UseCase{customers: customers, now: now, log: log}
}

// Register da de alta un cliente. Rechaza emails duplicados; el ID lo asigna
// la secuencia del directorio.
func (uc *UseCase) Register(in dto.RegisterCustomerRequest) (*entity.Customer, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	tier := in.Tier
	if tier == "" {
		tier = entity.TierRegular
	}
	if in.Email != "" {
		existing, err := uc.customers.GetByEmail(in.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	customer := &entity.Customer{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		Tier:           tier,
		TotalSpent:     decimal.Zero,
		LoyaltyPoints:  decimal.Zero,
		MembershipDate: uc.now(),
		Active:         true,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer_id", customer.ID).Str("tier", string(customer.Tier)).Msg("cliente registrado")
	return customer, nil
}

// Get busca un cliente por ID.
func (uc *UseCase) Get(id string) (*entity.Customer, error) {
	return uc.customers.GetByID(id)
}

// FindByEmail busca un cliente por email exacto.
func (uc *UseCase) FindByEmail(email string) (*entity.Customer, error) {
	return uc.customers.GetByEmail(email)
}

// FindByPhone busca un cliente por teléfono exacto.
func (uc *UseCase) FindByPhone(phone string) (*entity.Customer, error) {
	return uc.customers.GetByPhone(phone)
}

// List todos los clientes.
func (uc *UseCase) List() ([]*entity.Customer, error) {
	return uc.customers.List()
}

// SetTier cambia el nivel de un cliente (decisión humana; ver UpgradeCandidates).
func (uc *UseCase) SetTier(id string, tier entity.CustomerTier) error {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	customer.Tier = tier
	return nil
}

// TopCustomers los n clientes con mayor gasto acumulado, descendente.
func (uc *UseCase) TopCustomers(n int) ([]*entity.Customer, error) {
	all, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].TotalSpent.GreaterThan(all[j].TotalSpent)
	})
	if n > len(all) {
		n = len(all)
	}
	return all[:n], nil
}

// UpgradeCandidates clientes elegibles para subir de nivel. Señal informativa:
// el ascenso lo decide un operador vía SetTier.
func (uc *UseCase) UpgradeCandidates() ([]*entity.Customer, error) {
	all, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	var result []*entity.Customer
	for _, c := range all {
		if c.Active && c.EligibleForUpgrade() {
			result = append(result, c)
		}
	}
	return result, nil
}

// Statistics agregados del directorio para el reporte de clientes.
func (uc *UseCase) Statistics() (dto.CustomerStatistics, error) {
	all, err := uc.customers.List()
	if err != nil {
		return dto.CustomerStatistics{}, err
	}

	stats := dto.CustomerStatistics{
		Total:           len(all),
		TotalSpending:   decimal.Zero,
		AverageSpending: decimal.Zero,
		ByTier:          make(map[entity.CustomerTier]int),
	}
	for _, c := range all {
		stats.TotalSpending = stats.TotalSpending.Add(c.TotalSpent)
		stats.ByTier[c.Tier]++
	}
	if stats.Total > 0 {
		stats.AverageSpending = stats.TotalSpending.Div(decimal.NewFromInt(int64(stats.Total)))
	}

	top, err := uc.TopCustomers(3)
	if err != nil {
		return dto.CustomerStatistics{}, err
	}
	stats.Top = top
	return stats, nil
}
