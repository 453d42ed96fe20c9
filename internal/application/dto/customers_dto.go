package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// RegisterCustomerRequest alta de cliente. El ID lo asigna el directorio.
type RegisterCustomerRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Tier      entity.CustomerTier
}

// CustomerStatistics agregados del directorio para el reporte de clientes.
type CustomerStatistics struct {
	Total           int
	TotalSpending   decimal.Decimal
	AverageSpending decimal.Decimal
	ByTier          map[entity.CustomerTier]int
	Top             []*entity.Customer // mayores compradores, descendente
}
