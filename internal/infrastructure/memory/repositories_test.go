package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
	"github.com/tu-usuario/pos-tienda/internal/infrastructure/memory"
)

func TestSequence_IDsConsecutivosConPrefijo(t *testing.T) {
	seq := memory.NewSequence("TXN", 10001)

	assert.Equal(t, "TXN10001", seq.Next())
	assert.Equal(t, "TXN10002", seq.Next())
	assert.Equal(t, "TXN10003", seq.Next())
}

func TestProductRepository_CreateYGetDevuelvenElMismoPuntero(t *testing.T) {
	repo := memory.NewProductRepository()
	p := &entity.Product{ID: "P001", Name: "Gaseosa", Active: true}

	require.NoError(t, repo.Create(p))

	got, err := repo.GetByID("P001")
	require.NoError(t, err)
	assert.Same(t, p, got, "el catálogo entrega punteros estables, no copias")

	// la mutación a través del puntero se observa en el repositorio
	got.CurrentStock = 7
	again, _ := repo.GetByID("P001")
	assert.Equal(t, 7, again.CurrentStock)
}

func TestProductRepository_DuplicadoYNoEncontrado(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(&entity.Product{ID: "P001"}))

	err := repo.Create(&entity.Product{ID: "P001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = repo.GetByID("P999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete("P999"), domain.ErrNotFound)
}

func TestProductRepository_ListadosOrdenadosYFiltrados(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(&entity.Product{
		ID: "P002", Name: "Papas", Category: entity.CategorySnacks,
		Supplier: "PepsiCo", Active: true,
	}))
	require.NoError(t, repo.Create(&entity.Product{
		ID: "P001", Name: "Gaseosa", Category: entity.CategoryBeverages,
		Supplier: "FEMSA", Active: true,
	}))
	require.NoError(t, repo.Create(&entity.Product{
		ID: "P003", Name: "Vieja Gaseosa", Category: entity.CategoryBeverages,
		Supplier: "FEMSA", Active: false,
	}))

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "P001", all[0].ID, "listado ordenado por ID")

	active, err := repo.ListActive()
	require.NoError(t, err)
	assert.Len(t, active, 2)

	beverages, err := repo.ListByCategory(entity.CategoryBeverages)
	require.NoError(t, err)
	assert.Len(t, beverages, 2)

	femsa, err := repo.ListBySupplier("FEMSA")
	require.NoError(t, err)
	assert.Len(t, femsa, 2)

	suppliers, err := repo.Suppliers()
	require.NoError(t, err)
	assert.Equal(t, []string{"FEMSA", "PepsiCo"}, suppliers)
}

func TestProductRepository_Search(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(&entity.Product{
		ID: "P001", Name: "Coca-Cola 600ml", Description: "Gaseosa",
		Tags: []string{"bebida"},
	}))
	require.NoError(t, repo.Create(&entity.Product{
		ID: "P002", Name: "Papas Margarita",
	}))

	byName, err := repo.Search("coca")
	require.NoError(t, err)
	assert.Len(t, byName, 1, "búsqueda por nombre sin distinguir mayúsculas")

	byDescription, err := repo.Search("gaseosa")
	require.NoError(t, err)
	assert.Len(t, byDescription, 1)

	byTag, err := repo.Search("bebida")
	require.NoError(t, err)
	assert.Len(t, byTag, 1)

	none, err := repo.Search("chocolate")
	require.NoError(t, err)
	assert.Empty(t, none)

	exact, err := repo.GetByName("coca-cola 600ml")
	require.NoError(t, err)
	assert.Equal(t, "P001", exact.ID, "nombre exacto sin distinguir mayúsculas")

	_, err = repo.GetByName("Coca")
	assert.ErrorIs(t, err, domain.ErrNotFound, "GetByName no es búsqueda parcial")
}

func TestCustomerRepository_AsignaIDsDeLaSecuencia(t *testing.T) {
	repo := memory.NewCustomerRepository(memory.NewSequence("C", 1001))

	first := &entity.Customer{FirstName: "María", LastName: "González", Email: "maria@example.com"}
	second := &entity.Customer{FirstName: "Carlos", LastName: "Rodríguez", Phone: "3001234567"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, "C1001", first.ID)
	assert.Equal(t, "C1002", second.ID)

	byEmail, err := repo.GetByEmail("maria@example.com")
	require.NoError(t, err)
	assert.Same(t, first, byEmail)

	byPhone, err := repo.GetByPhone("3001234567")
	require.NoError(t, err)
	assert.Same(t, second, byPhone)

	_, err = repo.GetByEmail("")
	assert.ErrorIs(t, err, domain.ErrNotFound, "email vacío nunca empata")
}

func TestCustomerRepository_ListByTier(t *testing.T) {
	repo := memory.NewCustomerRepository(memory.NewSequence("C", 1001))
	require.NoError(t, repo.Create(&entity.Customer{FirstName: "A", Tier: entity.TierVIP}))
	require.NoError(t, repo.Create(&entity.Customer{FirstName: "B", Tier: entity.TierRegular}))
	require.NoError(t, repo.Create(&entity.Customer{FirstName: "C", Tier: entity.TierVIP}))

	vips, err := repo.ListByTier(entity.TierVIP)
	require.NoError(t, err)
	assert.Len(t, vips, 2)
}

func TestCustomerRepository_Update(t *testing.T) {
	repo := memory.NewCustomerRepository(memory.NewSequence("C", 1001))
	c := &entity.Customer{FirstName: "Ana", Tier: entity.TierRegular}
	require.NoError(t, repo.Create(c))

	c.Tier = entity.TierVIP
	require.NoError(t, repo.Update(c))

	got, err := repo.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TierVIP, got.Tier)

	err = repo.Update(&entity.Customer{ID: "C9999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionRepository_SaveIdempotentePorID(t *testing.T) {
	repo := memory.NewTransactionRepository()
	tx := &entity.Transaction{ID: "TXN10001", Status: entity.StatusPending}

	require.NoError(t, repo.Save(tx))
	tx.Status = entity.StatusCompleted
	require.NoError(t, repo.Save(tx), "re-guardar la misma transacción no falla")

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.StatusCompleted, all[0].Status)
}

func TestTransactionRepository_FiltrosPorClienteYEstado(t *testing.T) {
	repo := memory.NewTransactionRepository()
	c := &entity.Customer{ID: "C1001"}
	require.NoError(t, repo.Save(&entity.Transaction{ID: "TXN1", Customer: c, Status: entity.StatusCompleted}))
	require.NoError(t, repo.Save(&entity.Transaction{ID: "TXN2", Status: entity.StatusCancelled}))
	require.NoError(t, repo.Save(&entity.Transaction{ID: "TXN3", Customer: c, Status: entity.StatusCancelled}))

	byCustomer, err := repo.ListByCustomer("C1001")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	cancelled, err := repo.ListByStatus(entity.StatusCancelled)
	require.NoError(t, err)
	assert.Len(t, cancelled, 2)
}

func TestStockMovementRepository_OrdenDeInsercion(t *testing.T) {
	repo := memory.NewStockMovementRepository()
	require.NoError(t, repo.Create(&entity.StockMovement{
		ID: "m1", ProductID: "P001", Type: entity.MovementTypeIn,
		Quantity: decimal.NewFromInt(10),
	}))
	require.NoError(t, repo.Create(&entity.StockMovement{
		ID: "m2", ProductID: "P002", Type: entity.MovementTypeOut,
		Quantity: decimal.NewFromInt(-3),
	}))
	require.NoError(t, repo.Create(&entity.StockMovement{
		ID: "m3", ProductID: "P001", Type: entity.MovementTypeOut,
		Quantity: decimal.NewFromInt(-2),
	}))

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "m1", all[0].ID, "el kardex conserva el orden cronológico")

	byProduct, err := repo.ListByProduct("P001")
	require.NoError(t, err)
	require.Len(t, byProduct, 2)
	assert.Equal(t, "m3", byProduct[1].ID)

	err = repo.Create(&entity.StockMovement{ProductID: "P001"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "toda fila necesita ID")
}
