package main

import (
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/application/customers"
	"github.com/tu-usuario/pos-tienda/internal/application/dto"
	"github.com/tu-usuario/pos-tienda/internal/application/inventory"
	"github.com/tu-usuario/pos-tienda/internal/application/sales"
	"github.com/tu-usuario/pos-tienda/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/pos-tienda/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-tienda/internal/interfaces/console"
	"github.com/tu-usuario/pos-tienda/pkg/config"
	"github.com/tu-usuario/pos-tienda/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Name).
		Msg("iniciando punto de venta")

	productRepo := memory.NewProductRepository()
	customerRepo := memory.NewCustomerRepository(memory.NewSequence("C", 1001))
	txRepo := memory.NewTransactionRepository()
	kardexRepo := memory.NewStockMovementRepository()
	txSeq := memory.NewSequence("TXN", 10001)

	inventoryUC := inventory.NewUseCase(productRepo, kardexRepo, time.Now, log)
	customersUC := customers.NewUseCase(customerRepo, time.Now, log)
	checkoutUC := sales.NewCheckoutUseCase(
		productRepo, customerRepo, txRepo, kardexRepo,
		txSeq, infrapdf.NewMarotoReceiptGenerator(),
		cfg.Store.TaxRate, cfg.Store.Name, time.Now, log,
	)
	refundUC := sales.NewRefundUseCase(txRepo, kardexRepo, time.Now, log)

	seed(inventoryUC, customersUC, log)

	menu := console.NewMenu(
		os.Stdin, os.Stdout,
		inventoryUC, customersUC, checkoutUC, refundUC,
		txRepo, productRepo,
		cfg, log,
	)
	menu.Run()
}

// seed carga un catálogo y un directorio de demostración para poder operar la
// tienda desde el primer arranque.
func seed(inventoryUC *inventory.UseCase, customersUC *customers.UseCase, log *logger.Logger) {
	d := decimal.NewFromFloat

	catalog := []dto.CreateProductRequest{
		{
			ID: "P001", Name: "Coca-Cola 600ml", Description: "Gaseosa",
			Category: "Bebidas", Supplier: "Coca-Cola FEMSA",
			Type: "STANDARD", CostPrice: d(1.00), Markup: d(0.50),
			InitialStock: 50, MinStockLevel: 10, MaxStockLevel: 100,
			Tags: []string{"bebida", "gaseosa"},
		},
		{
			ID: "P002", Name: "Papas Margarita", Description: "Snack de papa",
			Category: "Snacks", Supplier: "PepsiCo",
			Type: "STANDARD", CostPrice: d(0.80), Markup: d(0.60),
			InitialStock: 40, MinStockLevel: 8, MaxStockLevel: 80,
			Tags: []string{"snack"},
		},
		{
			ID: "P003", Name: "Leche Entera 1L", Description: "Leche fresca",
			Category: "Lácteos", Supplier: "Alpina",
			Type: "PERISHABLE", CostPrice: d(1.20), BasePrice: d(2.00),
			ExpirationDate: time.Now().Add(10 * 24 * time.Hour),
			ShelfLifeDays:  14, NearExpiryDiscount: d(0.30),
			InitialStock: 30, MinStockLevel: 5, MaxStockLevel: 60,
			Tags: []string{"lácteo", "fresco"},
		},
		{
			ID: "P004", Name: "Pan Integral", Description: "Pan del día",
			Category: "Panadería", Supplier: "Bimbo",
			Type: "PERISHABLE", CostPrice: d(1.50), BasePrice: d(3.00),
			ExpirationDate: time.Now().Add(2 * 24 * time.Hour),
			ShelfLifeDays:  5, NearExpiryDiscount: d(0.40),
			InitialStock: 20, MinStockLevel: 5, MaxStockLevel: 40,
		},
		{
			ID: "P005", Name: "Arroz a Granel", Description: "Arroz blanco por kg",
			Category: "Otros", Supplier: "Molinos del Valle",
			Type: "BULK", CostPrice: d(0.70), PricePerUnit: d(1.20),
			Unit: "kg", MinimumQuantity: d(0.5),
			InitialStock: 100, MinStockLevel: 20, MaxStockLevel: 200,
			Tags: []string{"granel"},
		},
		{
			ID: "P006", Name: "Detergente 500g", Description: "Detergente en polvo",
			Category: "Hogar", Supplier: "Unilever",
			Type: "STANDARD", CostPrice: d(2.50), Markup: d(0.40),
			InitialStock: 25, MinStockLevel: 5, MaxStockLevel: 50,
		},
	}
	for _, in := range catalog {
		if _, err := inventoryUC.AddProduct(in); err != nil {
			log.Warn().Err(err).Str("product_id", in.ID).Msg("seed: producto no cargado")
		}
	}

	directory := []dto.RegisterCustomerRequest{
		{FirstName: "María", LastName: "González", Email: "maria@example.com", Phone: "3001234567", Tier: "REGULAR"},
		{FirstName: "Carlos", LastName: "Rodríguez", Email: "carlos@example.com", Phone: "3007654321", Tier: "PREMIUM"},
		{FirstName: "Ana", LastName: "Martínez", Email: "ana@example.com", Phone: "3009876543", Tier: "VIP"},
		{FirstName: "Luis", LastName: "Pérez", Email: "luis@example.com", Phone: "3005551234", Tier: "EMPLOYEE"},
	}
	for _, in := range directory {
		if _, err := customersUC.Register(in); err != nil {
			log.Warn().Err(err).Str("email", in.Email).Msg("seed: cliente no cargado")
		}
	}

	log.Info().Int("products", len(catalog)).Int("customers", len(directory)).Msg("datos de demostración cargados")
}
