package console_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-tienda/internal/application/customers"
	"github.com/tu-usuario/pos-tienda/internal/application/dto"
	"github.com/tu-usuario/pos-tienda/internal/application/inventory"
	"github.com/tu-usuario/pos-tienda/internal/application/sales"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
	"github.com/tu-usuario/pos-tienda/internal/infrastructure/memory"
	"github.com/tu-usuario/pos-tienda/internal/interfaces/console"
	"github.com/tu-usuario/pos-tienda/pkg/config"
	"github.com/tu-usuario/pos-tienda/pkg/logger"
)

type nopPDF struct{}

func (nopPDF) GenerateReceiptPDF(*entity.Transaction, string) ([]byte, error) {
	return []byte("%PDF"), nil
}

// runMenu ejecuta el menú con el guion de entrada dado y devuelve la salida.
func runMenu(t *testing.T, script string) string {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Name = "Tienda de Prueba"
	cfg.Store.Cashier = "CAJA-01"
	cfg.Store.TaxRate = decimal.NewFromFloat(0.08)
	log := logger.Nop()
	now := func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	products := memory.NewProductRepository()
	customerRepo := memory.NewCustomerRepository(memory.NewSequence("C", 1001))
	txRepo := memory.NewTransactionRepository()
	kardex := memory.NewStockMovementRepository()

	inventoryUC := inventory.NewUseCase(products, kardex, now, log)
	customersUC := customers.NewUseCase(customerRepo, now, log)
	checkoutUC := sales.NewCheckoutUseCase(
		products, customerRepo, txRepo, kardex,
		memory.NewSequence("TXN", 10001), nopPDF{},
		cfg.Store.TaxRate, cfg.Store.Name, now, log,
	)
	refundUC := sales.NewRefundUseCase(txRepo, kardex, now, log)

	_, err := inventoryUC.AddProduct(dto.CreateProductRequest{
		ID: "P001", Name: "Gaseosa 600ml", Category: entity.CategoryBeverages,
		Supplier: "FEMSA", Type: entity.ProductTypeStandard,
		CostPrice: decimal.NewFromInt(8), Markup: decimal.NewFromFloat(0.25),
		InitialStock: 50, MinStockLevel: 10, MaxStockLevel: 100,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	menu := console.NewMenu(
		strings.NewReader(script), &out,
		inventoryUC, customersUC, checkoutUC, refundUC,
		txRepo, products, cfg, log,
	)
	menu.Run()
	return out.String()
}

func TestMenu_SalirInmediato(t *testing.T) {
	out := runMenu(t, "0\n")

	assert.Contains(t, out, "Bienvenido a Tienda de Prueba")
	assert.Contains(t, out, "PUNTO DE VENTA")
	assert.Contains(t, out, "¡Hasta pronto!")
}

func TestMenu_OpcionInvalida(t *testing.T) {
	out := runMenu(t, "9\n0\n")

	assert.Contains(t, out, "Opción inválida.")
}

func TestMenu_ListarProductos(t *testing.T) {
	// 1 = inventario, 1 = ver productos, 0 = volver, 0 = salir
	out := runMenu(t, "1\n1\n0\n0\n")

	assert.Contains(t, out, "Gaseosa 600ml")
	assert.Contains(t, out, "P001")
}

func TestMenu_VentaCompletaEnEfectivo(t *testing.T) {
	// 3 = ventas, 1 = nueva venta, sin cliente, P001 x2 sin descuento,
	// terminar carrito, pago 1 = efectivo con 25, sin PDF, volver, salir
	script := strings.Join([]string{
		"3", "1",
		"",            // sin cliente
		"P001", "2", "n", // línea
		"",        // terminar carrito
		"1", "25", // efectivo
		"n", // sin PDF
		"0", "0",
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "TOTAL: $21.60")
	assert.Contains(t, out, "RECIBO DE VENTA")
	assert.Contains(t, out, "Vuelto: $3.40")
}
