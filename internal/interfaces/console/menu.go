// Package console implementa el menú de texto del punto de venta. Es una capa
// delgada: lee opciones, delega en los casos de uso y formatea la salida; no
// contiene reglas de negocio.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/application/customers"
	"github.com/tu-usuario/pos-tienda/internal/application/inventory"
	"github.com/tu-usuario/pos-tienda/internal/application/sales"
	"github.com/tu-usuario/pos-tienda/internal/domain/repository"
	"github.com/tu-usuario/pos-tienda/pkg/config"
	"github.com/tu-usuario/pos-tienda/pkg/logger"
)

// Menu menú principal del punto de venta.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer

	inventoryUC *inventory.UseCase
	customersUC *customers.UseCase
	checkoutUC  *sales.CheckoutUseCase
	refundUC    *sales.RefundUseCase
	txRepo      repository.TransactionRepository
	products    repository.ProductRepository

	cfg *config.Config
	log *logger.Logger
}

// NewMenu construye el menú sobre los casos de uso.
func NewMenu(
	in io.Reader,
	out io.Writer,
	inventoryUC *inventory.UseCase,
	customersUC *customers.UseCase,
	checkoutUC *sales.CheckoutUseCase,
	refundUC *sales.RefundUseCase,
	txRepo repository.TransactionRepository,
	products repository.ProductRepository,
	cfg *config.Config,
	log *logger.Logger,
) *Menu {
	return &Menu{
		in:          bufio.NewScanner(in),
		out:         out,
		inventoryUC: inventoryUC,
		customersUC: customersUC,
		checkoutUC:  checkoutUC,
		refundUC:    refundUC,
		txRepo:      txRepo,
		products:    products,
		cfg:         cfg,
		log:         log,
	}
}

// Run ejecuta el bucle del menú principal hasta que el operador salga.
func (m *Menu) Run() {
	fmt.Fprintf(m.out, "\n  Bienvenido a %s\n", m.cfg.Store.Name)
	for {
		fmt.Fprint(m.out, "\n========================================\n")
		fmt.Fprint(m.out, "        PUNTO DE VENTA - MENÚ\n")
		fmt.Fprint(m.out, "========================================\n")
		fmt.Fprint(m.out, "1. Inventario\n")
		fmt.Fprint(m.out, "2. Clientes\n")
		fmt.Fprint(m.out, "3. Ventas\n")
		fmt.Fprint(m.out, "4. Reportes\n")
		fmt.Fprint(m.out, "0. Salir\n")

		switch m.promptInt("Opción: ") {
		case 1:
			m.inventoryMenu()
		case 2:
			m.customerMenu()
		case 3:
			m.salesMenu()
		case 4:
			m.reportsMenu()
		case 0:
			fmt.Fprintln(m.out, "¡Hasta pronto!")
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
	}
}

// ── Lectura de entrada ────────────────────────────────────────────────────────

func (m *Menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) promptInt(label string) int {
	n, err := strconv.Atoi(m.prompt(label))
	if err != nil {
		return -1
	}
	return n
}

func (m *Menu) promptDecimal(label string) decimal.Decimal {
	d, err := decimal.NewFromString(m.prompt(label))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (m *Menu) fail(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}
