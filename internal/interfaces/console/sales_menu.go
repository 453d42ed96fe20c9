package console

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/application/sales"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

func (m *Menu) salesMenu() {
	for {
		fmt.Fprint(m.out, "\n--- VENTAS ---\n")
		fmt.Fprint(m.out, "1. Nueva venta\n")
		fmt.Fprint(m.out, "2. Buscar transacción\n")
		fmt.Fprint(m.out, "3. Reembolso\n")
		fmt.Fprint(m.out, "4. Ver transacciones\n")
		fmt.Fprint(m.out, "0. Volver\n")

		switch m.promptInt("Opción: ") {
		case 1:
			m.newSale()
		case 2:
			m.lookupTransaction()
		case 3:
			m.refund()
		case 4:
			m.listTransactions()
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
	}
}

// newSale flujo interactivo de una venta completa. Si el operador aborta en
// cualquier punto, la transacción queda cancelada en el histórico.
func (m *Menu) newSale() {
	customerID := m.prompt("ID del cliente (vacío = sin cliente): ")
	tx, err := m.checkoutUC.Start(customerID, m.cfg.Store.Cashier)
	if err != nil {
		m.fail(err)
		return
	}
	if tx.Customer != nil {
		fmt.Fprintf(m.out, "Cliente: %s (%s, %s puntos)\n",
			tx.Customer.FullName(), tx.Customer.Tier, tx.Customer.LoyaltyPoints.StringFixed(2))
	}

	// carrito
	for {
		productID := m.prompt("\nID de producto (vacío = terminar): ")
		if productID == "" {
			break
		}
		qty := m.promptDecimal("Cantidad: ")
		discount := decimal.Zero
		if strings.EqualFold(m.prompt("¿Descuento de línea? (s/N): "), "s") {
			discount = m.promptDecimal("Descuento (0.1 = 10%): ")
		}
		if err := m.checkoutUC.AddLine(tx, productID, qty, discount, ""); err != nil {
			m.fail(err)
			continue
		}
		fmt.Fprintf(m.out, "Agregado. Líneas en el carrito: %d\n", len(tx.Lines))
	}
	if len(tx.Lines) == 0 {
		fmt.Fprintln(m.out, "Venta sin artículos, abandonada.")
		return
	}

	// puntos de fidelidad
	if tx.Customer != nil && tx.Customer.LoyaltyPoints.GreaterThan(decimal.Zero) {
		fmt.Fprintf(m.out, "El cliente tiene %s puntos.\n", tx.Customer.LoyaltyPoints.StringFixed(2))
		if strings.EqualFold(m.prompt("¿Usar puntos? (s/N): "), "s") {
			points := m.promptDecimal("Puntos a usar: ")
			if err := m.checkoutUC.ApplyLoyaltyPoints(tx, points); err != nil {
				m.fail(err)
			}
		}
	}

	m.checkoutUC.ComputeTotals(tx)
	fmt.Fprintf(m.out, "\nSubtotal: $%s\n", tx.Subtotal.StringFixed(2))
	if tx.TotalDiscount.GreaterThan(decimal.Zero) {
		fmt.Fprintf(m.out, "Descuentos: -$%s\n", tx.TotalDiscount.StringFixed(2))
	}
	fmt.Fprintf(m.out, "Impuesto: $%s\n", tx.Tax.StringFixed(2))
	fmt.Fprintf(m.out, "TOTAL: $%s\n", tx.FinalTotal.StringFixed(2))

	// pago
	fmt.Fprintln(m.out, "\nMétodo de pago:")
	for i, pm := range entity.AllPaymentMethods {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, pm.Label())
	}
	methodIdx := m.promptInt("Método: ") - 1
	if methodIdx < 0 || methodIdx >= len(entity.AllPaymentMethods) {
		m.abortSale(tx)
		return
	}
	method := entity.AllPaymentMethods[methodIdx]

	paid := tx.FinalTotal
	if method == entity.PaymentCash {
		paid = m.promptDecimal("Monto entregado: $")
	}
	if err := m.checkoutUC.Pay(tx, method, paid); err != nil {
		m.fail(err)
		m.abortSale(tx)
		return
	}

	if err := m.checkoutUC.Finalize(tx); err != nil {
		m.fail(err)
		m.abortSale(tx)
		return
	}

	fmt.Fprint(m.out, sales.RenderReceipt(tx, m.cfg.Store.Name))

	if strings.EqualFold(m.prompt("¿Exportar recibo a PDF? (s/N): "), "s") {
		path, err := m.checkoutUC.ExportReceiptPDF(tx, m.cfg.Store.ReceiptsDir)
		if err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "Recibo guardado en %s\n", path)
	}
}

func (m *Menu) abortSale(tx *entity.Transaction) {
	if err := m.checkoutUC.Cancel(tx); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintln(m.out, "Venta cancelada.")
}

func (m *Menu) lookupTransaction() {
	id := m.prompt("ID de la transacción: ")
	tx, err := m.txRepo.GetByID(id)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprint(m.out, sales.RenderDetailedReceipt(tx, m.cfg.Store.Name))
}

func (m *Menu) refund() {
	id := m.prompt("ID de la transacción: ")
	amount := decimal.Zero
	if strings.EqualFold(m.prompt("¿Reembolso parcial? (s/N): "), "s") {
		amount = m.promptDecimal("Monto a reembolsar: $")
	}
	if err := m.refundUC.Refund(id, amount); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintln(m.out, "Reembolso procesado.")
}

func (m *Menu) listTransactions() {
	transactions, err := m.txRepo.List()
	if err != nil {
		m.fail(err)
		return
	}
	if len(transactions) == 0 {
		fmt.Fprintln(m.out, "Sin transacciones.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFecha\tCliente\tLíneas\tTotal\tEstado")
	for _, tx := range transactions {
		customer := "-"
		if tx.Customer != nil {
			customer = tx.Customer.FullName()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t$%s\t%s\n",
			tx.ID, tx.CreatedAt.Format("2006-01-02 15:04"), customer,
			len(tx.Lines), tx.FinalTotal.StringFixed(2), tx.Status.Label())
	}
	w.Flush()
}
