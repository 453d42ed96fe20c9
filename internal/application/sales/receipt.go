package sales

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// RenderReceipt recibo compacto de la transacción. Formateo puro sobre el
// estado actual: no calcula ni muta nada.
func RenderReceipt(tx *entity.Transaction, storeName string) string {
	var b strings.Builder
	sep := strings.Repeat("=", 40)
	thin := strings.Repeat("-", 40)

	fmt.Fprintf(&b, "\n%s\n", sep)
	fmt.Fprintf(&b, "%s\n", center(storeName, 40))
	fmt.Fprintf(&b, "%s\n", center("RECIBO DE VENTA", 40))
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "Transacción: %s\n", tx.ID)
	fmt.Fprintf(&b, "Fecha: %s\n", tx.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Cajero: %s\n", tx.CashierID)
	if tx.Customer != nil {
		fmt.Fprintf(&b, "Cliente: %s (%s)\n", tx.Customer.FullName(), tx.Customer.Tier)
	}
	fmt.Fprintf(&b, "%s\n", thin)

	for i := range tx.Lines {
		b.WriteString(renderLine(&tx.Lines[i]))
	}

	fmt.Fprintf(&b, "%s\n", thin)
	fmt.Fprintf(&b, "Subtotal: $%s\n", tx.Subtotal.StringFixed(2))
	if tx.TotalDiscount.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Descuentos: -$%s\n", tx.TotalDiscount.StringFixed(2))
	}
	if tx.LoyaltyPointsUsed.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Puntos usados: -$%s\n", tx.LoyaltyPointsUsed.StringFixed(2))
	}
	fmt.Fprintf(&b, "Impuesto: $%s\n", tx.Tax.StringFixed(2))
	fmt.Fprintf(&b, "TOTAL: $%s\n", tx.FinalTotal.StringFixed(2))
	fmt.Fprintf(&b, "%s\n", thin)
	fmt.Fprintf(&b, "Método de pago: %s\n", tx.PaymentMethod.Label())
	if change := tx.Change(); change.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Vuelto: $%s\n", change.StringFixed(2))
	}
	fmt.Fprintf(&b, "Estado: %s\n", tx.Status.Label())

	if tx.Customer != nil && tx.LoyaltyPointsEarned.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Puntos ganados: %s\n", tx.LoyaltyPointsEarned.StringFixed(2))
		fmt.Fprintf(&b, "Saldo de puntos: %s\n", tx.Customer.LoyaltyPoints.StringFixed(2))
	}

	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "%s\n", center("¡Gracias por su compra!", 40))
	fmt.Fprintf(&b, "%s\n", sep)
	return b.String()
}

// RenderDetailedReceipt recibo extendido con desglose financiero y datos del
// cliente. También es formateo puro.
func RenderDetailedReceipt(tx *entity.Transaction, storeName string) string {
	var b strings.Builder
	sep := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)

	fmt.Fprintf(&b, "\n%s\n", sep)
	fmt.Fprintf(&b, "%s\n", center(storeName, 50))
	fmt.Fprintf(&b, "%s\n", center("RECIBO DETALLADO DE TRANSACCIÓN", 50))
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "Transacción: %s\n", tx.ID)
	fmt.Fprintf(&b, "Fecha y hora: %s\n", tx.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Cajero: %s\n", tx.CashierID)
	fmt.Fprintf(&b, "Estado: %s\n", tx.Status.Label())

	if tx.Customer != nil {
		c := tx.Customer
		fmt.Fprintf(&b, "\nDatos del cliente:\n")
		fmt.Fprintf(&b, "  Nombre: %s\n", c.FullName())
		fmt.Fprintf(&b, "  Nivel: %s\n", c.Tier)
		fmt.Fprintf(&b, "  ID: %s\n", c.ID)
		fmt.Fprintf(&b, "  Descuento: %s%%\n", c.DiscountRate().Mul(decimal.NewFromInt(100)).StringFixed(0))
	}

	fmt.Fprintf(&b, "\n%s\nARTÍCULOS:\n%s\n", thin, thin)
	for i := range tx.Lines {
		line := &tx.Lines[i]
		fmt.Fprintf(&b, "%d. %s", i+1, renderLine(line))
		if line.Notes != "" {
			fmt.Fprintf(&b, "    Nota: %s\n", line.Notes)
		}
	}

	fmt.Fprintf(&b, "%s\nDESGLOSE FINANCIERO:\n%s\n", thin, thin)
	itemsTotal := decimal.Zero
	for i := range tx.Lines {
		itemsTotal = itemsTotal.Add(tx.Lines[i].Subtotal)
	}
	fmt.Fprintf(&b, "Suma de líneas: $%s\n", itemsTotal.StringFixed(2))
	if tx.TotalDiscount.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Descuentos totales: -$%s\n", tx.TotalDiscount.StringFixed(2))
	}
	if tx.LoyaltyPointsUsed.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Puntos usados: -$%s\n", tx.LoyaltyPointsUsed.StringFixed(2))
	}
	fmt.Fprintf(&b, "Subtotal: $%s\n", tx.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Impuesto (%s%%): $%s\n",
		tx.TaxRate.Mul(decimal.NewFromInt(100)).StringFixed(0), tx.Tax.StringFixed(2))
	fmt.Fprintf(&b, "TOTAL FINAL: $%s\n", tx.FinalTotal.StringFixed(2))

	fmt.Fprintf(&b, "\n%s\nPAGO:\n%s\n", thin, thin)
	fmt.Fprintf(&b, "Método: %s\n", tx.PaymentMethod.Label())
	fmt.Fprintf(&b, "Monto entregado: $%s\n", tx.AmountPaid.StringFixed(2))
	if change := tx.Change(); change.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Vuelto: $%s\n", change.StringFixed(2))
	}

	if tx.Customer != nil && tx.LoyaltyPointsEarned.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "\nPROGRAMA DE FIDELIDAD:\n")
		fmt.Fprintf(&b, "Puntos ganados: %s\n", tx.LoyaltyPointsEarned.StringFixed(2))
		fmt.Fprintf(&b, "Saldo actual: %s\n", tx.Customer.LoyaltyPoints.StringFixed(2))
	}

	if tx.Notes != "" {
		fmt.Fprintf(&b, "\nNotas: %s\n", tx.Notes)
	}

	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "%s\n", center("¡Gracias por su compra, vuelva pronto!", 50))
	fmt.Fprintf(&b, "%s\n", sep)
	return b.String()
}

func renderLine(line *entity.TransactionLine) string {
	var b strings.Builder
	b.WriteString(line.Product.Name)
	if !line.Quantity.Equal(decimal.NewFromInt(1)) {
		fmt.Fprintf(&b, " x%s", line.Quantity.String())
		if line.Product.Type == entity.ProductTypeBulk && line.Product.Unit != "" {
			fmt.Fprintf(&b, " %s", line.Product.Unit)
		}
	}
	fmt.Fprintf(&b, " @ $%s", line.UnitPrice.StringFixed(2))
	if line.Discount.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, " (%s%% desc.)", line.Discount.Mul(decimal.NewFromInt(100)).StringFixed(0))
	}
	fmt.Fprintf(&b, " = $%s\n", line.Subtotal.StringFixed(2))
	return b.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
