package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain"
)

// PaymentMethod método de pago registrado en la transacción.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "CASH"
	PaymentCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentMobile        PaymentMethod = "MOBILE_PAYMENT"
	PaymentLoyaltyPoints PaymentMethod = "LOYALTY_POINTS"
	PaymentGiftCard      PaymentMethod = "GIFT_CARD"
)

// AllPaymentMethods en el orden de los menús.
var AllPaymentMethods = []PaymentMethod{
	PaymentCash, PaymentCreditCard, PaymentDebitCard,
	PaymentMobile, PaymentLoyaltyPoints, PaymentGiftCard,
}

// Label nombre legible del método de pago para recibos.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Efectivo"
	case PaymentCreditCard:
		return "Tarjeta de Crédito"
	case PaymentDebitCard:
		return "Tarjeta Débito"
	case PaymentMobile:
		return "Pago Móvil"
	case PaymentLoyaltyPoints:
		return "Puntos de Fidelidad"
	case PaymentGiftCard:
		return "Tarjeta de Regalo"
	default:
		return string(m)
	}
}

// TransactionStatus estado de la máquina de estados de la transacción:
//
//	PENDING → COMPLETED → {REFUNDED | PARTIALLY_REFUNDED}
//	PENDING → CANCELLED
//
// CANCELLED, REFUNDED y PARTIALLY_REFUNDED son terminales.
type TransactionStatus string

const (
	StatusPending           TransactionStatus = "PENDING"
	StatusCompleted         TransactionStatus = "COMPLETED"
	StatusCancelled         TransactionStatus = "CANCELLED"
	StatusRefunded          TransactionStatus = "REFUNDED"
	StatusPartiallyRefunded TransactionStatus = "PARTIALLY_REFUNDED"
)

// Label nombre legible del estado para recibos.
func (s TransactionStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusCompleted:
		return "Completada"
	case StatusCancelled:
		return "Cancelada"
	case StatusRefunded:
		return "Reembolsada"
	case StatusPartiallyRefunded:
		return "Reembolso Parcial"
	default:
		return string(s)
	}
}

// TransactionLine una línea de venta. Referencia al producto del catálogo (no
// es dueña de él); UnitPrice queda congelado al momento de crear la línea
// aunque la política de precios del catálogo cambie después.
type TransactionLine struct {
	Product   *Product
	Quantity  decimal.Decimal // fraccional solo tiene sentido para granel
	Discount  decimal.Decimal // fracción de descuento de la línea
	UnitPrice decimal.Decimal // precio unitario capturado al crear la línea
	Subtotal  decimal.Decimal // bruto con descuento de línea aplicado
	Notes     string
}

// GrossSubtotal precio de la línea antes del descuento, sobre el precio congelado.
// Para granel aplica el ajuste a la cantidad mínima del producto.
func (l *TransactionLine) GrossSubtotal() decimal.Decimal {
	qty := l.Quantity
	if l.Product.Type == ProductTypeBulk && qty.LessThan(l.Product.MinimumQuantity) {
		qty = l.Product.MinimumQuantity
	}
	return l.UnitPrice.Mul(qty)
}

// StockUnits unidades físicas que la línea compromete (las fracciones de
// granel redondean hacia arriba).
func (l *TransactionLine) StockUnits() int {
	return int(l.Quantity.Ceil().IntPart())
}

// RestockedLine resultado de un reembolso: unidades devueltas al stock por línea.
type RestockedLine struct {
	Product *Product
	Units   int
}

// Transaction agrega líneas de venta y orquesta el ciclo de cobro: cálculo de
// totales, pago, confirmación (commit de stock y fidelidad) y reembolso.
// Es la única pieza que muta Product y Customer en nombre de una venta, y solo
// lo hace en Finalize/ProcessRefund.
type Transaction struct {
	ID       string
	Customer *Customer // opcional; referencia al directorio, no propiedad
	Lines    []TransactionLine

	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	TotalDiscount decimal.Decimal
	FinalTotal    decimal.Decimal
	TaxRate       decimal.Decimal

	LoyaltyPointsUsed   decimal.Decimal
	LoyaltyPointsEarned decimal.Decimal

	PaymentMethod PaymentMethod
	AmountPaid    decimal.Decimal

	Status    TransactionStatus
	CreatedAt time.Time
	CashierID string
	Notes     string

	// totalsReady se invalida al tocar líneas o puntos; ProcessPayment exige
	// totales frescos, lo que fuerza el orden ApplyLoyaltyPoints → ComputeTotals.
	totalsReady bool
}

// NewTransaction crea una transacción pendiente. customer puede ser nil
// (venta sin cliente registrado).
func NewTransaction(id string, customer *Customer, cashierID string, now time.Time) *Transaction {
	return &Transaction{
		ID:            id,
		Customer:      customer,
		PaymentMethod: PaymentCash,
		Status:        StatusPending,
		CreatedAt:     now,
		CashierID:     cashierID,
	}
}

// AddLine agrega una línea de venta. Valida producto activo, cantidad positiva,
// stock disponible (se verifica pero NO se descuenta: el descuento ocurre en
// Finalize) y, para granel, la cantidad mínima del producto. Nótese la
// asimetría con ComputePriceForQuantity, que ajusta en vez de rechazar: la
// validación del carrito rechaza, el cálculo de precio ajusta.
func (t *Transaction) AddLine(product *Product, qty, discount decimal.Decimal, notes string, ref time.Time) error {
	if t.Status != StatusPending {
		return domain.ErrConflict
	}
	if product == nil || qty.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if !product.Active {
		return domain.ErrInactiveProduct
	}
	if int(qty.Ceil().IntPart()) > product.CurrentStock {
		return domain.ErrInsufficientStock
	}
	if product.Type == ProductTypeBulk && qty.LessThan(product.MinimumQuantity) {
		return domain.ErrBelowMinimumQuantity
	}

	unitPrice := product.ComputeSellingPrice(ref)
	var gross decimal.Decimal
	if product.Type == ProductTypeBulk {
		gross = product.ComputePriceForQuantity(qty)
	} else {
		gross = unitPrice.Mul(qty)
	}
	line := TransactionLine{
		Product:   product,
		Quantity:  qty,
		Discount:  discount,
		UnitPrice: unitPrice,
		Subtotal:  gross.Mul(decimal.NewFromInt(1).Sub(discount)),
		Notes:     notes,
	}
	t.Lines = append(t.Lines, line)
	t.totalsReady = false
	return nil
}

// RemoveLine elimina la línea en la posición dada (solo en PENDING).
func (t *Transaction) RemoveLine(index int) error {
	if t.Status != StatusPending {
		return domain.ErrConflict
	}
	if index < 0 || index >= len(t.Lines) {
		return domain.ErrInvalidInput
	}
	t.Lines = append(t.Lines[:index], t.Lines[index+1:]...)
	t.totalsReady = false
	return nil
}

// ClearLines vacía el carrito (solo en PENDING).
func (t *Transaction) ClearLines() error {
	if t.Status != StatusPending {
		return domain.ErrConflict
	}
	t.Lines = nil
	t.totalsReady = false
	return nil
}

// ApplyLoyaltyPoints reserva puntos del cliente para usarlos 1:1 como dinero
// en el subtotal. Requiere cliente asociado y saldo suficiente; los puntos se
// canjean realmente en Finalize. Invalida los totales calculados, de modo que
// el pago queda bloqueado hasta volver a llamar ComputeTotals.
func (t *Transaction) ApplyLoyaltyPoints(points decimal.Decimal) error {
	if t.Status != StatusPending {
		return domain.ErrConflict
	}
	if points.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if t.Customer == nil {
		return domain.ErrInvalidInput
	}
	if t.Customer.LoyaltyPoints.LessThan(points) {
		return domain.ErrInsufficientPoints
	}
	t.LoyaltyPointsUsed = points
	t.totalsReady = false
	return nil
}

// ComputeTotals recalcula todos los montos desde las líneas. Es idempotente:
// cada llamada parte de cero, por lo que puede invocarse cuantas veces haga
// falta y en cualquier orden relativo a ApplyLoyaltyPoints.
//
// Orden del cálculo: subtotal de líneas → descuento por nivel del cliente
// (sobre el subtotal ya descontado por línea) → puntos usados 1:1 → impuesto
// → total final → puntos a ganar (finalTotal*0.01*multiplicador del nivel).
func (t *Transaction) ComputeTotals(taxRate decimal.Decimal) {
	subtotal := decimal.Zero
	totalDiscount := decimal.Zero

	for i := range t.Lines {
		line := &t.Lines[i]
		subtotal = subtotal.Add(line.Subtotal)
		if line.Discount.GreaterThan(decimal.Zero) {
			totalDiscount = totalDiscount.Add(line.GrossSubtotal().Sub(line.Subtotal))
		}
	}

	if t.Customer != nil {
		customerDiscount := subtotal.Mul(t.Customer.DiscountRate())
		totalDiscount = totalDiscount.Add(customerDiscount)
		subtotal = subtotal.Sub(customerDiscount)
	}

	if t.LoyaltyPointsUsed.GreaterThan(decimal.Zero) {
		totalDiscount = totalDiscount.Add(t.LoyaltyPointsUsed)
		subtotal = subtotal.Sub(t.LoyaltyPointsUsed)
	}

	t.Subtotal = subtotal
	t.TotalDiscount = totalDiscount
	t.TaxRate = taxRate
	t.Tax = subtotal.Mul(taxRate)
	t.FinalTotal = subtotal.Add(t.Tax)

	t.LoyaltyPointsEarned = decimal.Zero
	if t.Customer != nil {
		t.LoyaltyPointsEarned = t.FinalTotal.
			Mul(decimal.NewFromFloat(0.01)).
			Mul(t.Customer.PointsMultiplier())
	}

	t.totalsReady = true
}

// ProcessPayment valida y registra el pago. Exige totales frescos y un total
// positivo. Para efectivo el monto entregado debe cubrir el total; para los
// demás métodos se asume el monto exacto (el vuelto es asunto de la caja, no
// del motor). No cambia el estado.
func (t *Transaction) ProcessPayment(method PaymentMethod, amountPaid decimal.Decimal) error {
	if t.Status != StatusPending {
		return domain.ErrConflict
	}
	if !t.totalsReady {
		return domain.ErrTotalsNotComputed
	}
	if t.FinalTotal.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if method == PaymentCash && amountPaid.LessThan(t.FinalTotal) {
		return domain.ErrInsufficientPayment
	}

	t.PaymentMethod = method
	if method == PaymentCash {
		t.AmountPaid = amountPaid
	} else {
		t.AmountPaid = t.FinalTotal
	}
	return nil
}

// Change vuelto a entregar (solo informativo; cero para métodos distintos de efectivo).
func (t *Transaction) Change() decimal.Decimal {
	if t.PaymentMethod != PaymentCash || t.AmountPaid.LessThan(t.FinalTotal) {
		return decimal.Zero
	}
	return t.AmountPaid.Sub(t.FinalTotal)
}

// Finalize es el único punto de commit de efectos cruzados: descuenta el stock
// de cada línea, registra la compra en el cliente, canjea los puntos usados y
// acredita los ganados. Solo procede desde PENDING; una segunda llamada no
// tiene efecto. Antes de mutar verifica el stock agregado por producto (varias
// líneas del mismo producto se suman), de modo que o se confirma todo o nada.
func (t *Transaction) Finalize() error {
	if t.Status != StatusPending {
		return domain.ErrConflict
	}

	needed := make(map[*Product]int)
	for i := range t.Lines {
		needed[t.Lines[i].Product] += t.Lines[i].StockUnits()
	}
	for product, units := range needed {
		if units > product.CurrentStock {
			return domain.ErrInsufficientStock
		}
	}
	for product, units := range needed {
		// Verificado arriba; ReduceStock no puede fallar aquí.
		_ = product.ReduceStock(units)
	}

	if t.Customer != nil {
		t.Customer.RecordPurchase(t.FinalTotal)
		if t.LoyaltyPointsUsed.GreaterThan(decimal.Zero) {
			_ = t.Customer.RedeemPoints(t.LoyaltyPointsUsed)
		}
		t.Customer.AddPoints(t.LoyaltyPointsEarned)
	}

	t.Status = StatusCompleted
	return nil
}

// Cancel abandona una transacción pendiente sin efectos sobre stock ni cliente.
// Estado terminal.
func (t *Transaction) Cancel() error {
	if t.Status != StatusPending {
		return domain.ErrConflict
	}
	t.Status = StatusCancelled
	return nil
}

// FullRefund reembolso por el total de la transacción.
func (t *Transaction) FullRefund() ([]RestockedLine, error) {
	return t.ProcessRefund(t.FinalTotal)
}

// ProcessRefund reembolsa un monto de una transacción completada. El reembolso
// es proporcional: con fracción f = monto/total se devuelven ceil(cantidad*f)
// unidades por línea al stock y se revierten f de los puntos ganados (si el
// cliente ya gastó esos puntos el canje se ignora, igual que el registro
// histórico de la caja). RecordPurchase con monto negativo revierte el gasto
// acumulado. Termina en REFUNDED o PARTIALLY_REFUNDED; ambos son terminales.
func (t *Transaction) ProcessRefund(amount decimal.Decimal) ([]RestockedLine, error) {
	if t.Status != StatusCompleted {
		return nil, domain.ErrConflict
	}
	if t.FinalTotal.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrConflict
	}
	if amount.LessThanOrEqual(decimal.Zero) || amount.GreaterThan(t.FinalTotal) {
		return nil, domain.ErrInvalidInput
	}

	fraction := amount.Div(t.FinalTotal)

	restocked := make([]RestockedLine, 0, len(t.Lines))
	for i := range t.Lines {
		line := &t.Lines[i]
		units := int(line.Quantity.Mul(fraction).Ceil().IntPart())
		if units <= 0 {
			continue
		}
		line.Product.AddStock(units)
		restocked = append(restocked, RestockedLine{Product: line.Product, Units: units})
	}

	if t.Customer != nil {
		t.Customer.RecordPurchase(amount.Neg())
		if t.LoyaltyPointsEarned.GreaterThan(decimal.Zero) {
			_ = t.Customer.RedeemPoints(t.LoyaltyPointsEarned.Mul(fraction))
		}
	}

	if amount.GreaterThanOrEqual(t.FinalTotal) {
		t.Status = StatusRefunded
	} else {
		t.Status = StatusPartiallyRefunded
	}
	return restocked, nil
}
