package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario (kardex).
const (
	MovementTypeIn     = "in"     // entrada: reabastecimiento o reembolso
	MovementTypeOut    = "out"    // salida: venta confirmada
	MovementTypeAdjust = "adjust" // ajuste manual
)

// StockMovement registro del kardex: cada mutación de stock que confirma una
// venta, un reembolso o un reabastecimiento deja una fila. TransactionID agrupa
// las filas de un mismo lote (el ID de la transacción de venta o del lote de
// reabastecimiento).
type StockMovement struct {
	ID            string // uuid
	TransactionID string
	ProductID     string
	Type          string          // in, out, adjust
	Quantity      decimal.Decimal // positiva para in, negativa para out
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	Date          time.Time
	CreatedBy     string // cajero u operador
}
