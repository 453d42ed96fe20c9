// Package inventory contiene servicios de dominio de inventario que no
// pertenecen a ninguna entidad en particular.
package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost calcula el costo promedio ponderado tras una entrada:
//
//	NuevoCosto = (StockActual*CostoActual + Entrada*CostoEntrada) / (StockActual + Entrada)
//
// Con suma de unidades no positiva devuelve el costo de la entrada (no hay
// base sobre la cual promediar).
func WeightedAverageCost(stock, cost, incomingQty, incomingCost decimal.Decimal) decimal.Decimal {
	total := stock.Add(incomingQty)
	if total.LessThanOrEqual(decimal.Zero) {
		return incomingCost
	}
	return stock.Mul(cost).
		Add(incomingQty.Mul(incomingCost)).
		Div(total)
}
