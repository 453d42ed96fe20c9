package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInsufficientPoints   = errors.New("puntos de fidelidad insuficientes")
	ErrInsufficientPayment  = errors.New("pago en efectivo insuficiente")
	ErrInactiveProduct      = errors.New("producto inactivo")
	ErrInactiveCustomer     = errors.New("cliente inactivo")
	ErrBelowMinimumQuantity = errors.New("cantidad por debajo del mínimo del producto a granel")
	ErrTotalsNotComputed    = errors.New("totales sin calcular o desactualizados")
)
