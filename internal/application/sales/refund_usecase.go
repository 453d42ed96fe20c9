package sales

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
	"github.com/tu-usuario/pos-tienda/internal/domain/repository"
	"github.com/tu-usuario/pos-tienda/pkg/logger"
)

// RefundUseCase procesa reembolsos sobre ventas completadas y asienta las
// devoluciones de stock en el kardex (filas IN con el ID de la transacción
// original como lote).
type RefundUseCase struct {
	txRepo repository.TransactionRepository
	kardex repository.StockMovementRepository
	now    Clock
	log    *logger.Logger
}

// NewRefundUseCase construye el caso de uso.
func NewRefundUseCase(
	txRepo repository.TransactionRepository,
	kardex repository.StockMovementRepository,
	now Clock,
	log *logger.Logger,
) *RefundUseCase {
	return &RefundUseCase{txRepo: txRepo, kardex: kardex, now: now, log: log}
}

// Refund reembolsa un monto de la transacción; amount cero reembolsa el total.
func (uc *RefundUseCase) Refund(transactionID string, amount decimal.Decimal) error {
	tx, err := uc.txRepo.GetByID(transactionID)
	if err != nil {
		return fmt.Errorf("buscar transacción: %w", err)
	}

	var restocked []entity.RestockedLine
	if amount.IsZero() {
		restocked, err = tx.FullRefund()
	} else {
		restocked, err = tx.ProcessRefund(amount)
	}
	if err != nil {
		return err
	}

	now := uc.now()
	for _, line := range restocked {
		units := decimal.NewFromInt(int64(line.Units))
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			TransactionID: tx.ID,
			ProductID:     line.Product.ID,
			Type:          entity.MovementTypeIn,
			Quantity:      units,
			UnitCost:      line.Product.CostPrice,
			TotalCost:     units.Mul(line.Product.CostPrice),
			Date:          now,
			CreatedBy:     tx.CashierID,
		}
		if err := uc.kardex.Create(mov); err != nil {
			return fmt.Errorf("asentar kardex: %w", err)
		}
	}

	uc.log.Info().
		Str("transaction_id", tx.ID).
		Str("status", string(tx.Status)).
		Msg("reembolso procesado")
	return nil
}
