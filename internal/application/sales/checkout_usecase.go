package sales

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
	"github.com/tu-usuario/pos-tienda/internal/domain/repository"
	"github.com/tu-usuario/pos-tienda/pkg/logger"
)

// CheckoutUseCase orquesta el ciclo completo de una venta: abrir la
// transacción, armar el carrito contra el catálogo, aplicar puntos, calcular
// totales con la tasa de impuesto configurada, cobrar y confirmar. Al
// confirmar registra las salidas en el kardex (una fila OUT por línea, con el
// ID de la transacción como lote).
type CheckoutUseCase struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
	txRepo    repository.TransactionRepository
	kardex    repository.StockMovementRepository
	txSeq     IDGenerator
	pdfGen    ReceiptPDFGenerator
	taxRate   decimal.Decimal
	storeName string
	now       Clock
	log       *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	kardex repository.StockMovementRepository,
	txSeq IDGenerator,
	pdfGen ReceiptPDFGenerator,
	taxRate decimal.Decimal,
	storeName string,
	now Clock,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		products:  products,
		customers: customers,
		txRepo:    txRepo,
		kardex:    kardex,
		txSeq:     txSeq,
		pdfGen:    pdfGen,
		taxRate:   taxRate,
		storeName: storeName,
		now:       now,
		log:       log,
	}
}

// Start abre una transacción pendiente. customerID vacío = venta sin cliente
// registrado; un cliente inactivo no puede comprar.
func (uc *CheckoutUseCase) Start(customerID, cashierID string) (*entity.Transaction, error) {
	var customer *entity.Customer
	if customerID != "" {
		c, err := uc.customers.GetByID(customerID)
		if err != nil {
			return nil, fmt.Errorf("buscar cliente: %w", err)
		}
		if !c.Active {
			return nil, domain.ErrInactiveCustomer
		}
		customer = c
	}
	tx := entity.NewTransaction(uc.txSeq.Next(), customer, cashierID, uc.now())
	return tx, nil
}

// AddLine busca el producto en el catálogo y lo agrega al carrito.
func (uc *CheckoutUseCase) AddLine(tx *entity.Transaction, productID string, qty, discount decimal.Decimal, notes string) error {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return fmt.Errorf("buscar producto: %w", err)
	}
	return tx.AddLine(product, qty, discount, notes, uc.now())
}

// ApplyLoyaltyPoints reserva puntos del cliente para la venta.
func (uc *CheckoutUseCase) ApplyLoyaltyPoints(tx *entity.Transaction, points decimal.Decimal) error {
	return tx.ApplyLoyaltyPoints(points)
}

// ComputeTotals calcula los totales con la tasa de impuesto de la tienda.
func (uc *CheckoutUseCase) ComputeTotals(tx *entity.Transaction) {
	tx.ComputeTotals(uc.taxRate)
}

// Pay valida y registra el pago.
func (uc *CheckoutUseCase) Pay(tx *entity.Transaction, method entity.PaymentMethod, amountPaid decimal.Decimal) error {
	return tx.ProcessPayment(method, amountPaid)
}

// Finalize confirma la venta (commit de stock y fidelidad), la guarda en el
// registro histórico y asienta las salidas en el kardex.
func (uc *CheckoutUseCase) Finalize(tx *entity.Transaction) error {
	if err := tx.Finalize(); err != nil {
		return err
	}
	if err := uc.txRepo.Save(tx); err != nil {
		return fmt.Errorf("guardar transacción: %w", err)
	}

	now := uc.now()
	for i := range tx.Lines {
		line := &tx.Lines[i]
		units := decimal.NewFromInt(int64(line.StockUnits()))
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			TransactionID: tx.ID,
			ProductID:     line.Product.ID,
			Type:          entity.MovementTypeOut,
			Quantity:      units.Neg(),
			UnitCost:      line.Product.CostPrice,
			TotalCost:     units.Neg().Mul(line.Product.CostPrice),
			Date:          now,
			CreatedBy:     tx.CashierID,
		}
		if err := uc.kardex.Create(mov); err != nil {
			return fmt.Errorf("asentar kardex: %w", err)
		}
	}

	uc.log.Info().
		Str("transaction_id", tx.ID).
		Str("total", tx.FinalTotal.StringFixed(2)).
		Str("payment", string(tx.PaymentMethod)).
		Int("lines", len(tx.Lines)).
		Msg("venta confirmada")
	return nil
}

// Cancel abandona la venta pendiente y la conserva en el histórico como CANCELLED.
func (uc *CheckoutUseCase) Cancel(tx *entity.Transaction) error {
	if err := tx.Cancel(); err != nil {
		return err
	}
	if err := uc.txRepo.Save(tx); err != nil {
		return fmt.Errorf("guardar transacción: %w", err)
	}
	uc.log.Info().Str("transaction_id", tx.ID).Msg("venta cancelada")
	return nil
}

// ExportReceiptPDF genera el recibo PDF de una venta y lo escribe en dir.
// Devuelve la ruta del archivo.
func (uc *CheckoutUseCase) ExportReceiptPDF(tx *entity.Transaction, dir string) (string, error) {
	data, err := uc.pdfGen.GenerateReceiptPDF(tx, uc.storeName)
	if err != nil {
		return "", fmt.Errorf("generar recibo PDF: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de recibos: %w", err)
	}
	path := filepath.Join(dir, tx.ID+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir recibo PDF: %w", err)
	}
	return path, nil
}
