package sales

import (
	"time"

	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// Clock fuente de tiempo inyectable (los perecederos y los recibos dependen
// de la fecha; en tests se fija).
type Clock func() time.Time

// IDGenerator asigna los IDs de transacción (TXN10001, ...). Lo implementa la
// secuencia del registro de ventas.
type IDGenerator interface {
	Next() string
}

// ReceiptPDFGenerator puerto de exportación del recibo a PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(tx *entity.Transaction, storeName string) ([]byte, error)
}
