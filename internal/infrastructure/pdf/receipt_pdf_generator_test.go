package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
	"github.com/tu-usuario/pos-tienda/internal/infrastructure/pdf"
)

func buildCompletedTransaction(t *testing.T) *entity.Transaction {
	t.Helper()
	ref := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	product := &entity.Product{
		ID: "P001", Name: "Gaseosa 600ml", Type: entity.ProductTypeStandard,
		CostPrice: decimal.NewFromInt(8), Markup: decimal.NewFromFloat(0.25),
		CurrentStock: 50, MaxStockLevel: 100, Active: true,
	}
	customer := &entity.Customer{
		ID: "C1001", FirstName: "Ana", LastName: "Martínez",
		Tier: entity.TierVIP, LoyaltyPoints: decimal.Zero, Active: true,
	}
	tx := entity.NewTransaction("TXN10001", customer, "CAJA-01", ref)
	require.NoError(t, tx.AddLine(product, decimal.NewFromInt(2), decimal.Zero, "", ref))
	tx.ComputeTotals(decimal.NewFromFloat(0.08))
	require.NoError(t, tx.ProcessPayment(entity.PaymentCash, decimal.NewFromInt(25)))
	require.NoError(t, tx.Finalize())
	return tx
}

func TestGenerateReceiptPDF_ProduceDocumentoValido(t *testing.T) {
	gen := pdf.NewMarotoReceiptGenerator()
	tx := buildCompletedTransaction(t)

	data, err := gen.GenerateReceiptPDF(tx, "Tienda de Prueba")

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "el documento empieza con la cabecera PDF")
}

func TestGenerateReceiptPDF_SinClienteTambienGenera(t *testing.T) {
	gen := pdf.NewMarotoReceiptGenerator()
	ref := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	product := &entity.Product{
		ID: "P002", Name: "Arroz a Granel", Type: entity.ProductTypeBulk,
		PricePerUnit: decimal.NewFromFloat(1.20), Unit: "kg",
		MinimumQuantity: decimal.NewFromFloat(0.5),
		CurrentStock:    100, MaxStockLevel: 200, Active: true,
	}
	tx := entity.NewTransaction("TXN10002", nil, "CAJA-01", ref)
	require.NoError(t, tx.AddLine(product, decimal.RequireFromString("2.5"), decimal.NewFromFloat(0.1), "", ref))
	tx.ComputeTotals(decimal.NewFromFloat(0.08))

	data, err := gen.GenerateReceiptPDF(tx, "Tienda de Prueba")

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
