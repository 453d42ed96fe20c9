package console

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/tu-usuario/pos-tienda/internal/application/dto"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

func (m *Menu) inventoryMenu() {
	for {
		fmt.Fprint(m.out, "\n--- INVENTARIO ---\n")
		fmt.Fprint(m.out, "1. Ver productos\n")
		fmt.Fprint(m.out, "2. Alta de producto\n")
		fmt.Fprint(m.out, "3. Buscar productos\n")
		fmt.Fprint(m.out, "4. Reabastecer\n")
		fmt.Fprint(m.out, "5. Alerta de stock bajo\n")
		fmt.Fprint(m.out, "6. Kardex de un producto\n")
		fmt.Fprint(m.out, "7. Actualizar precios\n")
		fmt.Fprint(m.out, "8. Desactivar vencidos\n")
		fmt.Fprint(m.out, "0. Volver\n")

		switch m.promptInt("Opción: ") {
		case 1:
			m.listProducts()
		case 2:
			m.addProduct()
		case 3:
			m.searchProducts()
		case 4:
			m.restock()
		case 5:
			m.lowStockAlert()
		case 6:
			m.productKardex()
		case 7:
			m.updatePrices()
		case 8:
			m.deactivateExpired()
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
	}
}

func (m *Menu) listProducts() {
	products, err := m.products.List()
	if err != nil {
		m.fail(err)
		return
	}
	m.printProductTable(products)
}

func (m *Menu) printProductTable(products []*entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(m.out, "Sin productos.")
		return
	}
	now := time.Now()
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNombre\tTipo\tCategoría\tPrecio\tStock\tEstado")
	for _, p := range products {
		state := "activo"
		if !p.Active {
			state = "inactivo"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%s\t%d\t%s\n",
			p.ID, p.Name, p.Type, p.Category,
			p.ComputeSellingPrice(now).StringFixed(2), p.CurrentStock, state)
	}
	w.Flush()
}

func (m *Menu) addProduct() {
	in := dto.CreateProductRequest{
		ID:          m.prompt("ID del producto: "),
		Name:        m.prompt("Nombre: "),
		Description: m.prompt("Descripción: "),
		Supplier:    m.prompt("Proveedor: "),
	}

	fmt.Fprintln(m.out, "\nCategoría:")
	for i, c := range entity.AllCategories {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, c)
	}
	catIdx := m.promptInt("Categoría: ") - 1
	if catIdx < 0 || catIdx >= len(entity.AllCategories) {
		catIdx = len(entity.AllCategories) - 1 // Otros
	}
	in.Category = entity.AllCategories[catIdx]

	in.CostPrice = m.promptDecimal("Precio de costo: $")
	in.InitialStock = m.promptInt("Stock inicial: ")
	in.MinStockLevel = m.promptInt("Stock mínimo: ")
	in.MaxStockLevel = m.promptInt("Stock máximo: ")

	fmt.Fprint(m.out, "\nTipo de producto:\n1. Estándar\n2. Perecedero\n3. A granel\n")
	switch m.promptInt("Tipo: ") {
	case 2:
		in.Type = entity.ProductTypePerishable
		in.BasePrice = m.promptDecimal("Precio de lista: $")
		exp, err := time.Parse("2006-01-02", m.prompt("Fecha de vencimiento (AAAA-MM-DD): "))
		if err != nil {
			m.fail(err)
			return
		}
		in.ExpirationDate = exp
		in.ShelfLifeDays = m.promptInt("Vida útil (días): ")
		in.NearExpiryDiscount = m.promptDecimal("Descuento cerca del vencimiento (0.2 = 20%): ")
	case 3:
		in.Type = entity.ProductTypeBulk
		in.Unit = m.prompt("Unidad (kg, lt, ...): ")
		in.PricePerUnit = m.promptDecimal("Precio por unidad: $")
		in.MinimumQuantity = m.promptDecimal("Cantidad mínima: ")
	default:
		in.Type = entity.ProductTypeStandard
		in.Markup = m.promptDecimal("Margen sobre costo (0.3 = 30%): ")
	}

	product, err := m.inventoryUC.AddProduct(in)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Producto %s creado.\n", product.ID)
}

func (m *Menu) searchProducts() {
	term := m.prompt("Buscar (nombre, descripción o etiqueta): ")
	products, err := m.products.Search(term)
	if err != nil {
		m.fail(err)
		return
	}
	m.printProductTable(products)
}

func (m *Menu) restock() {
	id := m.prompt("ID del producto: ")
	qty := m.promptInt("Cantidad a ingresar: ")
	cost := m.promptDecimal("Costo unitario de la entrada (0 = costo vigente): $")
	added, err := m.inventoryUC.Restock(id, qty, cost, m.cfg.Store.Cashier)
	if err != nil {
		m.fail(err)
		return
	}
	if added < qty {
		fmt.Fprintf(m.out, "Ingresadas %d unidades (tope de stock máximo alcanzado).\n", added)
		return
	}
	fmt.Fprintf(m.out, "Ingresadas %d unidades.\n", added)
}

func (m *Menu) lowStockAlert() {
	products, err := m.inventoryUC.LowStock()
	if err != nil {
		m.fail(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, "Sin alertas de stock bajo.")
		return
	}
	fmt.Fprintln(m.out, "¡STOCK BAJO!")
	for _, p := range products {
		fmt.Fprintf(m.out, "  %s (%s): %d unidades, reponer %d\n",
			p.Name, p.ID, p.CurrentStock, p.RestockRecommendation())
	}
}

func (m *Menu) productKardex() {
	id := m.prompt("ID del producto: ")
	movements, err := m.inventoryUC.Movements(id)
	if err != nil {
		m.fail(err)
		return
	}
	if len(movements) == 0 {
		fmt.Fprintln(m.out, "Sin movimientos.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Fecha\tTipo\tCantidad\tCosto\tLote")
	for _, mov := range movements {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%s\n",
			mov.Date.Format("2006-01-02 15:04"), mov.Type,
			mov.Quantity.String(), mov.TotalCost.StringFixed(2), mov.TransactionID)
	}
	w.Flush()
}

func (m *Menu) updatePrices() {
	pct := m.promptDecimal("Cambio porcentual (0.10 = +10%, -0.05 = -5%): ")
	fmt.Fprint(m.out, "1. Todos los productos\n2. Una categoría\n")
	switch m.promptInt("Alcance: ") {
	case 1:
		count, err := m.inventoryUC.UpdateAllPrices(pct)
		if err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "%d productos actualizados.\n", count)
	case 2:
		category := entity.ParseCategory(m.prompt("Categoría: "))
		count, err := m.inventoryUC.UpdateCategoryPrices(category, pct)
		if err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "%d productos actualizados.\n", count)
	default:
		fmt.Fprintln(m.out, "Opción inválida.")
	}
}

func (m *Menu) deactivateExpired() {
	count, err := m.inventoryUC.DeactivateExpired()
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "%d productos vencidos desactivados.\n", count)
}
