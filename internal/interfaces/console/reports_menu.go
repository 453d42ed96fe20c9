package console

import (
	"fmt"
	"text/tabwriter"
)

func (m *Menu) reportsMenu() {
	for {
		fmt.Fprint(m.out, "\n--- REPORTES ---\n")
		fmt.Fprint(m.out, "1. Valoración del inventario\n")
		fmt.Fprint(m.out, "2. Por categoría\n")
		fmt.Fprint(m.out, "3. Por proveedor\n")
		fmt.Fprint(m.out, "4. Rentabilidad\n")
		fmt.Fprint(m.out, "5. Estadísticas de clientes\n")
		fmt.Fprint(m.out, "6. Mejores clientes\n")
		fmt.Fprint(m.out, "7. Sobrestock y agotados\n")
		fmt.Fprint(m.out, "0. Volver\n")

		switch m.promptInt("Opción: ") {
		case 1:
			m.valuationReport()
		case 2:
			m.categoryReport()
		case 3:
			m.supplierReport()
		case 4:
			m.profitabilityReport()
		case 5:
			m.customerStatistics()
		case 6:
			m.topCustomers()
		case 7:
			m.stockExtremes()
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
	}
}

func (m *Menu) valuationReport() {
	v, err := m.inventoryUC.Valuation()
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "\nValor de venta del inventario: $%s\n", v.TotalValue.StringFixed(2))
	fmt.Fprintf(m.out, "Costo del inventario: $%s\n", v.TotalCost.StringFixed(2))
	fmt.Fprintf(m.out, "Ganancia potencial: $%s\n", v.PotentialProfit.StringFixed(2))
}

func (m *Menu) categoryReport() {
	summaries, err := m.inventoryUC.CategoryReport()
	if err != nil {
		m.fail(err)
		return
	}
	if len(summaries) == 0 {
		fmt.Fprintln(m.out, "Sin productos activos.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Categoría\tProductos\tUnidades\tValor\tCosto")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\t$%s\t$%s\n",
			s.Category, s.Products, s.Units, s.Value.StringFixed(2), s.Cost.StringFixed(2))
	}
	w.Flush()
}

func (m *Menu) supplierReport() {
	summaries, err := m.inventoryUC.SupplierReport()
	if err != nil {
		m.fail(err)
		return
	}
	if len(summaries) == 0 {
		fmt.Fprintln(m.out, "Sin proveedores con productos activos.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Proveedor\tProductos\tValor")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t$%s\n", s.Supplier, s.Products, s.Value.StringFixed(2))
	}
	w.Flush()
}

func (m *Menu) profitabilityReport() {
	rows, err := m.inventoryUC.ProfitabilityReport()
	if err != nil {
		m.fail(err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "Sin productos activos.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tProducto\tPrecio\tCosto\tMargen %\tValor en stock")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t$%s\t$%s\t%s\t$%s\n",
			r.ID, r.Name, r.UnitPrice.StringFixed(2), r.UnitCost.StringFixed(2),
			r.MarginPct.StringFixed(1), r.StockValue.StringFixed(2))
	}
	w.Flush()
}

func (m *Menu) customerStatistics() {
	stats, err := m.customersUC.Statistics()
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "\nClientes registrados: %d\n", stats.Total)
	fmt.Fprintf(m.out, "Gasto acumulado: $%s\n", stats.TotalSpending.StringFixed(2))
	fmt.Fprintf(m.out, "Gasto promedio: $%s\n", stats.AverageSpending.StringFixed(2))
	fmt.Fprintln(m.out, "Por nivel:")
	for tier, count := range stats.ByTier {
		fmt.Fprintf(m.out, "  %s: %d\n", tier, count)
	}
	if len(stats.Top) > 0 {
		fmt.Fprintln(m.out, "Mejores compradores:")
		for i, c := range stats.Top {
			fmt.Fprintf(m.out, "  %d. %s ($%s)\n", i+1, c.FullName(), c.TotalSpent.StringFixed(2))
		}
	}
}

func (m *Menu) topCustomers() {
	n := m.promptInt("¿Cuántos clientes mostrar?: ")
	if n <= 0 {
		fmt.Fprintln(m.out, "Opción inválida.")
		return
	}
	top, err := m.customersUC.TopCustomers(n)
	if err != nil {
		m.fail(err)
		return
	}
	m.printCustomerTable(top)
}

func (m *Menu) stockExtremes() {
	over, err := m.inventoryUC.Overstocked()
	if err != nil {
		m.fail(err)
		return
	}
	out, err := m.inventoryUC.OutOfStock()
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "\nSobrestock (%d):\n", len(over))
	for _, p := range over {
		fmt.Fprintf(m.out, "  %s (%s): %d/%d\n", p.Name, p.ID, p.CurrentStock, p.MaxStockLevel)
	}
	fmt.Fprintf(m.out, "Agotados (%d):\n", len(out))
	for _, p := range out {
		fmt.Fprintf(m.out, "  %s (%s)\n", p.Name, p.ID)
	}
}
