package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/tu-usuario/pos-tienda/internal/application/dto"
	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

func (m *Menu) customerMenu() {
	for {
		fmt.Fprint(m.out, "\n--- CLIENTES ---\n")
		fmt.Fprint(m.out, "1. Ver clientes\n")
		fmt.Fprint(m.out, "2. Registrar cliente\n")
		fmt.Fprint(m.out, "3. Buscar cliente\n")
		fmt.Fprint(m.out, "4. Cambiar nivel\n")
		fmt.Fprint(m.out, "5. Candidatos a ascenso\n")
		fmt.Fprint(m.out, "0. Volver\n")

		switch m.promptInt("Opción: ") {
		case 1:
			m.listCustomers()
		case 2:
			m.registerCustomer()
		case 3:
			m.findCustomer()
		case 4:
			m.changeTier()
		case 5:
			m.upgradeCandidates()
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
	}
}

func (m *Menu) listCustomers() {
	customers, err := m.customersUC.List()
	if err != nil {
		m.fail(err)
		return
	}
	m.printCustomerTable(customers)
}

func (m *Menu) printCustomerTable(customers []*entity.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(m.out, "Sin clientes.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNombre\tNivel\tGasto total\tPuntos\tCompras")
	for _, c := range customers {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%s\t%d\n",
			c.ID, c.FullName(), c.Tier,
			c.TotalSpent.StringFixed(2), c.LoyaltyPoints.StringFixed(2), c.TransactionCount)
	}
	w.Flush()
}

func (m *Menu) registerCustomer() {
	in := dto.RegisterCustomerRequest{
		FirstName: m.prompt("Nombre: "),
		LastName:  m.prompt("Apellido: "),
		Email:     m.prompt("Email (opcional): "),
		Phone:     m.prompt("Teléfono (opcional): "),
	}

	fmt.Fprintln(m.out, "\nNivel:")
	for i, t := range entity.AllTiers {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, t)
	}
	tierIdx := m.promptInt("Nivel: ") - 1
	if tierIdx >= 0 && tierIdx < len(entity.AllTiers) {
		in.Tier = entity.AllTiers[tierIdx]
	}

	customer, err := m.customersUC.Register(in)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Cliente %s registrado con ID %s.\n", customer.FullName(), customer.ID)
}

func (m *Menu) findCustomer() {
	fmt.Fprint(m.out, "1. Por ID\n2. Por email\n3. Por teléfono\n")
	var (
		customer *entity.Customer
		err      error
	)
	switch m.promptInt("Buscar: ") {
	case 1:
		customer, err = m.customersUC.Get(m.prompt("ID: "))
	case 2:
		customer, err = m.customersUC.FindByEmail(m.prompt("Email: "))
	case 3:
		customer, err = m.customersUC.FindByPhone(m.prompt("Teléfono: "))
	default:
		fmt.Fprintln(m.out, "Opción inválida.")
		return
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.printCustomerDetail(customer)
}

func (m *Menu) printCustomerDetail(c *entity.Customer) {
	fmt.Fprintf(m.out, "\nID: %s\n", c.ID)
	fmt.Fprintf(m.out, "Nombre: %s\n", c.FullName())
	if c.Email != "" {
		fmt.Fprintf(m.out, "Email: %s\n", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintf(m.out, "Teléfono: %s\n", c.Phone)
	}
	fmt.Fprintf(m.out, "Nivel: %s\n", c.Tier)
	fmt.Fprintf(m.out, "Gasto total: $%s\n", c.TotalSpent.StringFixed(2))
	fmt.Fprintf(m.out, "Puntos: %s\n", c.LoyaltyPoints.StringFixed(2))
	fmt.Fprintf(m.out, "Compras: %d\n", c.TransactionCount)
	fmt.Fprintf(m.out, "Socio desde: %s\n", c.MembershipDate.Format("2006-01-02"))
	if c.EligibleForUpgrade() {
		fmt.Fprintln(m.out, "¡Elegible para subir de nivel!")
	}
}

func (m *Menu) changeTier() {
	id := m.prompt("ID del cliente: ")
	fmt.Fprintln(m.out, "Nuevo nivel:")
	for i, t := range entity.AllTiers {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, t)
	}
	tierIdx := m.promptInt("Nivel: ") - 1
	if tierIdx < 0 || tierIdx >= len(entity.AllTiers) {
		fmt.Fprintln(m.out, "Opción inválida.")
		return
	}
	if err := m.customersUC.SetTier(id, entity.AllTiers[tierIdx]); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Nivel actualizado a %s.\n", entity.AllTiers[tierIdx])
}

func (m *Menu) upgradeCandidates() {
	candidates, err := m.customersUC.UpgradeCandidates()
	if err != nil {
		m.fail(err)
		return
	}
	if len(candidates) == 0 {
		fmt.Fprintln(m.out, "Sin candidatos a ascenso.")
		return
	}
	fmt.Fprintln(m.out, "Candidatos a subir de nivel (el ascenso es manual):")
	m.printCustomerTable(candidates)
}
