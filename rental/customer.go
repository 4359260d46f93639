package rental

// Customer name with the rentals billed to it, in the order they were made
type Customer struct {
	name    string
	rentals []Rental
}

// NewCustomer copies rentals, changes to the caller's slice do not reach the customer.
func NewCustomer(name string, rentals ...Rental) Customer {
	return Customer{name: name, rentals: append([]Rental(nil), rentals...)}
}

// Name of the customer
func (c Customer) Name() string {
	return c.name
}

// Rentals returns a copy of the customer's rentals in insertion order.
func (c Customer) Rentals() []Rental {
	return append([]Rental(nil), c.rentals...)
}

// Bill prices every rental once, in order, and sums charges and points.
func (c Customer) Bill() Bill {
	b := Bill{Customer: c.name, Lines: make([]Line, 0, len(c.rentals))}
	for _, r := range c.rentals {
		l := Line{Title: r.Movie().Title(), Charge: r.Charge(), Points: r.Points()}
		b.Lines = append(b.Lines, l)
		b.TotalCharge += l.Charge
		b.TotalPoints += l.Points
	}
	return b
}

// Statement renders the customer's bill as text.
func (c Customer) Statement() string {
	return FormatStatement(c.Bill())
}
