package rental

import (
	"fmt"
	"strings"
)

// Line priced rental on a statement
type Line struct {
	Title  string
	Charge float64
	Points int
}

// Bill computed result for one customer, lines keep rental order
type Bill struct {
	Customer    string
	Lines       []Line
	TotalCharge float64
	TotalPoints int
}

// FormatStatement renders b. Charges have one decimal, there is no trailing newline.
func FormatStatement(b Bill) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Rental Record for %s\n", b.Customer)
	for _, l := range b.Lines {
		fmt.Fprintf(&sb, "\t%s\t%.1f\n", l.Title, l.Charge)
	}
	fmt.Fprintf(&sb, "Amount owed is %.1f\n", b.TotalCharge)
	fmt.Fprintf(&sb, "You earned %d frequent renter points", b.TotalPoints)
	return sb.String()
}
