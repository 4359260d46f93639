package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStatement(t *testing.T) {
	testCases := []struct {
		bill     Bill
		expected string
	}{
		{
			Bill{Customer: "Martin"},
			"Rental Record for Martin\nAmount owed is 0.0\nYou earned 0 frequent renter points",
		},
		{
			Bill{
				Customer:    "Martin",
				Lines:       []Line{{Title: "Taxi", Charge: 2, Points: 1}, {Title: "Up", Charge: 4.5, Points: 1}},
				TotalCharge: 6.5,
				TotalPoints: 2,
			},
			"Rental Record for Martin\n\tTaxi\t2.0\n\tUp\t4.5\nAmount owed is 6.5\nYou earned 2 frequent renter points",
		},
		{
			// Totals are rendered as given, not recomputed from the lines
			Bill{Customer: "", Lines: []Line{{Title: "", Charge: 0}}, TotalCharge: 24.5, TotalPoints: 4},
			"Rental Record for \n\t\t0.0\nAmount owed is 24.5\nYou earned 4 frequent renter points",
		},
	}
	for _, tt := range testCases {
		assert.Equal(t, tt.expected, FormatStatement(tt.bill))
	}
}
