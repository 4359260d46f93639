package rental

import "fmt"

const (
	regularBase       = 2.0
	regularFreeDays   = 2
	childrensBase     = 1.5
	childrensFreeDays = 3
	extraDayRate      = 1.5
	newReleaseRate    = 3.0
)

// Charge returns the price of renting a movie of category c for days.
func Charge(c Category, days int) float64 {
	switch c {
	case Regular:
		return regularBase + extraDays(days, regularFreeDays)*extraDayRate
	case NewRelease:
		return float64(days) * newReleaseRate
	case Childrens:
		return childrensBase + extraDays(days, childrensFreeDays)*extraDayRate
	}
	panic(fmt.Sprintf("rental: no charge rule for %v", c))
}

// Points returns the frequent renter points for renting a movie of category c for days.
func Points(c Category, days int) int {
	switch c {
	case Regular, Childrens:
		return 1
	case NewRelease:
		// Bonus point for a multi-day new release
		if days > 1 {
			return 2
		}
		return 1
	}
	panic(fmt.Sprintf("rental: no points rule for %v", c))
}

func extraDays(days, free int) float64 {
	return float64(max(0, days-free))
}
