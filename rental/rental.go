package rental

import "github.com/pkg/errors"

// ErrNegativeDays is returned when a rental is created with a negative duration.
var ErrNegativeDays = errors.New("days rented cannot be negative")

// Rental one movie rented for a number of days
type Rental struct {
	movie      Movie
	daysRented int
}

// NewRental creates a rental of movie for days.
func NewRental(movie Movie, days int) (Rental, error) {
	if days < 0 {
		return Rental{}, errors.Wrapf(ErrNegativeDays, "%d days of %q", days, movie.Title())
	}
	return Rental{movie: movie, daysRented: days}, nil
}

// Movie rented
func (r Rental) Movie() Movie {
	return r.movie
}

// DaysRented duration of the rental
func (r Rental) DaysRented() int {
	return r.daysRented
}

// Charge for this rental
func (r Rental) Charge() float64 {
	return Charge(r.movie.Category(), r.daysRented)
}

// Points frequent renter points earned by this rental
func (r Rental) Points() int {
	return Points(r.movie.Category(), r.daysRented)
}
