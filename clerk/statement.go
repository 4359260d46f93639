package clerk

import (
	"fmt"

	"github.com/eirikbell/videostore/rental"
	"github.com/eirikbell/videostore/servicelib"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func findCustomer(customerID int, store servicelib.StoreService) (*servicelib.Customer, error) {
	customer, err := store.GetCustomer(customerID)
	if err != nil {
		return nil, errors.Wrap(err, "Customer not found")
	}
	if customer == nil {
		return nil, fmt.Errorf("Customer not found")
	}

	return customer, nil
}

func toRental(record *servicelib.Rental, store servicelib.StoreService) (rental.Rental, error) {
	m := store.GetMovie(record.MovieID)
	if m == nil {
		return rental.Rental{}, fmt.Errorf("Movie %s not found", record.MovieID)
	}

	category, err := rental.ParseCategory(m.PriceCode)
	if err != nil {
		return rental.Rental{}, errors.Wrapf(err, "Invalid price code for movie %s", m.ID)
	}

	r, err := rental.NewRental(rental.NewMovie(m.Title, category), record.DaysRented)
	if err != nil {
		return rental.Rental{}, errors.Wrapf(err, "Invalid rental of movie %s", m.ID)
	}

	return r, nil
}

// loadCustomer also returns the movie ID of every rental, in rental order
func loadCustomer(customerID int, store servicelib.StoreService) (rental.Customer, []string, error) {
	c, err := findCustomer(customerID, store)
	if err != nil {
		return rental.Customer{}, nil, err
	}

	records, err := store.GetRentalsForCustomer(customerID)
	if err != nil {
		return rental.Customer{}, nil, errors.Wrap(err, "Cannot retrieve rentals")
	}

	rentals := make([]rental.Rental, 0, len(records))
	movieIDs := make([]string, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return rental.Customer{}, nil, fmt.Errorf("Rental %d of customer %d is empty", i, customerID)
		}
		r, err := toRental(rec, store)
		if err != nil {
			return rental.Customer{}, nil, err
		}
		rentals = append(rentals, r)
		movieIDs = append(movieIDs, rec.MovieID)
	}

	return rental.NewCustomer(c.Name, rentals...), movieIDs, nil
}

// BillFor computes the bill of a stored customer, any failing record aborts the whole bill
func BillFor(customerID int, store servicelib.StoreService, log zerolog.Logger) (rental.Bill, error) {
	c, movieIDs, err := loadCustomer(customerID, store)
	if err != nil {
		log.Warn().Err(err).Int("customer_id", customerID).Msg("bill_failed")
		return rental.Bill{}, err
	}

	b := c.Bill()
	for i, l := range b.Lines {
		log.Debug().
			Int("customer_id", customerID).
			Str("movie_id", movieIDs[i]).
			Str("title", l.Title).
			Float64("charge", l.Charge).
			Int("points", l.Points).
			Msg("rental_priced")
	}
	return b, nil
}

// PrintStatement renders the rental statement of a stored customer
func PrintStatement(customerID int, store servicelib.StoreService, log zerolog.Logger) (string, error) {
	b, err := BillFor(customerID, store, log)
	if err != nil {
		return "", err
	}

	log.Info().
		Int("customer_id", customerID).
		Int("rentals", len(b.Lines)).
		Float64("amount_owed", b.TotalCharge).
		Int("points", b.TotalPoints).
		Msg("statement_printed")
	return rental.FormatStatement(b), nil
}
