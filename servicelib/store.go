package servicelib

// Movie as stored, PriceCode is the store's name for the category
type Movie struct {
	ID        string
	Title     string
	PriceCode string
}

// Rental movie rented by a customer
type Rental struct {
	MovieID    string
	DaysRented int
}

// Customer unique customer of the store
type Customer struct {
	ID   int
	Name string
}

// StoreService the store owning customers, movies and rentals
type StoreService interface {
	GetCustomer(int) (*Customer, error)
	GetRentalsForCustomer(int) ([]*Rental, error)
	GetMovie(string) *Movie
}
