package mocks

import (
	servicelib "github.com/eirikbell/videostore/servicelib"
	mock "github.com/stretchr/testify/mock"
)

// StoreService is a testify mock of servicelib.StoreService
type StoreService struct {
	mock.Mock
}

// GetCustomer provides a mock function with given fields: _a0
func (_m *StoreService) GetCustomer(_a0 int) (*servicelib.Customer, error) {
	ret := _m.Called(_a0)

	var r0 *servicelib.Customer
	if rf, ok := ret.Get(0).(func(int) *servicelib.Customer); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*servicelib.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(int) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMovie provides a mock function with given fields: _a0
func (_m *StoreService) GetMovie(_a0 string) *servicelib.Movie {
	ret := _m.Called(_a0)

	var r0 *servicelib.Movie
	if rf, ok := ret.Get(0).(func(string) *servicelib.Movie); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*servicelib.Movie)
		}
	}

	return r0
}

// GetRentalsForCustomer provides a mock function with given fields: _a0
func (_m *StoreService) GetRentalsForCustomer(_a0 int) ([]*servicelib.Rental, error) {
	ret := _m.Called(_a0)

	var r0 []*servicelib.Rental
	if rf, ok := ret.Get(0).(func(int) []*servicelib.Rental); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*servicelib.Rental)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(int) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
