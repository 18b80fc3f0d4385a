// model/rental.go
package model

import "github.com/fernandollisboa/boardcamp/util/date"

// Rental is open while ReturnDate is nil; closing sets ReturnDate and
// DelayFee together, exactly once.
type Rental struct {
	ID            int64      `json:"id"`
	CustomerID    int64      `json:"customerId"`
	GameID        int64      `json:"gameId"`
	RentDate      date.Date  `json:"rentDate"`
	DaysRented    int        `json:"daysRented"`
	ReturnDate    *date.Date `json:"returnDate"`
	OriginalPrice int        `json:"originalPrice"` // fixed at creation, minor units
	DelayFee      *int       `json:"delayFee"`
}

// RentalCustomer and RentalGame are the embedded shapes the rental listing
// joins in.
type RentalCustomer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RentalGame struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type RentalWithRefs struct {
	Rental
	Customer RentalCustomer `json:"customer"`
	Game     RentalGame     `json:"game"`
}
