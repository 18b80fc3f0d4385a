package rentalsvc

import "github.com/fernandollisboa/boardcamp/util/date"

// Available reports whether one more unit of the game can be rented.
// outstanding is the number of rentals for that game not yet returned.
func Available(stockTotal int, outstanding int64) bool {
	return outstanding < int64(stockTotal)
}

// ComputeDelayFee charges the per-day rate for each whole day past the due
// date (rent date + days rented). Returning on or before the due date costs
// nothing, including a same-day return.
func ComputeDelayFee(rentDate date.Date, daysRented, originalPrice int, returnDate date.Date) int {
	if daysRented < 1 {
		return 0
	}
	lateDays := rentDate.DaysUntil(returnDate) - daysRented
	if lateDays < 0 {
		lateDays = 0
	}
	dailyRate := originalPrice / daysRented
	return lateDays * dailyRate
}
