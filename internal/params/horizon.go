package params

// BaseYear is the first projected year; every compounded series is anchored
// here and re-derived from it.
const BaseYear = 2024

// MinHorizonYear is the minimum final projected year. Projections always
// cover BaseYear through max(target year, MinHorizonYear).
const MinHorizonYear = 2050

// HorizonYears returns the ascending list of years a projection covers for
// the given target year.
func HorizonYears(targetYear int) []int {
	end := targetYear
	if end < MinHorizonYear {
		end = MinHorizonYear
	}
	years := make([]int, 0, end-BaseYear+1)
	for y := BaseYear; y <= end; y++ {
		years = append(years, y)
	}
	return years
}
