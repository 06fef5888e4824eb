package attendance

import "time"

const (
	CategoryPresent  = "present"
	CategoryAbsent   = "absent"
	CategoryHalf     = "half"
	CategoryOvertime = "overtime"
)

// DayFact is one attendance observation for one staff member on one date.
// Weight is the fractional working-day credit the source assigned the day.
type DayFact struct {
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Weight   float64   `json:"fractionalWeight"`
}
