// Package routelog holds the route history: the record model and the
// in-memory store that mirrors itself into one persisted key-value slot.
package routelog

// Record is one logged trip. Distance keeps whatever unit text the
// resolver produced (e.g. "5.4 km"); it is display data, not a number.
type Record struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Distance    string `json:"distance"`
	// Date is the es-ES display date of creation, dd/mm/yyyy.
	Date string `json:"date"`
	// Day is one of the six working-day names (week.WorkingDays).
	Day string `json:"day"`
	// WeekKey is the Monday of the record's week, YYYY-MM-DD. It
	// partitions all history queries.
	WeekKey   string `json:"week_id"`
	Incidence string `json:"incidence,omitempty"`
}
