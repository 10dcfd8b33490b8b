package stats

import "time"

type DailyStatsDB struct {
	Day       time.Time `db:"day"`
	Created   int64     `db:"created"`
	Completed int64     `db:"completed"`
	Issues    int64     `db:"issues"`
	FuelStops int64     `db:"fuel_stops"`
	TotalKm   float64   `db:"total_km"`
}
