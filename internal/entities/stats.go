package entities

import "time"

type DailyStats struct {
	Day       time.Time
	Created   int64
	Completed int64
	Issues    int64
	FuelStops int64
	TotalKm   float64
}

// DailyStatsDelta приращения, которые одно событие вносит в день.
type DailyStatsDelta struct {
	Day       time.Time
	Created   int64
	Completed int64
	Issues    int64
	FuelStops int64
	TotalKm   float64
}

func (d DailyStatsDelta) IsZero() bool {
	return d.Created == 0 && d.Completed == 0 && d.Issues == 0 && d.FuelStops == 0 && d.TotalKm == 0
}
