package clock

import "time"

// UTC текущее время в UTC с точностью до микросекунд, как хранит Postgres.
type UTC struct{}

func New() *UTC {
	return &UTC{}
}

func (c *UTC) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
