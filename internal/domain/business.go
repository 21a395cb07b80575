package domain

import "time"

// Business профиль бизнеса, от имени которого ведётся запись
type Business struct {
	Name     string
	Address  string
	Location *time.Location
}
