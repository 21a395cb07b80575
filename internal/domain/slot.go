package domain

import "time"

// Slot represents a bookable time interval that satisfies the business-hour
// policy and does not overlap any busy interval
type Slot struct {
	Start    time.Time
	End      time.Time
	Timezone string
}
