package domain

import "github.com/m04kA/SMC-BookingFront/pkg/types"

// Booking represents a confirmed booking for today's schedule.
//
// ServiceName is a snapshot taken at creation time, not a live join:
// renaming the service afterwards does not change it.
type Booking struct {
	ID          string
	ServiceID   string
	ServiceName string
	StartTime   types.TimeString
	EndTime     types.TimeString
	ClientName  string
	ClientPhone string
}

// HasKnownService returns true if the booking carries a real service label
func (b *Booking) HasKnownService() bool {
	return b.ServiceName != "" && b.ServiceName != UnknownServiceName
}
