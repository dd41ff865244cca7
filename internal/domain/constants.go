package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// UnknownServiceName placeholder shown when a booking carries no service label
const UnknownServiceName = "Unknown"
