package domain

// Service represents an operator-defined service in the catalog
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           int
}

// IsFree returns true if the service has no price set
func (s *Service) IsFree() bool {
	return s.Price == 0
}

// HasDuration returns true if the service has an explicit duration
func (s *Service) HasDuration() bool {
	return s.DurationMinutes > 0
}
