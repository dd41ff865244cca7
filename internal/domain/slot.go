package domain

// Slot is a candidate bookable time interval for one (service, date) query.
// Slots are ephemeral: they are kept exactly as the availability endpoint
// returned them and are fully replaced on every query.
type Slot struct {
	Start string
	End   string
}

// Equal returns true if both slots describe the same interval
func (s Slot) Equal(other Slot) bool {
	return s.Start == other.Start && s.End == other.End
}
