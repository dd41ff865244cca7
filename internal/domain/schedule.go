package domain

// WindowNote classifies a schedule window
type WindowNote string

const (
	NoteWorkingHours WindowNote = "working hours"
	NoteBreak        WindowNote = "break"
)

// IsValid returns true for a known window note
func (n WindowNote) IsValid() bool {
	return n == NoteWorkingHours || n == NoteBreak
}

// ScheduleWindow is an operator-declared interval on a given date.
// In a draft both times may still be empty.
type ScheduleWindow struct {
	Start string
	End   string
	Note  WindowNote
}

// IsComplete returns true if both start and end are filled in
func (w *ScheduleWindow) IsComplete() bool {
	return w.Start != "" && w.End != ""
}

// BlankScheduleWindow returns the initial draft window
func BlankScheduleWindow() ScheduleWindow {
	return ScheduleWindow{Start: "", End: "", Note: NoteWorkingHours}
}
