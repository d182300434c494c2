package responses

// ScheduleFeed is the raw dataset served by the schedule provider.
type ScheduleFeed struct {
	Days      []FeedDay      `json:"days" validate:"required,dive"`
	Timeslots []FeedTimeSlot `json:"timeslots" validate:"omitempty,dive"`
}

// Identifier fields carry no required tag: zero is a legal id, and a
// timeslot referencing an absent day is rejected during assembly instead.
type FeedDay struct {
	ID    int    `json:"id"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

type FeedTimeSlot struct {
	ID    int    `json:"id"`
	DayID int    `json:"day_id"`
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}
