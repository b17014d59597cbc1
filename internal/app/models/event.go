package models

// EventType categorizes a campus event.
type EventType string

const (
	EventHackathon   EventType = "hackathon"
	EventWorkshop    EventType = "workshop"
	EventCompetition EventType = "competition"
	EventCultural    EventType = "cultural"
)

// CampusEvent is a scheduled happening on campus.
type CampusEvent struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Location        string    `json:"location"`
	Image           string    `json:"image"`
	RegisteredCount int       `json:"registeredCount"`
	Type            EventType `json:"type"`
}
