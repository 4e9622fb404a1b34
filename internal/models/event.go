package models

// Event lifecycle statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// ValidEventStatuses defines the known event statuses.
var ValidEventStatuses = map[string]bool{
	EventStatusUpcoming:  true,
	EventStatusCompleted: true,
	EventStatusCancelled: true,
}

// Event represents a studio event record
type Event struct {
	ID          int      `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Slug        string   `json:"slug" db:"slug"`
	Date        string   `json:"date" db:"date"`
	Time        *string  `json:"time" db:"start_time"`
	EndTime     *string  `json:"endTime" db:"end_time"`
	Location    *string  `json:"location" db:"location"`
	Address     *string  `json:"address" db:"address"`
	Type        *string  `json:"type" db:"type"`
	Capacity    *int     `json:"capacity" db:"capacity"`
	Registered  int      `json:"registered" db:"registered"`
	Price       *float64 `json:"price" db:"price"`
	Status      string   `json:"status" db:"status"`
	Featured    bool     `json:"featured" db:"featured"`
	Description *string  `json:"description" db:"description"`
	Image       *string  `json:"image" db:"image"`
	Instructors []string `json:"instructors" db:"instructors"`
	Tags        []string `json:"tags" db:"tags"`
}

// EventInput carries the client-editable fields of an event.
// The registered counter is owned by external registration flows.
type EventInput struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	EndTime     string   `json:"endTime"`
	Location    string   `json:"location"`
	Address     string   `json:"address"`
	Type        string   `json:"type"`
	Capacity    OptInt   `json:"capacity"`
	Price       OptFloat `json:"price"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Instructors StringList `json:"instructors"`
	Tags        StringList `json:"tags"`
}
