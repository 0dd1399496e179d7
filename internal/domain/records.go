package domain

import "time"

// Student is one alumnus row from the student dimension. StudentKey is the
// normalized identifier; all distinct-entity counts dedup on it.
type Student struct {
	StudentKey     int64
	ProgramName    string
	GraduationYear int
	CurrentCity    string
	CurrentState   string
}

// EngagementEvent is one denormalized engagement fact row (a touchpoint).
// Numeric fields are normalized at ingestion: absent or malformed source
// values become zero, never an error.
type EngagementEvent struct {
	StudentKey      int64
	EmployerKey     int64
	EventKey        int64
	EventDateKey    int64
	MentorshipHours float64
	Hired           bool
	JobOffers       int
	Applications    int
	FeedbackScore   float64
}

// Employer is one row from the employer dimension.
type Employer struct {
	EmployerKey    int64
	EmployerName   string
	Industry       string
	HQCity         string
	HQState        string
	EmployerRating float64
}

// EmploymentRecord links an alumnus to an employer with a verification state.
type EmploymentRecord struct {
	StudentKey  int64
	EmployerKey int64
	Status      EmploymentStatus
	StartDate   time.Time
}

// EmployerFeedback is one feedback row left by an employer about an alumnus.
type EmployerFeedback struct {
	EmployerKey int64
	StudentKey  int64
	Score       float64
	Comment     string
}

// Event is one row from the event dimension.
type Event struct {
	EventKey  int64
	EventName string
	EventType string
	DateKey   int64
}

// DateDim is one row of the date dimension; engagement facts join to it by
// EventDateKey for calendar bucketing.
type DateDim struct {
	DateKey int64
	Date    time.Time
}

// Dataset is the immutable-once-loaded bundle of warehouse collections shared
// read-only by every metric computation in a session.
type Dataset struct {
	Students          []Student
	Engagements       []EngagementEvent
	Employers         []Employer
	EmploymentRecords []EmploymentRecord
	Feedback          []EmployerFeedback
	Events            []Event
	Dates             []DateDim
}
