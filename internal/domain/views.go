package domain

import "time"

// Profile is the per-user view returned by the profile collaborator for
// self-scope questions. Stats are precomputed by the collaborator, not by
// the metric library.
type Profile struct {
	UserKey         int64
	DisplayName     string
	Headline        string
	City            string
	State           string
	ProgramName     string
	GraduationYear  int
	EngagementCount int
	MentorshipHours float64
}

// Colleague is one entry of the caller's colleague list.
type Colleague struct {
	UserKey     int64
	DisplayName string
	ProgramName string
	CompanyName string
}

// Submission is one functional-action record previously submitted by the
// caller (event application, engagement log, success story, feedback).
type Submission struct {
	ID          string
	Kind        string
	Title       string
	Status      string
	SubmittedAt time.Time
}
