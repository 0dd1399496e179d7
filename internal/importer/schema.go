package importer

// The warehouse arrives as a directory of CSV exports, one file per table.
// Dimension files must parse cleanly; the engagement fact file is known-dirty
// (stray text in flag and counter columns) and is stored raw, to be coerced
// once when the dataset is loaded.

// fileSpec names one expected CSV file and the columns it must carry.
type fileSpec struct {
	Name     string
	Required []string
	Optional bool
}

var warehouseFiles = []fileSpec{
	{
		Name:     "students.csv",
		Required: []string{"student_key", "program_name", "graduation_year", "current_city", "current_state"},
	},
	{
		Name:     "employers.csv",
		Required: []string{"employer_key", "employer_name", "industry", "hq_city", "hq_state", "employer_rating"},
	},
	{
		Name:     "events.csv",
		Required: []string{"event_key", "event_name", "event_type", "date_key"},
	},
	{
		Name:     "dates.csv",
		Required: []string{"date_key", "date"},
	},
	{
		Name:     "engagements.csv",
		Required: []string{"student_key", "employer_key", "event_key", "event_date_key", "mentorship_hours", "hired_flag", "job_offers_count", "applications_submitted", "feedback_score"},
	},
	{
		Name:     "employment.csv",
		Required: []string{"student_key", "employer_key", "status", "start_date"},
		Optional: true,
	},
	{
		Name:     "feedback.csv",
		Required: []string{"employer_key", "student_key", "score", "comment"},
		Optional: true,
	},
}

// table maps a CSV row to named columns by header position.
type table struct {
	columns map[string]int
	rows    [][]string
}

func (t *table) get(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
