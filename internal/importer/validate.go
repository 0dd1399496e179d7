package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var validEmploymentStatuses = map[string]bool{"Verified": true, "Pending": true}

// readTable parses one CSV file into a header-indexed table. A missing
// optional file returns (nil, nil).
func readTable(dir string, spec fileSpec) (*table, []error) {
	path := filepath.Join(dir, spec.Name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && spec.Optional {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("%s: %w", spec.Name, err)}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, []error{fmt.Errorf("%s: parsing: %w", spec.Name, err)}
	}
	if len(records) == 0 {
		return nil, []error{fmt.Errorf("%s: missing header row", spec.Name)}
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var errs []error
	for _, column := range spec.Required {
		if _, ok := columns[column]; !ok {
			errs = append(errs, fmt.Errorf("%s: missing column %q", spec.Name, column))
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &table{columns: columns, rows: records[1:]}, nil
}

// validateDimensions checks that dimension rows parse cleanly. The engagement
// fact file is deliberately exempt; its dirty columns are stored raw.
func validateDimensions(tables map[string]*table) []error {
	var errs []error

	if t := tables["students.csv"]; t != nil {
		for i, row := range t.rows {
			errs = append(errs, requireInt("students.csv", i, "student_key", t.get(row, "student_key"))...)
			errs = append(errs, requireInt("students.csv", i, "graduation_year", t.get(row, "graduation_year"))...)
		}
	}
	if t := tables["employers.csv"]; t != nil {
		for i, row := range t.rows {
			errs = append(errs, requireInt("employers.csv", i, "employer_key", t.get(row, "employer_key"))...)
			if t.get(row, "employer_name") == "" {
				errs = append(errs, fmt.Errorf("employers.csv row %d: employer_name is required", i+1))
			}
		}
	}
	if t := tables["events.csv"]; t != nil {
		for i, row := range t.rows {
			errs = append(errs, requireInt("events.csv", i, "event_key", t.get(row, "event_key"))...)
			errs = append(errs, requireInt("events.csv", i, "date_key", t.get(row, "date_key"))...)
		}
	}
	if t := tables["dates.csv"]; t != nil {
		for i, row := range t.rows {
			errs = append(errs, requireInt("dates.csv", i, "date_key", t.get(row, "date_key"))...)
			errs = append(errs, requireDate("dates.csv", i, "date", t.get(row, "date"))...)
		}
	}
	if t := tables["employment.csv"]; t != nil {
		for i, row := range t.rows {
			errs = append(errs, requireInt("employment.csv", i, "student_key", t.get(row, "student_key"))...)
			errs = append(errs, requireInt("employment.csv", i, "employer_key", t.get(row, "employer_key"))...)
			if status := t.get(row, "status"); !validEmploymentStatuses[status] {
				errs = append(errs, fmt.Errorf("employment.csv row %d: status: invalid value %q", i+1, status))
			}
			errs = append(errs, requireDate("employment.csv", i, "start_date", t.get(row, "start_date"))...)
		}
	}

	return errs
}

func requireInt(file string, row int, column, raw string) []error {
	if _, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err != nil {
		return []error{fmt.Errorf("%s row %d: %s: invalid integer %q", file, row+1, column, raw)}
	}
	return nil
}

func requireDate(file string, row int, column, raw string) []error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(raw)); err != nil {
		return []error{fmt.Errorf("%s row %d: %s: invalid date %q (expected YYYY-MM-DD)", file, row+1, column, raw)}
	}
	return nil
}
