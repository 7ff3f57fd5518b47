package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		problem_category   TEXT NOT NULL,
		reporter_type      TEXT NOT NULL DEFAULT '',
		location           TEXT NOT NULL DEFAULT '',
		class_no           INTEGER,
		impact_scope       TEXT NOT NULL DEFAULT '',
		occurrence_pattern TEXT NOT NULL DEFAULT '',
		priority_level     INTEGER NOT NULL DEFAULT 0,
		priority_text      TEXT NOT NULL DEFAULT '',
		created_at         DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_reports_priority ON reports(priority_level);
	CREATE INDEX IF NOT EXISTS idx_reports_category ON reports(problem_category);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// ReportStore is the table-backed report service: the trainer reads from
// it, the bulk updater reads and annotates, the HTTP surface inserts.
type ReportStore interface {
	ListReports() ([]Report, error)
	InsertReport(r Report) (int64, error)
	UpdateReportPriority(id int64, level int, text string) error
	CountReports() (int, error)
}

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListReports() ([]Report, error) {
	rows, err := s.db.Query(
		`SELECT id, problem_category, reporter_type, location, class_no,
		        impact_scope, occurrence_pattern, priority_level, priority_text, created_at
		 FROM reports ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var r Report
		var classNo sql.NullInt64
		err := rows.Scan(
			&r.ID, &r.ProblemCategory, &r.ReporterType, &r.Location, &classNo,
			&r.ImpactScope, &r.OccurrencePattern, &r.PriorityLevel, &r.PriorityText,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if classNo.Valid {
			no := int(classNo.Int64)
			r.ClassNo = &no
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *SQLiteStore) InsertReport(r Report) (int64, error) {
	var classNo sql.NullInt64
	if r.ClassNo != nil {
		classNo = sql.NullInt64{Int64: int64(*r.ClassNo), Valid: true}
	}
	res, err := s.db.Exec(
		`INSERT INTO reports (problem_category, reporter_type, location, class_no,
		                      impact_scope, occurrence_pattern, priority_level, priority_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ProblemCategory, r.ReporterType, r.Location, classNo,
		r.ImpactScope, r.OccurrencePattern, r.PriorityLevel, r.PriorityText,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) UpdateReportPriority(id int64, level int, text string) error {
	_, err := s.db.Exec(
		`UPDATE reports SET priority_level = ?, priority_text = ? WHERE id = ?`,
		level, text, id,
	)
	return err
}

func (s *SQLiteStore) CountReports() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM reports`).Scan(&count)
	return count, err
}
