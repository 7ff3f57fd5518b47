package main

import "time"

// PriorityLevels maps a numeric priority level to its display label.
var PriorityLevels = map[int]string{
	3: "Critical",
	2: "High",
	1: "Medium",
	0: "Low",
}

// Report is an incident report as stored in the report table. The JSON tags
// match the field names used by the reporting front-end and the store, so a
// report round-trips the wire unchanged.
type Report struct {
	ID                int64     `json:"id"`
	ProblemCategory   string    `json:"Problem_Category"`
	ReporterType      string    `json:"Reporter_Type"`
	Location          string    `json:"Location"`
	ClassNo           *int      `json:"class_No,omitempty"` // room number, only for Class and Lab
	ImpactScope       string    `json:"Impact_Scope"`
	OccurrencePattern string    `json:"Occurrence_Pattern"`
	PriorityLevel     int       `json:"priority_level"`
	PriorityText      string    `json:"priority_text"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
}
