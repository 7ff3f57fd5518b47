package main

import (
	"sort"
	"strings"
)

// featureFields fixes the field order of the one-hot encoding. Values are
// sorted within each field, so a fitted schema depends only on the set of
// observed values, not on dataset row order.
var featureFields = []string{
	"Problem_Category",
	"Reporter_Type",
	"Location",
	"Impact_Scope",
	"Occurrence_Pattern",
}

func fieldValue(r Report, field string) string {
	switch field {
	case "Problem_Category":
		return r.ProblemCategory
	case "Reporter_Type":
		return r.ReporterType
	case "Location":
		return r.Location
	case "Impact_Scope":
		return r.ImpactScope
	case "Occurrence_Pattern":
		return r.OccurrencePattern
	}
	return ""
}

// FitSchema one-hot encodes the categorical fields of a training set into an
// ordered list of "<Field>_<Value>" column names. The schema is persisted
// with the model and must be used for all prediction-time encoding.
func FitSchema(reports []Report) []string {
	var schema []string
	for _, field := range featureFields {
		seen := make(map[string]bool)
		for _, r := range reports {
			if v := fieldValue(r, field); v != "" {
				seen[v] = true
			}
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)
		for _, v := range values {
			schema = append(schema, field+"_"+v)
		}
	}
	return schema
}

// Encode aligns a report to a fitted schema: exactly len(schema) entries,
// 1 where the report's field matches the column's value, 0 elsewhere.
// Values unseen at training time have no column and are dropped; schema
// columns the report does not light up stay 0. Unknown values therefore
// never shift column alignment.
func Encode(r Report, schema []string) []float64 {
	vec := make([]float64, len(schema))
	for i, col := range schema {
		for _, field := range featureFields {
			prefix := field + "_"
			if strings.HasPrefix(col, prefix) {
				if fieldValue(r, field) == strings.TrimPrefix(col, prefix) {
					vec[i] = 1
				}
				break
			}
		}
	}
	return vec
}
