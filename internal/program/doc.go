// Package program models the workout calendar and builds it.
//
// A Program is an ordered list of WeekPlans; each WeekPlan carries exactly
// seven DayEntry texts, Monday through Sunday. BuildBaseWeek returns the
// authored week template and Expand replicates it across the requested number
// of weeks. Weeks are exact copies: there is no load or volume progression.
//
// A Catalog can replace individual days of the template with text loaded from
// a YAML file before expansion. Serialization lives in internal/artifact.
package program
