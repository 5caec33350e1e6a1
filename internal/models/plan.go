package models

import (
	"fmt"
	"strings"
)

// StudyPlanDays is the fixed length of every generated study plan.
const StudyPlanDays = 7

// StudyPlanDay is one day of a study plan.
type StudyPlanDay struct {
	Day        int    `json:"day"`
	Title      string `json:"title"`
	Scripture  string `json:"scripture"`
	Focus      string `json:"focus"`
	ActionStep string `json:"actionStep"`
}

// StudyPlan is a generated multi-day study outline. Plans are returned to the
// caller and never persisted.
type StudyPlan struct {
	Topic    string         `json:"topic"`
	Overview string         `json:"overview"`
	Days     []StudyPlanDay `json:"days"`
}

// Validate checks that the plan has exactly the expected number of days and
// that every day carries all its fields.
func (p StudyPlan) Validate() error {
	if strings.TrimSpace(p.Topic) == "" {
		return fmt.Errorf("plan has no topic")
	}
	if len(p.Days) != StudyPlanDays {
		return fmt.Errorf("plan has %d days, want %d", len(p.Days), StudyPlanDays)
	}
	for i, d := range p.Days {
		if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Scripture) == "" ||
			strings.TrimSpace(d.Focus) == "" || strings.TrimSpace(d.ActionStep) == "" {
			return fmt.Errorf("day %d is incomplete", i+1)
		}
	}
	return nil
}
