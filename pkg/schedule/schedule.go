// Package schedule turns surgery templates into dated clinical stages and
// outpatient follow-up plans, and maps calendar days onto PROM timepoints.
package schedule

import (
	"math"
	"time"

	"github.com/spinetrack/platform/pkg/common/models"
	"github.com/spinetrack/platform/pkg/surgery"
)

const dateLayout = "2006-01-02"

// Timepoint is the PROM collection bucket a submission is filed under.
type Timepoint string

const (
	TimepointPreOp     Timepoint = "pre"
	TimepointOneMonth  Timepoint = "1mo"
	TimepointThreeMo   Timepoint = "3mo"
	TimepointSixMonths Timepoint = "6mo"
	TimepointOneYear   Timepoint = "1y"
)

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays returns the calendar date d days after t, formatted as YYYY-MM-DD.
func AddDays(t time.Time, d int) string {
	return midnight(t).AddDate(0, 0, d).Format(dateLayout)
}

// StageStatus classifies a dated stage relative to today. A one-day window on
// either side counts as current so patients preparing for or just past a
// checkpoint still see it highlighted.
func StageStatus(stageDate, today time.Time) models.StageStatus {
	// Rounded so a DST transition between the two dates cannot skew the window.
	diff := int(math.Round(midnight(stageDate).Sub(midnight(today)).Hours() / 24))
	switch {
	case diff < -1:
		return models.StatusCompleted
	case diff <= 1:
		return models.StatusCurrent
	default:
		return models.StatusUpcoming
	}
}

// BuildStages resolves a template's relative stage offsets against the
// surgery date. A zero surgery date yields undated stages all marked
// upcoming, so pre-surgical patients still see the full plan.
func BuildStages(tmpl surgery.Template, surgeryDate, today time.Time) []models.ClinicalStage {
	stages := make([]models.ClinicalStage, 0, len(tmpl.Stages))
	for _, ts := range tmpl.Stages {
		stage := models.ClinicalStage{
			ID:           ts.ID,
			Title:        ts.Title,
			Phase:        ts.Phase,
			Status:       models.StatusUpcoming,
			Instructions: ts.Instructions,
			Warnings:     ts.Warnings,
			Dos:          ts.Dos,
			Donts:        ts.Donts,
			Faq:          ts.Faq,
		}
		if !surgeryDate.IsZero() && ts.DateOffset != nil {
			stage.Date = AddDays(surgeryDate, *ts.DateOffset)
			stageDate := midnight(surgeryDate).AddDate(0, 0, *ts.DateOffset)
			stage.Status = StageStatus(stageDate, today)
		}
		stages = append(stages, stage)
	}
	return stages
}

// BuildFollowUps expands the standard outpatient offsets into dated visits.
// When the hospital has already booked the first outpatient visit, its
// recorded date replaces the computed first entry.
func BuildFollowUps(offsets []surgery.FollowUpOffset, surgeryDate time.Time, firstVisit string) []models.FollowUp {
	if surgeryDate.IsZero() {
		return nil
	}
	fus := make([]models.FollowUp, 0, len(offsets))
	for i, off := range offsets {
		date := AddDays(surgeryDate, off.DaysAfterSurgery)
		if i == 0 && firstVisit != "" {
			date = firstVisit
		}
		fus = append(fus, models.FollowUp{Label: off.Label, Date: date})
	}
	return fus
}

// Bucket files a submission day count into its PROM timepoint. Boundaries
// are deliberately wide so late questionnaires still land in the nearest
// clinical window.
func Bucket(daysSinceOp int) Timepoint {
	switch {
	case daysSinceOp < 7:
		return TimepointPreOp
	case daysSinceOp < 28:
		return TimepointOneMonth
	case daysSinceOp < 120:
		return TimepointThreeMo
	case daysSinceOp < 270:
		return TimepointSixMonths
	default:
		return TimepointOneYear
	}
}
