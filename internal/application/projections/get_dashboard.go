package projections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"clubdesk/internal/adapters/storage"
	"clubdesk/internal/domain/absence"
	"clubdesk/internal/domain/category"
	"clubdesk/internal/domain/evaluation"
	"clubdesk/internal/domain/plan"
	"clubdesk/internal/domain/roster"
	"clubdesk/internal/domain/season"
)

// DashboardEvaluationStore defines the evaluation store methods needed by the dashboard.
type DashboardEvaluationStore interface {
	Get(ctx context.Context, clubID string, year season.AcademicYear) (evaluation.Sheet, error)
}

// GetDashboardQuery carries input for the dashboard projection.
type GetDashboardQuery struct {
	ClubID       string
	AcademicYear season.AcademicYear
	Lang         language.Tag
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	PlanStore       PlanViewStore
	EvaluationStore DashboardEvaluationStore
	RegisterStore   RegisterReader
	AthleteStore    AthleteReader
	CategoryIndex   *CategoryIndex // optional: nil computes categories on the fly
}

// DashboardMonth is one season month on the dashboard.
type DashboardMonth struct {
	Month           season.MonthKey `json:"month"`
	PlannedSessions int             `json:"planned_sessions"`
	Executed        int             `json:"executed"`
	Percentage      int             `json:"percentage"`
	WeekSessions    int             `json:"week_sessions"` // sum of the plan's week slots
	Consistent      bool            `json:"consistent"`
}

// CategoryBand is the birth-year range of one age category for the season's
// competition year (the calendar year the season ends in).
type CategoryBand struct {
	Category  category.Label `json:"category"`
	Name      string         `json:"name"`
	BirthFrom int            `json:"birth_from,omitempty"` // 0 for the open-ended oldest band
	BirthTo   int            `json:"birth_to"`
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	ClubID           string                 `json:"club_id"`
	AcademicYear     season.AcademicYear    `json:"academic_year"`
	Months           []DashboardMonth       `json:"months"`
	SeasonPlanned    int                    `json:"season_planned"`
	SeasonExecuted   int                    `json:"season_executed"`
	SeasonPercentage int                    `json:"season_percentage"`
	Athletes         int                    `json:"athletes"`
	Categories       map[category.Label]int `json:"categories"`
	CategoriesAsOf   string                 `json:"categories_as_of,omitempty"` // last index refresh
	CompetitionYear  int                    `json:"competition_year"`
	CategoryBands    []CategoryBand         `json:"category_bands"`
	PlanStored       bool                   `json:"plan_stored"`
	CurrentMonth     string                 `json:"current_month,omitempty"`
	Attendance       *absence.Summary       `json:"attendance,omitempty"`
}

// QueryGetDashboard loads the plan, evaluation, attendance and roster of a club concurrently.
// PRE: query.AcademicYear is valid
// POST: Missing documents count as empty; any other load failure fails the whole projection
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps, now time.Time) (DashboardResult, error) {
	var (
		pv       PlanView
		sheet    evaluation.Sheet
		reg      absence.Register
		athletes []roster.Athlete
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pv, err = QueryGetPlanView(gctx, GetPlanViewQuery{ClubID: query.ClubID, AcademicYear: query.AcademicYear},
			GetPlanViewDeps{PlanStore: deps.PlanStore})
		return err
	})
	g.Go(func() error {
		var err error
		sheet, err = deps.EvaluationStore.Get(gctx, query.ClubID, query.AcademicYear)
		if errors.Is(err, storage.ErrNotFound) {
			sheet, err = evaluation.NewSheet(query.ClubID, query.AcademicYear), nil
		}
		return wrapLoad("evaluation", err)
	})
	g.Go(func() error {
		var err error
		reg, err = deps.RegisterStore.Get(gctx, query.ClubID, query.AcademicYear)
		if errors.Is(err, storage.ErrNotFound) {
			err = nil
		}
		return wrapLoad("register", err)
	})
	g.Go(func() error {
		var err error
		athletes, err = deps.AthleteStore.ListByClub(gctx, query.ClubID)
		return wrapLoad("athletes", err)
	})
	if err := g.Wait(); err != nil {
		return DashboardResult{}, err
	}

	result := DashboardResult{
		ClubID:          query.ClubID,
		AcademicYear:    query.AcademicYear,
		Athletes:        len(athletes),
		CompetitionYear: query.AcademicYear.CalendarYear(time.June),
		PlanStored:      pv.Stored,
	}
	for _, b := range category.DefaultTable {
		from, to := b.BirthYears(result.CompetitionYear)
		result.CategoryBands = append(result.CategoryBands, CategoryBand{
			Category:  b.Label,
			Name:      category.DisplayName(b.Label, query.Lang),
			BirthFrom: from,
			BirthTo:   to,
		})
	}

	planMonths := make(map[season.MonthKey]MonthView, len(pv.Months))
	for _, mv := range pv.Months {
		planMonths[mv.Month] = mv
	}

	records := map[season.MonthKey]evaluation.Record{}
	for _, r := range sheet.Records {
		records[r.Month] = r
	}
	for _, m := range season.Months {
		rec := records[m.Key]
		dm := DashboardMonth{
			Month:           m.Key,
			PlannedSessions: rec.PlannedSessions,
			Executed:        rec.ExecutedSessions,
			Percentage:      plan.Percentage(rec.ExecutedSessions, rec.PlannedSessions),
		}
		if mv, ok := planMonths[m.Key]; ok {
			dm.WeekSessions = mv.PlannedSessions
			dm.Consistent = mv.Consistent
		}
		result.SeasonPlanned += max(0, rec.PlannedSessions)
		result.SeasonExecuted += max(0, rec.ExecutedSessions)
		result.Months = append(result.Months, dm)
	}
	result.SeasonPercentage = plan.Percentage(result.SeasonExecuted, result.SeasonPlanned)

	if deps.CategoryIndex != nil {
		result.Categories = deps.CategoryIndex.Counts(query.ClubID)
		if asOf := deps.CategoryIndex.AsOf(); !asOf.IsZero() {
			result.CategoriesAsOf = asOf.Format("2006-01-02")
		}
	} else {
		result.Categories = map[category.Label]int{}
		for _, a := range athletes {
			if label, ok := a.Category(now); ok {
				result.Categories[label]++
			}
		}
	}

	if season.Current(now) == query.AcademicYear {
		prefix := season.MonthPrefix(now.Year(), now.Month())
		ids := make([]string, len(athletes))
		for i, a := range athletes {
			ids[i] = a.ID
		}
		summary := absence.MonthSummary(reg.Records, ids, prefix, season.DaysInMonth(now.Year(), now.Month()))
		result.CurrentMonth = prefix
		result.Attendance = &summary
	}
	return result, nil
}

func wrapLoad(what string, err error) error {
	if err != nil {
		return fmt.Errorf("load %s: %w", what, err)
	}
	return nil
}
