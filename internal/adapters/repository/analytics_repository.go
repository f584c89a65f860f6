package repository

import (
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

// AnalyticsRepository handles the visit-counter singleton. Counters
// only ever grow; there is no dedup or bot filtering, so the public
// increment endpoints count replays too.
type AnalyticsRepository struct {
	store *storage.Store
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(store *storage.Store) *AnalyticsRepository {
	return &AnalyticsRepository{store: store}
}

func (r *AnalyticsRepository) defaultAnalytics() entities.Analytics {
	return entities.Analytics{
		DailyVisitors:   []entities.DailyCount{},
		WeeklyVisitors:  []entities.WeeklyCount{},
		MonthlyVisitors: []entities.MonthlyCount{},
		PageViews:       []entities.PageView{},
		LastUpdated:     NowISO(),
	}
}

func (r *AnalyticsRepository) Get() entities.Analytics {
	return storage.Read(r.store, "analytics.json", r.defaultAnalytics())
}

func (r *AnalyticsRepository) Save(analytics entities.Analytics) error {
	return storage.Write(r.store, "analytics.json", analytics)
}

// IncrementVisitor bumps the total and today's daily entry, creating
// today's row on first visit of the day.
func (r *AnalyticsRepository) IncrementVisitor() error {
	analytics := r.Get()
	analytics.TotalVisitors++

	today := Today()
	found := false
	for i := range analytics.DailyVisitors {
		if analytics.DailyVisitors[i].Date == today {
			analytics.DailyVisitors[i].Count++
			found = true
			break
		}
	}
	if !found {
		analytics.DailyVisitors = append(analytics.DailyVisitors, entities.DailyCount{Date: today, Count: 1})
	}

	analytics.LastUpdated = NowISO()
	return r.Save(analytics)
}

// TrackPageView bumps the view counter for page, creating it on first
// view.
func (r *AnalyticsRepository) TrackPageView(page string) error {
	analytics := r.Get()

	found := false
	for i := range analytics.PageViews {
		if analytics.PageViews[i].Page == page {
			analytics.PageViews[i].Views++
			found = true
			break
		}
	}
	if !found {
		analytics.PageViews = append(analytics.PageViews, entities.PageView{Page: page, Views: 1})
	}

	analytics.LastUpdated = NowISO()
	return r.Save(analytics)
}
