package services

import (
	"testing"
	"time"

	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type analyticsFixture struct {
	users        *fakeUserRepo
	companies    *fakeCompanyRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	analytics    *fakeAnalyticsRepo
	now          time.Time
}

func newAnalyticsFixture() *analyticsFixture {
	return &analyticsFixture{
		users:        &fakeUserRepo{},
		companies:    &fakeCompanyRepo{},
		jobs:         &fakeJobRepo{},
		applications: &fakeApplicationRepo{},
		analytics:    &fakeAnalyticsRepo{},
		now:          time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC),
	}
}

func (fx *analyticsFixture) service(t *testing.T) AnalyticsService {
	return NewAnalyticsService(
		fx.users,
		fx.companies,
		fx.jobs,
		fx.applications,
		fx.analytics,
		func() time.Time { return fx.now },
		zaptest.NewLogger(t),
	)
}

func TestComputeAnalytics_WeekGrowth(t *testing.T) {
	fx := newAnalyticsFixture()

	// one signup per calendar day, numbered by day of month, so ordering
	// mistakes show up in the counts
	fx.users.countCreatedBetween = func(from, to time.Time) (int64, error) {
		assert.Equal(t, 0, from.Hour(), "buckets must start at midnight")
		assert.Equal(t, from.AddDate(0, 0, 1), to)
		return int64(from.Day()), nil
	}

	report, err := fx.service(t).ComputeAnalytics(RangeWeek)
	require.NoError(t, err)

	require.Len(t, report.UserGrowth, 7)
	assert.Equal(t, dto.GrowthPoint{Date: "Mar 04", Users: 4}, report.UserGrowth[0])
	assert.Equal(t, dto.GrowthPoint{Date: "Mar 10", Users: 10}, report.UserGrowth[6])
}

func TestComputeAnalytics_MonthGrowth(t *testing.T) {
	fx := newAnalyticsFixture()

	report, err := fx.service(t).ComputeAnalytics(RangeMonth)
	require.NoError(t, err)

	require.Len(t, report.UserGrowth, 30)
	assert.Equal(t, "Feb 09", report.UserGrowth[0].Date)
	assert.Equal(t, "Mar 10", report.UserGrowth[29].Date)
}

func TestComputeAnalytics_YearGrowth(t *testing.T) {
	fx := newAnalyticsFixture()

	var starts []time.Time
	fx.users.countCreatedBetween = func(from, to time.Time) (int64, error) {
		starts = append(starts, from)
		assert.Equal(t, 1, from.Day(), "month buckets start on the 1st")
		assert.Equal(t, from.AddDate(0, 1, 0), to)
		return 0, nil
	}

	report, err := fx.service(t).ComputeAnalytics(RangeYear)
	require.NoError(t, err)

	require.Len(t, report.UserGrowth, 12)
	assert.Equal(t, "Apr", report.UserGrowth[0].Date)
	assert.Equal(t, "Mar", report.UserGrowth[11].Date)

	require.Len(t, starts, 12)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), starts[0])
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), starts[11])
}

func TestComputeAnalytics_UnknownRangeFallsBackToWeek(t *testing.T) {
	fx := newAnalyticsFixture()

	report, err := fx.service(t).ComputeAnalytics("quarter")
	require.NoError(t, err)

	assert.Len(t, report.UserGrowth, 7)
}

func TestComputeAnalytics_ApplicationRate(t *testing.T) {
	fx := newAnalyticsFixture()
	fx.applications.count = func() (int64, error) { return 3, nil }
	fx.applications.countByStatus = func(status string) (int64, error) {
		assert.Equal(t, domain.ApplicationAccepted, status)
		return 1, nil
	}

	report, err := fx.service(t).ComputeAnalytics(RangeWeek)
	require.NoError(t, err)

	assert.Equal(t, 33.3, report.Overview.ApplicationRate)
}

func TestComputeAnalytics_ApplicationRateZeroTotal(t *testing.T) {
	fx := newAnalyticsFixture()
	fx.applications.countByStatus = func(status string) (int64, error) {
		t.Fatal("must not divide by zero applications")
		return 0, nil
	}

	report, err := fx.service(t).ComputeAnalytics(RangeWeek)
	require.NoError(t, err)

	assert.Zero(t, report.Overview.ApplicationRate)
}

func TestComputeAnalytics_AvgResponseTruncatesWholeHours(t *testing.T) {
	fx := newAnalyticsFixture()
	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	fx.applications.reviewWindows = func() ([]dto.ReviewWindow, error) {
		return []dto.ReviewWindow{
			{AppliedAt: base, ReviewedAt: base.Add(5 * time.Hour)},
			// 1h30m counts as 1 whole hour
			{AppliedAt: base, ReviewedAt: base.Add(90 * time.Minute)},
		}, nil
	}

	report, err := fx.service(t).ComputeAnalytics(RangeWeek)
	require.NoError(t, err)

	assert.Equal(t, 3.0, report.ApplicationStats.AvgResponseTime)
}

func TestComputeAnalytics_AvgResponseNoReviews(t *testing.T) {
	fx := newAnalyticsFixture()

	report, err := fx.service(t).ComputeAnalytics(RangeWeek)
	require.NoError(t, err)

	assert.Zero(t, report.ApplicationStats.AvgResponseTime)
}

func TestComputeAnalytics_OverviewUsesSevenDayWindow(t *testing.T) {
	fx := newAnalyticsFixture()

	var since []time.Time
	fx.users.countCreatedSince = func(ts time.Time) (int64, error) {
		since = append(since, ts)
		return 8, nil
	}

	report, err := fx.service(t).ComputeAnalytics(RangeYear)
	require.NoError(t, err)

	// the "this week" counters stay on a 7-day window even for the year
	// range
	require.Len(t, since, 1)
	assert.Equal(t, fx.now.AddDate(0, 0, -7), since[0])
	assert.Equal(t, int64(8), report.Overview.NewUsersThisWeek)
}

func TestComputeAnalytics_FailsAsAUnit(t *testing.T) {
	fx := newAnalyticsFixture()
	fx.analytics.jobsByCategory = func() ([]dto.NameCount, error) {
		return nil, assert.AnError
	}

	report, err := fx.service(t).ComputeAnalytics(RangeWeek)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrAnalytics)
}

func TestComputeAnalytics_TopFivePassthrough(t *testing.T) {
	fx := newAnalyticsFixture()
	fx.analytics.topCompanies = func(limit int) ([]dto.CompanyRank, error) {
		assert.Equal(t, 5, limit)
		return []dto.CompanyRank{{Name: "Acme", JobsPosted: 3, Applications: 17}}, nil
	}
	fx.analytics.topCategories = func(limit int) ([]dto.CategoryRank, error) {
		assert.Equal(t, 5, limit)
		return []dto.CategoryRank{{Name: "Web Development", Icon: "code", JobCount: 9}}, nil
	}

	report, err := fx.service(t).ComputeAnalytics(RangeWeek)
	require.NoError(t, err)

	require.Len(t, report.TopCompanies, 1)
	assert.Equal(t, "Acme", report.TopCompanies[0].Name)
	require.Len(t, report.TopCategories, 1)
	assert.Equal(t, int64(9), report.TopCategories[0].JobCount)
}
