package services

import (
	"fmt"
	"math"
	"time"

	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"github.com/CampusLancer/admin_service/internal/repository"
	"go.uber.org/zap"
)

const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"

	topN = 5
)

type AnalyticsService interface {
	ComputeAnalytics(rangeStr string) (*dto.AnalyticsReport, error)
}

type analyticsService struct {
	users        repository.UserRepository
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	analytics    repository.AnalyticsRepository

	clock func() time.Time
	log   *zap.Logger
}

func NewAnalyticsService(
	users repository.UserRepository,
	companies repository.CompanyRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	analytics repository.AnalyticsRepository,
	clock func() time.Time,
	log *zap.Logger,
) AnalyticsService {
	if clock == nil {
		clock = time.Now
	}
	return &analyticsService{
		users:        users,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		analytics:    analytics,
		clock:        clock,
		log:          log,
	}
}

// ComputeAnalytics builds the full dashboard report. Any failed query
// fails the report as a whole; no partial data leaves this method.
func (s *analyticsService) ComputeAnalytics(rangeStr string) (*dto.AnalyticsReport, error) {
	switch rangeStr {
	case RangeWeek, RangeMonth, RangeYear:
	default:
		rangeStr = RangeWeek
	}
	now := s.clock()

	overview, err := s.overview(now)
	if err != nil {
		return nil, analyticsErr(err)
	}

	growth, err := s.userGrowth(rangeStr, now)
	if err != nil {
		return nil, analyticsErr(err)
	}

	byCategory, err := s.analytics.JobsByCategory()
	if err != nil {
		return nil, analyticsErr(err)
	}
	byType, err := s.analytics.JobsByType()
	if err != nil {
		return nil, analyticsErr(err)
	}
	byWorkMode, err := s.analytics.JobsByWorkMode()
	if err != nil {
		return nil, analyticsErr(err)
	}

	byStatus, err := s.applications.GroupByStatus()
	if err != nil {
		return nil, analyticsErr(err)
	}
	avgResponse, err := s.avgResponseHours()
	if err != nil {
		return nil, analyticsErr(err)
	}

	topCompanies, err := s.analytics.TopCompanies(topN)
	if err != nil {
		return nil, analyticsErr(err)
	}
	topCategories, err := s.analytics.TopCategories(topN)
	if err != nil {
		return nil, analyticsErr(err)
	}

	return &dto.AnalyticsReport{
		Overview:   *overview,
		UserGrowth: growth,
		JobStats: dto.JobStats{
			ByCategory: byCategory,
			ByType:     byType,
			ByWorkMode: byWorkMode,
		},
		ApplicationStats: dto.ApplicationStats{
			ByStatus:        byStatus,
			AvgResponseTime: avgResponse,
		},
		TopCompanies:  topCompanies,
		TopCategories: topCategories,
	}, nil
}

// overview always uses a 7-day window for the "this week" counters, no
// matter which range the growth series was asked for.
func (s *analyticsService) overview(now time.Time) (*dto.AnalyticsOverview, error) {
	weekAgo := now.AddDate(0, 0, -7)
	o := &dto.AnalyticsOverview{}
	var err error

	if o.TotalUsers, err = s.users.Count(); err != nil {
		return nil, err
	}
	if o.TotalJobs, err = s.jobs.Count(); err != nil {
		return nil, err
	}
	if o.TotalApplications, err = s.applications.Count(); err != nil {
		return nil, err
	}
	if o.ActiveJobs, err = s.jobs.CountByStatus(domain.JobActive); err != nil {
		return nil, err
	}
	if o.NewUsersThisWeek, err = s.users.CountCreatedSince(weekAgo); err != nil {
		return nil, err
	}
	if o.NewJobsThisWeek, err = s.jobs.CountCreatedSince(weekAgo); err != nil {
		return nil, err
	}
	if o.ApplicationRate, err = s.applicationRate(); err != nil {
		return nil, err
	}
	if o.VerifiedCompanies, err = s.companies.CountByVerification(domain.VerifyApproved); err != nil {
		return nil, err
	}
	return o, nil
}

// userGrowth walks buckets backward from now and returns them oldest
// first: 12 calendar months for the year range, otherwise one bucket per
// calendar day.
func (s *analyticsService) userGrowth(rangeStr string, now time.Time) ([]dto.GrowthPoint, error) {
	if rangeStr == RangeYear {
		points := make([]dto.GrowthPoint, 0, 12)
		for i := 11; i >= 0; i-- {
			m := now.AddDate(0, -i, 0)
			start := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, m.Location())
			count, err := s.users.CountCreatedBetween(start, start.AddDate(0, 1, 0))
			if err != nil {
				return nil, err
			}
			points = append(points, dto.GrowthPoint{
				Date:  m.Format("Jan"),
				Users: count,
			})
		}
		return points, nil
	}

	days := 7
	if rangeStr == RangeMonth {
		days = 30
	}
	points := make([]dto.GrowthPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		count, err := s.users.CountCreatedBetween(start, start.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		points = append(points, dto.GrowthPoint{
			Date:  d.Format("Jan 02"),
			Users: count,
		})
	}
	return points, nil
}

func (s *analyticsService) applicationRate() (float64, error) {
	total, err := s.applications.Count()
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	accepted, err := s.applications.CountByStatus(domain.ApplicationAccepted)
	if err != nil {
		return 0, err
	}
	return round1(float64(accepted) / float64(total) * 100), nil
}

// avgResponseHours averages whole hours between application and review.
// Sub-hour remainders are truncated per application before averaging.
func (s *analyticsService) avgResponseHours() (float64, error) {
	windows, err := s.applications.ReviewWindows()
	if err != nil {
		return 0, err
	}
	if len(windows) == 0 {
		return 0, nil
	}

	var totalHours int64
	for _, w := range windows {
		totalHours += int64(w.ReviewedAt.Sub(w.AppliedAt).Hours())
	}
	return round1(float64(totalHours) / float64(len(windows))), nil
}

func analyticsErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrAnalytics, err)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
