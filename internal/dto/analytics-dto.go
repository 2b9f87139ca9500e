package dto

import "time"

// Analytics payloads keep the camelCase keys the dashboard frontend
// binds to, unlike the snake_case admin DTOs.

type AnalyticsReport struct {
	Overview         AnalyticsOverview `json:"overview"`
	UserGrowth       []GrowthPoint     `json:"userGrowth"`
	JobStats         JobStats          `json:"jobStats"`
	ApplicationStats ApplicationStats  `json:"applicationStats"`
	TopCompanies     []CompanyRank     `json:"topCompanies"`
	TopCategories    []CategoryRank    `json:"topCategories"`
}

type AnalyticsOverview struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalJobs         int64   `json:"totalJobs"`
	TotalApplications int64   `json:"totalApplications"`
	ActiveJobs        int64   `json:"activeJobs"`
	NewUsersThisWeek  int64   `json:"newUsersThisWeek"`
	NewJobsThisWeek   int64   `json:"newJobsThisWeek"`
	ApplicationRate   float64 `json:"applicationRate"`
	VerifiedCompanies int64   `json:"verifiedCompanies"`
}

// GrowthPoint is one bucket of the user growth series: a month
// abbreviation for the year range, "Jan 02" style otherwise.
type GrowthPoint struct {
	Date  string `json:"date"`
	Users int64  `json:"users"`
}

type JobStats struct {
	ByCategory []NameCount `json:"byCategory"`
	ByType     []TypeCount `json:"byType"`
	ByWorkMode []ModeCount `json:"byWorkMode"`
}

type ApplicationStats struct {
	ByStatus        []StatusCount `json:"byStatus"`
	AvgResponseTime float64       `json:"avgResponseTime"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type TypeCount struct {
	Type  string `gorm:"column:type" json:"type"`
	Count int64  `json:"count"`
}

type ModeCount struct {
	Mode  string `gorm:"column:mode" json:"mode"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CompanyRank struct {
	Name         string `json:"name"`
	JobsPosted   int64  `gorm:"column:jobs_posted" json:"jobsPosted"`
	Applications int64  `json:"applications"`
}

type CategoryRank struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	JobCount int64  `gorm:"column:job_count" json:"jobCount"`
}

// ReviewWindow carries the two timestamps needed for the average
// response time calculation; only applications with both set qualify.
type ReviewWindow struct {
	AppliedAt  time.Time
	ReviewedAt time.Time
}
