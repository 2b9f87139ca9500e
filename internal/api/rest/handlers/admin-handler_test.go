package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminService struct {
	isAdmin          bool
	verifyStudentErr error
	getUserErr       error
	toggleFeatured   bool
	handledStatus    string
	stats            *dto.PlatformStats
}

func (f *fakeAdminService) GetStats() (*dto.PlatformStats, error) {
	if f.stats != nil {
		return f.stats, nil
	}
	return &dto.PlatformStats{}, nil
}

func (f *fakeAdminService) ListUsers(filter dto.UserListFilter) (*dto.PageResult, error) {
	return &dto.PageResult{Page: filter.Page, PerPage: 20}, nil
}

func (f *fakeAdminService) GetUser(id uint) (*domain.User, error) {
	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	return &domain.User{Name: "admin"}, nil
}

func (f *fakeAdminService) DeleteUser(id uint) error { return nil }

func (f *fakeAdminService) ToggleUserStatus(id uint) (bool, error) { return true, nil }

func (f *fakeAdminService) PendingVerifications() (*dto.PendingVerifications, error) {
	return &dto.PendingVerifications{}, nil
}

func (f *fakeAdminService) VerifyStudent(id uint, decision string) error {
	return f.verifyStudentErr
}

func (f *fakeAdminService) VerifyCompany(id uint, decision string) error { return nil }

func (f *fakeAdminService) ListJobs(filter dto.JobListFilter) (*dto.PageResult, error) {
	return &dto.PageResult{}, nil
}

func (f *fakeAdminService) PendingJobs() ([]domain.Job, error) { return nil, nil }

func (f *fakeAdminService) ModerateJob(id uint, decision string, notes *string) error {
	return nil
}

func (f *fakeAdminService) ToggleFeatured(id uint) (bool, error) {
	return f.toggleFeatured, nil
}

func (f *fakeAdminService) ToggleUrgent(id uint) (bool, error) { return false, nil }

func (f *fakeAdminService) ListReports(filter dto.ReportListFilter) (*dto.PageResult, error) {
	return &dto.PageResult{}, nil
}

func (f *fakeAdminService) HandleReport(id uint, status string, notes *string) error {
	f.handledStatus = status
	return nil
}

func (f *fakeAdminService) IsAdmin(userID uint) (bool, error) { return f.isAdmin, nil }

type fakeAnalyticsService struct {
	err error
}

func (f *fakeAnalyticsService) ComputeAnalytics(rangeStr string) (*dto.AnalyticsReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AnalyticsReport{}, nil
}

func newTestApp(svc *fakeAdminService, analytics *fakeAnalyticsService) *fiber.App {
	app := fiber.New()
	// stands in for the JWT middleware
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", uint(1))
		return ctx.Next()
	})
	NewAdminHandler(svc, analytics).SetupRoutes(app)
	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestStats_OK(t *testing.T) {
	svc := &fakeAdminService{isAdmin: true, stats: &dto.PlatformStats{TotalUsers: 42}}
	app := newTestApp(svc, &fakeAnalyticsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/stats", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(42), data["total_users"])
}

func TestNonAdminIsForbidden(t *testing.T) {
	app := newTestApp(&fakeAdminService{isAdmin: false}, &fakeAnalyticsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/stats", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestVerifyStudent_InvalidDecisionIs422(t *testing.T) {
	svc := &fakeAdminService{isAdmin: true, verifyStudentErr: domain.ErrInvalidDecision}
	app := newTestApp(svc, &fakeAnalyticsService{})

	req := httptest.NewRequest("PUT", "/api/admin/students/5/verify",
		strings.NewReader(`{"status":"maybe"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
}

func TestGetUser_NotFoundIs404(t *testing.T) {
	svc := &fakeAdminService{isAdmin: true, getUserErr: domain.ErrNotFound}
	app := newTestApp(svc, &fakeAnalyticsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/users/99", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetUser_BadIDIs400(t *testing.T) {
	app := newTestApp(&fakeAdminService{isAdmin: true}, &fakeAnalyticsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/users/abc", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestToggleFeatured_ReportsNewState(t *testing.T) {
	svc := &fakeAdminService{isAdmin: true, toggleFeatured: true}
	app := newTestApp(svc, &fakeAnalyticsService{})

	resp, err := app.Test(httptest.NewRequest("PUT", "/api/admin/jobs/3/toggle-featured", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Job featured", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["is_featured"])
}

func TestHandleReport_PassesStatusThrough(t *testing.T) {
	svc := &fakeAdminService{isAdmin: true}
	app := newTestApp(svc, &fakeAnalyticsService{})

	req := httptest.NewRequest("PUT", "/api/admin/reports/8/handle",
		strings.NewReader(`{"status":"resolved","admin_notes":"duplicate account"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.ReportResolved, svc.handledStatus)
}

func TestAnalytics_FailureIs500(t *testing.T) {
	analytics := &fakeAnalyticsService{err: domain.ErrAnalytics}
	app := newTestApp(&fakeAdminService{isAdmin: true}, analytics)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/analytics?range=week", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
