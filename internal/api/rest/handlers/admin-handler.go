package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/CampusLancer/admin_service/internal/api/rest/middleware"
	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/dto"
	"github.com/CampusLancer/admin_service/internal/helper/utils"
	"github.com/CampusLancer/admin_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	svc       services.AdminService
	analytics services.AnalyticsService
}

func NewAdminHandler(svc services.AdminService, analytics services.AnalyticsService) *AdminHandler {
	return &AdminHandler{svc: svc, analytics: analytics}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.AdminOnly(h.svc))

	// Dashboard & Analytics
	admin.Get("/stats", h.Stats)
	admin.Get("/analytics", h.Analytics)

	// User Management
	admin.Get("/users", h.ListUsers)
	admin.Get("/users/:id", h.GetUser)
	admin.Put("/users/:id/toggle-status", h.ToggleUserStatus)
	admin.Delete("/users/:id", h.DeleteUser)

	// Verification Management
	admin.Get("/pending-verifications", h.PendingVerifications)
	admin.Put("/students/:id/verify", h.VerifyStudent)
	admin.Put("/companies/:id/verify", h.VerifyCompany)

	// Job Moderation
	admin.Get("/jobs", h.ListJobs)
	admin.Get("/jobs/pending", h.PendingJobs)
	admin.Put("/jobs/:id/moderate", h.ModerateJob)
	admin.Put("/jobs/:id/toggle-featured", h.ToggleFeatured)
	admin.Put("/jobs/:id/toggle-urgent", h.ToggleUrgent)

	// Reports Management
	admin.Get("/reports", h.ListReports)
	admin.Put("/reports/:id/handle", h.HandleReport)
}

func (h *AdminHandler) Stats(ctx *fiber.Ctx) error {
	stats, err := h.svc.GetStats()
	if err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, stats)
}

func (h *AdminHandler) Analytics(ctx *fiber.Ctx) error {
	report, err := h.analytics.ComputeAnalytics(ctx.Query("range", services.RangeWeek))
	if err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, report)
}

func (h *AdminHandler) ListUsers(ctx *fiber.Ctx) error {
	filter := dto.UserListFilter{
		Role:   ctx.Query("role"),
		Search: ctx.Query("search"),
		Page:   ctx.QueryInt("page", 1),
	}
	if raw := ctx.Query("is_verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "is_verified must be a boolean")
		}
		filter.IsVerified = &verified
	}

	result, err := h.svc.ListUsers(filter)
	if err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *AdminHandler) GetUser(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	user, err := h.svc.GetUser(id)
	if err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *AdminHandler) ToggleUserStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	active, err := h.svc.ToggleUserStatus(id)
	if err != nil {
		return respondErr(ctx, err)
	}
	msg := "User deactivated"
	if active {
		msg = "User activated"
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": msg,
		"data":    fiber.Map{"is_active": active},
	})
}

func (h *AdminHandler) DeleteUser(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.svc.DeleteUser(id); err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK, "User deleted successfully")
}

func (h *AdminHandler) PendingVerifications(ctx *fiber.Ctx) error {
	pending, err := h.svc.PendingVerifications()
	if err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, pending)
}

func (h *AdminHandler) VerifyStudent(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.VerifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	if err := h.svc.VerifyStudent(id, req.Status); err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK,
		fmt.Sprintf("Student %s successfully", req.Status))
}

func (h *AdminHandler) VerifyCompany(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.VerifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	if err := h.svc.VerifyCompany(id, req.Status); err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK,
		fmt.Sprintf("Company %s successfully", req.Status))
}

func (h *AdminHandler) ListJobs(ctx *fiber.Ctx) error {
	filter := dto.JobListFilter{
		Status: ctx.Query("status"),
		Page:   ctx.QueryInt("page", 1),
	}

	result, err := h.svc.ListJobs(filter)
	if err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *AdminHandler) PendingJobs(ctx *fiber.Ctx) error {
	jobs, err := h.svc.PendingJobs()
	if err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, jobs)
}

func (h *AdminHandler) ModerateJob(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.ModerateJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	if err := h.svc.ModerateJob(id, req.Status, req.AdminNotes); err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK,
		fmt.Sprintf("Job %s successfully", req.Status))
}

func (h *AdminHandler) ToggleFeatured(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	featured, err := h.svc.ToggleFeatured(id)
	if err != nil {
		return respondErr(ctx, err)
	}
	msg := "Job unfeatured"
	if featured {
		msg = "Job featured"
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": msg,
		"data":    fiber.Map{"is_featured": featured},
	})
}

func (h *AdminHandler) ToggleUrgent(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	urgent, err := h.svc.ToggleUrgent(id)
	if err != nil {
		return respondErr(ctx, err)
	}
	msg := "Job unmarked as urgent"
	if urgent {
		msg = "Job marked as urgent"
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": msg,
		"data":    fiber.Map{"is_urgent": urgent},
	})
}

func (h *AdminHandler) ListReports(ctx *fiber.Ctx) error {
	filter := dto.ReportListFilter{
		Status: ctx.Query("status"),
		Page:   ctx.QueryInt("page", 1),
	}

	result, err := h.svc.ListReports(filter)
	if err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *AdminHandler) HandleReport(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.HandleReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	if err := h.svc.HandleReport(id, req.Status, req.AdminNotes); err != nil {
		return respondErr(ctx, err)
	}
	return utils.ResponseMessage(ctx, fiber.StatusOK, "Report updated successfully")
}

func paramID(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func respondErr(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidDecision):
		return utils.ResponseError(ctx, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrAnalytics):
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch analytics")
	default:
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
}
