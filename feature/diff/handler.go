package diff

import (
	"errors"

	"ics-diff/core/logger"
	"ics-diff/core/report"
	"ics-diff/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for diffs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the diff routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/diff")
	group.Post("/", h.HandleDiff)
	group.Get("/reports", h.HandleListReports)
	group.Get("/reports/:id", h.HandleGetReport)
}

// HandleDiff compares two calendars.
// @Summary Diff Calendars
// @Description Compare two iCalendar documents given inline or as source references (s3://bucket/key, git:rev:path).
// @Tags diff
// @Accept json
// @Produce json,plain
// @Param request body Request true "Calendars to compare"
// @Param format query string false "Response format (json, text)"
// @Success 200 {object} Result "Differences"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /diff [post]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	res, err := h.service.Diff(c.UserContext(), req)
	if err != nil {
		return h.fail(c, l, "Diff failed", err)
	}

	l.Info("Diff completed",
		zap.Int("pairs", res.Stats.Pairs),
		zap.String("report_id", res.ReportID),
	)

	if c.Query("format") == "text" {
		text, err := report.TextString(res.Pairs, false)
		if err != nil {
			return h.fail(c, l, "Render failed", err)
		}
		if res.ReportID != "" {
			c.Set("X-Report-ID", res.ReportID)
		}
		c.Type("txt", "utf-8")
		return c.SendString(text)
	}

	return c.JSON(res)
}

// HandleListReports lists stored reports.
// @Summary List Reports
// @Description List stored diff reports, newest first.
// @Tags diff
// @Produce json
// @Param limit query int false "Maximum number of reports" default(20)
// @Success 200 {array} report.Record "Reports"
// @Failure 503 {object} map[string]string "History disabled"
// @Router /diff/reports [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.Reports(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		return h.fail(c, l, "List reports failed", err)
	}
	if records == nil {
		records = []report.Record{}
	}
	return c.JSON(records)
}

// HandleGetReport returns one stored report.
// @Summary Get Report
// @Description Get a stored diff report with its differences.
// @Tags diff
// @Produce json,plain
// @Param id path string true "Report ID"
// @Param format query string false "Response format (json, text)"
// @Success 200 {object} StoredReport "Report"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "History disabled"
// @Router /diff/reports/{id} [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stored, err := h.service.Report(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, l, "Get report failed", err)
	}

	if c.Query("format") == "text" {
		text, err := report.TextString(stored.Pairs, false)
		if err != nil {
			return h.fail(c, l, "Render failed", err)
		}
		c.Type("txt", "utf-8")
		return c.SendString(text)
	}

	return c.JSON(stored)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, source.ErrUnsupportedRef):
		return fiber.StatusBadRequest
	case errors.Is(err, report.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrHistoryDisabled), errors.Is(err, source.ErrBackendUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
