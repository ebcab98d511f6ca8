package export

import (
	"errors"

	"profile-exporter/core/event"
	"profile-exporter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the profile export.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/events", h.HandleEvent)
	app.Get("/notifications", h.HandleNotifications)

	group := app.Group("/profiles")
	group.Get("/", h.HandlePending)
	group.Get("/:identity", h.HandleGetProfile)
	group.Get("/:identity/history", h.HandleHistory)
}

// HandleEvent delivers a captured game event to the exporter.
// @Summary Deliver Event
// @Description Delivers one captured request/response pair. Events without a handler are acknowledged and ignored.
// @Tags export
// @Accept json
// @Produce json
// @Param envelope body event.Envelope true "Captured event"
// @Success 200 {object} event.Result "Handled"
// @Success 202 {object} event.Result "Ignored"
// @Failure 400 {object} map[string]string "Malformed event"
// @Router /events [post]
func (h *Handler) HandleEvent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var env event.Envelope
	if err := c.BodyParser(&env); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if env.Command == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "command is required"})
	}

	res, err := h.service.Dispatch(c.Context(), env)
	switch {
	case errors.Is(err, event.ErrUnhandled):
		return c.Status(fiber.StatusAccepted).JSON(res)
	case err != nil:
		l.Warn("Event rejected", zap.String("command", string(env.Command)), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Debug("Event handled",
		zap.String("command", string(res.Command)),
		zap.String("status", res.Status),
		zap.String("wizard_id", res.Identity),
	)
	return c.JSON(res)
}

// HandlePending reports how many profiles wait for their storage list.
// @Summary Pending Profiles
// @Description Number of login profiles held until their storage list arrives.
// @Tags export
// @Produce json
// @Success 200 {object} map[string]int "Pending count"
// @Router /profiles [get]
func (h *Handler) HandlePending(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"pending": h.service.Pending()})
}

// HandleGetProfile returns the profile currently held for a player.
// @Summary Get Held Profile
// @Description Returns the accumulated profile of a player that has not been released yet.
// @Tags export
// @Produce json
// @Param identity path string true "Wizard ID"
// @Success 200 {object} map[string]interface{} "Profile"
// @Failure 404 {object} map[string]string "Not held"
// @Router /profiles/{identity} [get]
func (h *Handler) HandleGetProfile(c *fiber.Ctx) error {
	identity := c.Params("identity")
	p, ok := h.service.Profile(identity)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no profile held for " + identity})
	}

	data, err := p.MarshalJSON()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// HandleHistory lists the saved files of a player.
// @Summary Export History
// @Description Lists the indexed exports of a player, newest first.
// @Tags export
// @Produce json
// @Param identity path string true "Wizard ID"
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} models.ExportRecord "History"
// @Failure 404 {object} map[string]string "Index disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /profiles/{identity}/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.History(c.Context(), c.Params("identity"), c.QueryInt("limit", 50))
	if errors.Is(err, ErrIndexDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("History lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}

// HandleNotifications returns the recent export notifications.
// @Summary Notifications
// @Description Recent success and error messages of the exporter, oldest first.
// @Tags export
// @Produce json
// @Success 200 {array} notify.Event "Notifications"
// @Router /notifications [get]
func (h *Handler) HandleNotifications(c *fiber.Ctx) error {
	return c.JSON(h.service.Notifications())
}
