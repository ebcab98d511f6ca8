package integrity

import (
	"errors"

	"profile-exporter/core/logger"
	"profile-exporter/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Referenced by the swagger annotations only.
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/local", h.HandleLocalCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck runs every check that applies to the configuration.
// @Summary Run All Integrity Checks
// @Description Checks the local export folder, the bucket folders and the export index schema, depending on what is configured.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if h.service.UsesFiles() {
		if local, err := h.service.CheckLocal(); err != nil {
			report["local"] = fiber.Map{"status": "error", "error": err.Error()}
		} else {
			report["local"] = local
		}
	}

	if h.service.UsesStorage() {
		if missing, err := h.service.CheckStructure(c.Context()); err != nil {
			report["structure"] = fiber.Map{"status": "error", "error": err.Error()}
		} else {
			report["structure"] = fiber.Map{"status": "ok", "missing": missing}
		}
	}

	if schema, err := h.service.CheckSchema(); errors.Is(err, ErrDatabaseDisabled) {
		report["schema"] = fiber.Map{"status": "skipped"}
	} else if err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the bucket folders.
// @Summary Check Bucket Structure
// @Description Checks that the export folders exist in the storage bucket. Optionally creates missing folders.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 404 {object} map[string]string "Storage not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleLocalCheck checks and optionally fixes the local export folder.
// @Summary Check Local Exports
// @Description Checks that the export folders exist and that every saved file is a valid profile. Optionally creates missing folders.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing folders"
// @Success 200 {object} checks.LocalReport "Local Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/local [get]
func (h *Handler) HandleLocalCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckLocal()
	if err != nil {
		l.Error("Local check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if fix && len(report.MissingFolders) > 0 {
		l.Info("Creating missing export folders", zap.Strings("missing", report.MissingFolders))
		if err := h.service.FixLocal(report.MissingFolders); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create folders",
				"details": err.Error(),
			})
		}
		if report, err = h.service.CheckLocal(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks and optionally migrates the export index schema.
// @Summary Check Index Schema
// @Description Checks that the export index tables match their models. Optionally migrates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Migrate the tables"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 404 {object} map[string]string "Database not connected"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if c.Query("fix") == "true" {
		if err := h.service.FixSchema(); err != nil && !errors.Is(err, ErrDatabaseDisabled) {
			l.Error("Schema migration failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	report, err := h.service.CheckSchema()
	if errors.Is(err, ErrDatabaseDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
