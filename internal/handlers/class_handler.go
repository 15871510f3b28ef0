package handlers

import (
	"github.com/arzan03/musicland/internal/apperr"
	"github.com/arzan03/musicland/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ClassHandler serves the class routes.
type ClassHandler struct {
	deps Deps
}

func (h *ClassHandler) list(c *fiber.Ctx, filter models.ClassFilter) error {
	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	classes, err := h.deps.Classes.List(ctx, filter)
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

// ListClasses lists every class, optionally narrowed by ?status= and ?email=.
func (h *ClassHandler) ListClasses(c *fiber.Ctx) error {
	filter := models.ClassFilter{Status: c.Query("status"), InstructorEmail: c.Query("email")}
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return apperr.ErrBadRequest.WithDetails("status must be one of pending, approved, denied")
	}
	return h.list(c, filter)
}

// ListApproved returns the approved classes.
func (h *ClassHandler) ListApproved(c *fiber.Ctx) error {
	return h.list(c, models.ClassFilter{Status: models.StatusApproved})
}

// ListByInstructor returns the classes of the instructor in ?email=.
func (h *ClassHandler) ListByInstructor(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]models.Class{})
	}
	return h.list(c, models.ClassFilter{InstructorEmail: email})
}

// AddClass stores a class submission.
func (h *ClassHandler) AddClass(c *fiber.Ctx) error {
	var class models.Class
	if err := bind(c, &class); err != nil {
		return err
	}
	class.ID = primitive.NilObjectID

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	res, err := h.deps.Classes.Create(ctx, &class)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

type feedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// SetFeedback stores admin feedback on the class :id.
func (h *ClassHandler) SetFeedback(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req feedbackRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	res, err := h.deps.Classes.SetFeedback(ctx, id, req.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// SetStatus moves the class to status whatever its current state.
func (h *ClassHandler) SetStatus(status string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}

		ctx, cancel := opContext(c, h.deps.Timeout)
		defer cancel()

		res, err := h.deps.Classes.SetStatus(ctx, id, status)
		if err != nil {
			return err
		}
		h.deps.Log.Info("Class status changed", zap.String("class_id", id.Hex()), zap.String("status", status))
		return c.JSON(res)
	}
}

func (h *ClassHandler) bindUpdate(c *fiber.Ctx) (models.ClassUpdate, error) {
	var u models.ClassUpdate
	if err := bind(c, &u); err != nil {
		return u, err
	}
	if len(u.SetDoc()) == 0 {
		return u, apperr.ErrBadRequest.WithDetails("no updatable fields in request body")
	}
	return u, nil
}

// UpsertClass merges the typed partial document onto the class, creating it
// when no class has the id.
func (h *ClassHandler) UpsertClass(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	u, err := h.bindUpdate(c)
	if err != nil {
		return err
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	res, err := h.deps.Classes.Upsert(ctx, id, u)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// UpdateClass merges the typed partial document onto an existing class.
func (h *ClassHandler) UpdateClass(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	u, err := h.bindUpdate(c)
	if err != nil {
		return err
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	res, err := h.deps.Classes.Update(ctx, id, u)
	if err != nil {
		return err
	}
	if res.Outcome == models.OutcomeNotFound {
		return c.Status(fiber.StatusNotFound).JSON(res)
	}
	return c.JSON(res)
}

type imageResponse struct {
	Image string `json:"image"`
	models.UpdateResult
}

// UploadImage stores the multipart "image" file and points the class at it.
// Nothing is uploaded for an unknown class.
func (h *ClassHandler) UploadImage(c *fiber.Ctx) error {
	if h.deps.Images == nil {
		return apperr.ErrUnavailable.WithDetails("image storage is not configured")
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return apperr.ErrBadRequest.WithDetails("missing image file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperr.ErrBadRequest.WithDetails("failed to open image file")
	}
	defer file.Close()

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	class, err := h.deps.Classes.Get(ctx, id)
	if err != nil {
		return err
	}
	if class == nil {
		return apperr.ErrNotFound.WithDetails("class not found")
	}

	url, err := h.deps.Images.UploadClassImage(ctx, id, fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType), file, fileHeader.Size)
	if err != nil {
		return err
	}

	res, err := h.deps.Classes.SetImage(ctx, id, url)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound.WithDetails("class not found")
	}
	return c.JSON(imageResponse{Image: url, UpdateResult: res})
}
