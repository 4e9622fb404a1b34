package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/models"
)

// resourceService is the uniform controller contract every record kind
// satisfies. T is the stored record, I its write payload.
type resourceService[T any, I any] interface {
	List(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, in *I) (*T, error)
	Get(ctx context.Context, id int) (*T, error)
	Update(ctx context.Context, id int, in *I) (*T, error)
	UpdateStatus(ctx context.Context, id int, status string) (*T, error)
	Delete(ctx context.Context, id int) error
}

// ResourceHandler serves the CRUD protocol for one record kind. The
// protocol is identical across kinds; only the payload types differ.
type ResourceHandler[T any, I any] struct {
	svc resourceService[T, I]
	log zerolog.Logger
}

// NewResourceHandler creates a handler for one record kind. The name is
// used only for logging.
func NewResourceHandler[T any, I any](name string, svc resourceService[T, I], log zerolog.Logger) *ResourceHandler[T, I] {
	return &ResourceHandler[T, I]{
		svc: svc,
		log: log.With().Str("handler", name).Logger(),
	}
}

// Register mounts the CRUD routes on a router group.
func (h *ResourceHandler[T, I]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id", h.PatchStatus)
	rg.DELETE("/:id", h.Delete)
}

// List handles GET /<collection>
func (h *ResourceHandler[T, I]) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if records == nil {
		records = []*T{}
	}
	c.JSON(http.StatusOK, records)
}

// Create handles POST /<collection>
func (h *ResourceHandler[T, I]) Create(c *gin.Context) {
	var in I
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	record, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Get handles GET /<collection>/:id
func (h *ResourceHandler[T, I]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	record, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Update handles PUT /<collection>/:id
func (h *ResourceHandler[T, I]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in I
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	record, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// PatchStatus handles PATCH /<collection>/:id. The body carries only the
// new status; every other field is left untouched.
func (h *ResourceHandler[T, I]) PatchStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if body.Status == "" {
		respondError(c, h.log, &models.ValidationError{Field: "status", Message: "status is required"})
		return
	}
	record, err := h.svc.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /<collection>/:id
func (h *ResourceHandler[T, I]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}
