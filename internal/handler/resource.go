// Package handler implements the CRUD surface once, generically. The three
// entity types plug in through the Entity capability set and a per-entity
// Store; no handler code is duplicated per table.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workboard/internal/apperr"
	"workboard/pkg/metrics"
)

// Entity is what a row type has to expose for the generic handlers:
// a primary-key accessor, explicit assignment from a request-body mapping,
// and required-field validation. JSON projection comes from struct tags.
type Entity interface {
	PrimaryKey() int
	Apply(fields map[string]any) error
	Validate() error
}

// Store is the persistence contract a Resource drives.
type Store[T Entity] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, e T) (T, error)
	Delete(ctx context.Context, id int) error
}

// Resource bundles the five CRUD handlers for one entity type.
type Resource[T Entity] struct {
	store  Store[T]
	name   string
	fresh  func() T
	logger *zap.Logger
}

func NewResource[T Entity](name string, store Store[T], fresh func() T, logger *zap.Logger) *Resource[T] {
	return &Resource[T]{
		store:  store,
		name:   name,
		fresh:  fresh,
		logger: logger,
	}
}

// Mount registers the collection and item routes on the given group.
func (h *Resource[T]) Mount(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles GET /{entity}.
func (h *Resource[T]) List(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	metrics.IncrementEntityOp(h.name, "list", "success")
	c.JSON(http.StatusOK, items)
}

// Get handles GET /{entity}/{id}.
func (h *Resource[T]) Get(c *gin.Context) {
	id, ok := h.entityID(c, "get")
	if !ok {
		return
	}

	item, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", err)
		return
	}

	metrics.IncrementEntityOp(h.name, "get", "success")
	c.JSON(http.StatusOK, item)
}

// Create handles POST /{entity}. The body is a flat column-to-value mapping;
// a caller-supplied id is accepted, everything else goes through the
// entity's allow-list.
func (h *Resource[T]) Create(c *gin.Context) {
	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.fail(c, "create", apperr.Validationf("invalid request body"))
		return
	}

	e := h.fresh()
	if err := e.Apply(fields); err != nil {
		h.fail(c, "create", err)
		return
	}
	if err := e.Validate(); err != nil {
		h.fail(c, "create", err)
		return
	}

	created, err := h.store.Create(c.Request.Context(), e)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	metrics.IncrementEntityOp(h.name, "create", "success")
	c.JSON(http.StatusCreated, gin.H{
		"message": h.name + " created",
		"data":    created,
	})
}

// Update handles PUT /{entity}/{id}. Only the keys present in the body are
// changed. The primary key is immutable, so an id key is rejected outright.
func (h *Resource[T]) Update(c *gin.Context) {
	id, ok := h.entityID(c, "update")
	if !ok {
		return
	}

	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.fail(c, "update", apperr.Validationf("invalid request body"))
		return
	}
	if _, found := fields["id"]; found {
		h.fail(c, "update", apperr.Validationf("id is immutable"))
		return
	}

	e, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	if err := e.Apply(fields); err != nil {
		h.fail(c, "update", err)
		return
	}
	if err := e.Validate(); err != nil {
		h.fail(c, "update", err)
		return
	}

	updated, err := h.store.Update(c.Request.Context(), e)
	if err != nil {
		h.fail(c, "update", err)
		return
	}

	metrics.IncrementEntityOp(h.name, "update", "success")
	c.JSON(http.StatusOK, gin.H{
		"message": h.name + " updated",
		"data":    updated,
	})
}

// Delete handles DELETE /{entity}/{id}.
func (h *Resource[T]) Delete(c *gin.Context) {
	id, ok := h.entityID(c, "delete")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}

	metrics.IncrementEntityOp(h.name, "delete", "success")
	c.JSON(http.StatusOK, gin.H{"message": h.name + " deleted"})
}

func (h *Resource[T]) entityID(c *gin.Context, op string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.fail(c, op, apperr.Validationf("invalid id"))
		return 0, false
	}
	return id, true
}

func (h *Resource[T]) fail(c *gin.Context, op string, err error) {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("entity", h.name),
			zap.String("operation", op),
			zap.Error(err),
		)
	} else {
		h.logger.Warn("Request rejected",
			zap.String("entity", h.name),
			zap.String("operation", op),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	metrics.IncrementEntityOp(h.name, op, "error")
	c.JSON(status, gin.H{"error": apperr.MessageOf(err)})
}
