package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"skateshop-backend/internal/domains/design"
	"skateshop-backend/internal/shared/response"
)

type DesignHandler struct {
	svc design.Service
}

func NewDesignHandler(svc design.Service) *DesignHandler {
	return &DesignHandler{svc: svc}
}

// List trả về designs mới nhất trước, cap 200
// GET /designs
func (h *DesignHandler) List(c *gin.Context) {
	designs, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list designs")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"designs": designs})
}

// Create - customer submit design
// POST /designs
func (h *DesignHandler) Create(c *gin.Context) {
	var req design.CreateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"ok": true, "design": created})
}

// GetByID
// GET /designs/:id
func (h *DesignHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"design": d})
}

// Update - partial update (admin approve/reject)
// PUT /designs/:id
func (h *DesignHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req design.UpdateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"ok": true, "design": updated})
}

// Delete
// DELETE /designs/:id
func (h *DesignHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"ok": true})
}

func (h *DesignHandler) writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, design.ErrNotFound):
		response.NotFound(c, "Not found")
	default:
		response.InternalServerError(c, "Internal server error")
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Not found")
		return uuid.Nil, false
	}
	return id, true
}
