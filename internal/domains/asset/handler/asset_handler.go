package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"skateshop-backend/internal/domains/asset"
	"skateshop-backend/internal/shared/response"
)

type AssetHandler struct {
	svc asset.Service
}

func NewAssetHandler(svc asset.Service) *AssetHandler {
	return &AssetHandler{svc: svc}
}

// List trả về toàn bộ catalog
// GET /assets
func (h *AssetHandler) List(c *gin.Context) {
	assets, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list assets")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"assets": assets})
}

// Create - upsert theo (kind, uid)
// POST /assets
// JSON body {kind, uid, url} hoặc multipart form {kind, uid, file}
func (h *AssetHandler) Create(c *gin.Context) {
	contentType := c.ContentType()

	switch {
	case strings.Contains(contentType, "application/json"):
		h.createByURL(c)
	case strings.Contains(contentType, "multipart/form-data"):
		h.createByFile(c)
	default:
		response.UnsupportedMediaType(c, "Unsupported content-type")
	}
}

func (h *AssetHandler) createByURL(c *gin.Context) {
	var req asset.RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.svc.RegisterByURL(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"ok": true, "asset": created})
}

func (h *AssetHandler) createByFile(c *gin.Context) {
	req := asset.UploadAssetRequest{
		Kind: c.PostForm("kind"),
		UID:  c.PostForm("uid"),
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing fields")
		return
	}

	file, err := readUpload(fileHeader)
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return
	}

	created, err := h.svc.RegisterByFile(c.Request.Context(), req, file)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"ok": true, "asset": created})
}

// GetByID
// GET /assets/:id
func (h *AssetHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"asset": a})
}

// Update - partial update; multipart (có thể kèm file) hoặc JSON
// PUT /assets/:id
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req asset.UpdateAssetRequest
	var file *asset.UploadFile

	if strings.Contains(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	} else {
		req.Kind = c.PostForm("kind")
		req.UID = c.PostForm("uid")
		req.URL = c.PostForm("url")

		if fileHeader, err := c.FormFile("file"); err == nil {
			f, err := readUpload(fileHeader)
			if err != nil {
				response.BadRequest(c, "Cannot read uploaded file")
				return
			}
			file = &f
		}
	}

	updated, err := h.svc.Update(c.Request.Context(), id, req, file)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"asset": updated})
}

// Delete xóa asset row (object cleanup best-effort phía service)
// DELETE /assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
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

// writeError map domain errors sang HTTP status
func (h *AssetHandler) writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, asset.ErrNotFound):
		response.NotFound(c, "Not found")
	case errors.Is(err, asset.ErrStorage):
		response.InternalServerError(c, "Upload failed")
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

func readUpload(fh *multipart.FileHeader) (asset.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return asset.UploadFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return asset.UploadFile{}, err
	}

	return asset.UploadFile{Name: fh.Filename, Data: data}, nil
}
