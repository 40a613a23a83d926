package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skateshop-backend/internal/domains/asset"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeService ghi lại method nào được gọi
type fakeService struct {
	registeredByURL  *asset.RegisterAssetRequest
	registeredByFile *asset.UploadAssetRequest
	uploadedFile     *asset.UploadFile
	err              error
}

func (s *fakeService) List(context.Context) ([]asset.Asset, error) {
	return []asset.Asset{}, s.err
}

func (s *fakeService) GetByID(context.Context, uuid.UUID) (*asset.Asset, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &asset.Asset{}, nil
}

func (s *fakeService) RegisterByURL(_ context.Context, req asset.RegisterAssetRequest) (*asset.Asset, error) {
	s.registeredByURL = &req
	if s.err != nil {
		return nil, s.err
	}
	return &asset.Asset{
		ID: uuid.New(), Kind: asset.AssetKind(req.Kind), UID: req.UID, URL: req.URL,
		CreatedAt: time.Now(),
	}, nil
}

func (s *fakeService) RegisterByFile(_ context.Context, req asset.UploadAssetRequest, file asset.UploadFile) (*asset.Asset, error) {
	s.registeredByFile = &req
	s.uploadedFile = &file
	if s.err != nil {
		return nil, s.err
	}
	return &asset.Asset{
		ID: uuid.New(), Kind: asset.AssetKind(req.Kind), UID: req.UID,
		URL: "http://cdn.local/skateshop/assets/" + req.UID + ".png", CreatedAt: time.Now(),
	}, nil
}

func (s *fakeService) Update(_ context.Context, id uuid.UUID, req asset.UpdateAssetRequest, _ *asset.UploadFile) (*asset.Asset, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &asset.Asset{ID: id, UID: req.UID, URL: req.URL}, nil
}

func (s *fakeService) Delete(context.Context, uuid.UUID) error {
	return s.err
}

func setupRouter(svc asset.Service) *gin.Engine {
	h := NewAssetHandler(svc)

	router := gin.New()
	router.GET("/assets", h.List)
	router.POST("/assets", h.Create)
	router.GET("/assets/:id", h.GetByID)
	router.PUT("/assets/:id", h.Update)
	router.DELETE("/assets/:id", h.Delete)
	return router
}

// POST /assets switch theo content-type: JSON, multipart, còn lại 415
func TestCreateUnsupportedContentType(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader("kind=DECK"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.JSONEq(t, `{"error":"Unsupported content-type"}`, w.Body.String())
	assert.Nil(t, svc.registeredByURL)
	assert.Nil(t, svc.registeredByFile)
}

func TestCreateRoutesJSONToRegisterByURL(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc)

	body := `{"kind":"DECK","uid":"deck-01","url":"/uploads/deck-01.png"}`
	req := httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.registeredByURL)
	assert.Equal(t, "deck-01", svc.registeredByURL.UID)
	assert.Nil(t, svc.registeredByFile)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestCreateRoutesMultipartToRegisterByFile(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("kind", "WHEEL"))
	require.NoError(t, mw.WriteField("uid", "wheel-01"))
	part, err := mw.CreateFormFile("file", "wheel.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/assets", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.registeredByFile)
	assert.Equal(t, "wheel-01", svc.registeredByFile.UID)
	require.NotNil(t, svc.uploadedFile)
	assert.Equal(t, "wheel.png", svc.uploadedFile.Name)
	assert.Equal(t, []byte("fake-image-bytes"), svc.uploadedFile.Data)
}

func TestCreateMultipartMissingFile(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("kind", "DECK"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/assets", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing fields"}`, w.Body.String())
}

func TestDeleteInvalidID(t *testing.T) {
	router := setupRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodDelete, "/assets/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestCreateStorageFailure(t *testing.T) {
	svc := &fakeService{err: asset.ErrStorage}
	router := setupRouter(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("kind", "DECK"))
	require.NoError(t, mw.WriteField("uid", "deck-01"))
	part, err := mw.CreateFormFile("file", "deck.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/assets", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Upload failed"}`, w.Body.String())
}
