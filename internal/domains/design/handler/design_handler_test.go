package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skateshop-backend/internal/domains/design"
	"skateshop-backend/internal/domains/design/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================================
// FAKE REPOSITORY
// ============================================================

type fakeRepo struct {
	rows    map[uuid.UUID]*design.Design
	creates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[uuid.UUID]*design.Design)}
}

func (r *fakeRepo) Create(_ context.Context, d *design.Design) error {
	r.creates++
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	cp := *d
	r.rows[d.ID] = &cp
	return nil
}

func (r *fakeRepo) List(_ context.Context, limit int) ([]design.Design, error) {
	out := make([]design.Design, 0, len(r.rows))
	for _, d := range r.rows {
		if len(out) == limit {
			break
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*design.Design, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, design.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeRepo) UpdatePartial(_ context.Context, id uuid.UUID, req design.UpdateDesignRequest) (*design.Design, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, design.ErrNotFound
	}
	if req.Status != nil {
		d.Status = design.DesignStatus(*req.Status)
	}
	if req.Notes != nil {
		d.Notes = req.Notes
	}
	cp := *d
	return &cp, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return design.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func setupRouter(repo *fakeRepo) *gin.Engine {
	h := NewDesignHandler(service.NewService(repo))

	router := gin.New()
	router.GET("/designs", h.List)
	router.POST("/designs", h.Create)
	router.GET("/designs/:id", h.GetByID)
	router.PUT("/designs/:id", h.Update)
	router.DELETE("/designs/:id", h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ============================================================
// TESTS
// ============================================================

// Thiếu deck/wheel phải bị chặn ở validation, repo không bị đụng tới
func TestCreateDesignMissingDeck(t *testing.T) {
	repo := newFakeRepo()
	router := setupRouter(repo)

	w := doJSON(router, http.MethodPost, "/designs", `{"wheelUid":"wheel-01","wheelUrl":"/w.png"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing deck/wheel")
	assert.Zero(t, repo.creates)
}

func TestCreateDesign(t *testing.T) {
	router := setupRouter(newFakeRepo())

	w := doJSON(router, http.MethodPost, "/designs", `{
		"deckUid":"deck-01","deckUrl":"/d.png",
		"wheelUid":"wheel-01","wheelUrl":"/w.png",
		"truckColor":"#6F6E6A","boltColor":"#000000"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK     bool          `json:"ok"`
		Design design.Design `json:"design"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEqual(t, uuid.Nil, resp.Design.ID)
	// Mọi submission mới đều là SUBMITTED, client không set được status
	assert.Equal(t, design.StatusSubmitted, resp.Design.Status)
}

func TestCreateDesignInvalidEmail(t *testing.T) {
	router := setupRouter(newFakeRepo())

	w := doJSON(router, http.MethodPost, "/designs", `{
		"deckUid":"deck-01","deckUrl":"/d.png",
		"wheelUid":"wheel-01","wheelUrl":"/w.png",
		"customerEmail":"not-an-email"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDesignInvalidID(t *testing.T) {
	router := setupRouter(newFakeRepo())

	w := doJSON(router, http.MethodGet, "/designs/not-a-uuid", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestUpdateDesignStatus(t *testing.T) {
	repo := newFakeRepo()
	router := setupRouter(repo)

	d := design.Design{DeckUID: "deck-01", WheelUID: "wheel-01", Status: design.StatusSubmitted}
	require.NoError(t, repo.Create(context.Background(), &d))

	w := doJSON(router, http.MethodPut, "/designs/"+d.ID.String(), `{"status":"APPROVED"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK     bool          `json:"ok"`
		Design design.Design `json:"design"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, design.StatusApproved, resp.Design.Status)
}

func TestUpdateDesignUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	router := setupRouter(repo)

	d := design.Design{DeckUID: "deck-01", WheelUID: "wheel-01"}
	require.NoError(t, repo.Create(context.Background(), &d))

	w := doJSON(router, http.MethodPut, "/designs/"+d.ID.String(), `{"status":"SHIPPED"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDesignMissing(t *testing.T) {
	router := setupRouter(newFakeRepo())

	w := doJSON(router, http.MethodPut, "/designs/"+uuid.NewString(), `{"status":"APPROVED"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestDeleteDesign(t *testing.T) {
	repo := newFakeRepo()
	router := setupRouter(repo)

	d := design.Design{DeckUID: "deck-01", WheelUID: "wheel-01"}
	require.NoError(t, repo.Create(context.Background(), &d))

	w := doJSON(router, http.MethodDelete, "/designs/"+d.ID.String(), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Empty(t, repo.rows)
}

func TestListDesigns(t *testing.T) {
	repo := newFakeRepo()
	router := setupRouter(repo)

	for i := 0; i < 3; i++ {
		d := design.Design{DeckUID: "deck-01", WheelUID: "wheel-01"}
		require.NoError(t, repo.Create(context.Background(), &d))
	}

	w := doJSON(router, http.MethodGet, "/designs", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Designs []design.Design `json:"designs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Designs, 3)
}
