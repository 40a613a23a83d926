package customizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skateshop-backend/internal/domains/design"
)

func completeSelection() *Selection {
	sel := NewSelection()
	sel.SetDeck(Variant{UID: "deck-01", TextureURL: "/uploads/deck-01.png"})
	sel.SetWheel(Variant{UID: "wheel-01", TextureURL: "/uploads/wheel-01.png"})
	return sel
}

// Board thiếu deck/wheel phải bị chặn trước khi có bất kỳ request nào
func TestSubmitDesignRequiresCompleteSelection(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := NewStoreClient(srv.URL, srv.Client())

	sel := NewSelection()
	sel.SetDeck(Variant{UID: "deck-01"})

	_, err := client.SubmitDesign(context.Background(), sel, ContactInfo{})
	assert.ErrorIs(t, err, ErrIncompleteSelection)
	assert.Zero(t, requests)
}

func TestSubmitDesignSendsSelection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/designs", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req design.CreateDesignRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deck-01", req.DeckUID)
		assert.Equal(t, "wheel-01", req.WheelUID)
		assert.Equal(t, "#FF0000", req.TruckColor)
		assert.Equal(t, DefaultMetalColor, req.BoltColor)
		require.NotNil(t, req.CustomerEmail)
		assert.Equal(t, "skater@example.com", *req.CustomerEmail)
		assert.Nil(t, req.GriptapeUID)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true,"design":{"id":"44444444-4444-4444-4444-444444444444","deckUid":"deck-01","wheelUid":"wheel-01","status":"SUBMITTED"}}`))
	}))
	defer srv.Close()

	client := NewStoreClient(srv.URL, srv.Client())

	sel := completeSelection()
	sel.SetTruckColor("#FF0000")

	d, err := client.SubmitDesign(context.Background(), sel, ContactInfo{Email: "skater@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "deck-01", d.DeckUID)
	assert.Equal(t, design.StatusSubmitted, d.Status)
}

func TestSubmitDesignServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Missing deck/wheel"}`))
	}))
	defer srv.Close()

	client := NewStoreClient(srv.URL, srv.Client())

	_, err := client.SubmitDesign(context.Background(), completeSelection(), ContactInfo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing deck/wheel")
}

func TestGetDesignNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	}))
	defer srv.Close()

	client := NewStoreClient(srv.URL, srv.Client())

	_, err := client.GetDesign(context.Background(), "44444444-4444-4444-4444-444444444444")
	assert.ErrorIs(t, err, design.ErrNotFound)
}

// Review chỉ được chốt APPROVED hoặc REJECTED
func TestSetStatusRejectsNonTerminalStatus(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := NewStoreClient(srv.URL, srv.Client())

	_, err := client.SetStatus(context.Background(), "some-id", design.StatusSubmitted)
	require.Error(t, err)
	assert.Zero(t, requests)
}

func TestSetStatusSendsPartialUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "APPROVED", body["status"])
		// Partial update: các field khác không được gửi
		assert.NotContains(t, body, "notes")
		assert.NotContains(t, body, "customerEmail")

		w.Write([]byte(`{"ok":true,"design":{"id":"44444444-4444-4444-4444-444444444444","status":"APPROVED"}}`))
	}))
	defer srv.Close()

	client := NewStoreClient(srv.URL, srv.Client())

	d, err := client.SetStatus(context.Background(), "44444444-4444-4444-4444-444444444444", design.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, design.StatusApproved, d.Status)
}
