package customizer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skateshop-backend/internal/domains/asset"
)

// UID rỗng/toàn whitespace phải bị chặn trước khi có bất kỳ request nào
func TestRegisterByFileRequiresUID(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := NewAssetAdminClient(srv.URL, srv.Client())

	_, err := client.RegisterByFile(context.Background(), asset.KindDeck, "   ", "deck.png", []byte("png-bytes"))
	assert.Error(t, err)
	assert.Zero(t, requests)
}

func TestRegisterByFileRejectsUnknownKind(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := NewAssetAdminClient(srv.URL, srv.Client())

	_, err := client.RegisterByFile(context.Background(), asset.AssetKind("TRUCK"), "deck-01", "deck.png", []byte("png-bytes"))
	assert.Error(t, err)
	assert.Zero(t, requests)
}

// Metadata được trim trước khi đóng gói multipart
func TestRegisterByFileSendsNormalizedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/assets", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))

		assert.Equal(t, "DECK", r.FormValue("kind"))
		assert.Equal(t, "deck-01", r.FormValue("uid"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "deck.png", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true,"asset":{"id":"55555555-5555-5555-5555-555555555555","kind":"DECK","uid":"deck-01","url":"http://cdn.local/skateshop/assets/deck-01.png"}}`))
	}))
	defer srv.Close()

	client := NewAssetAdminClient(srv.URL, srv.Client())

	created, err := client.RegisterByFile(context.Background(), asset.KindDeck, "  deck-01  ", "deck.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "deck-01", created.UID)
}

func TestUpdateAssetMultipartRequiresUID(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := NewAssetAdminClient(srv.URL, srv.Client())

	_, err := client.UpdateAsset(context.Background(), "55555555-5555-5555-5555-555555555555", "", "", "deck.png", []byte("png-bytes"))
	assert.ErrorContains(t, err, "uid is required")
	assert.Zero(t, requests)
}
