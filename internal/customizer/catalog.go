// Package customizer là client-side state machine của bộ customize skateboard:
// load catalog, giữ selection hiện tại, sync selection ⇄ URL query + stored
// preferences, và submit design lên Design Store.
//
// Toàn bộ package chạy single-consumer (một event loop của UI); các type ở đây
// không safe cho concurrent mutation trừ khi nói rõ.
package customizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"skateshop-backend/internal/domains/asset"
)

var (
	// ErrCatalogUnavailable - fetch fail hoặc payload malformed
	// Phân biệt với catalog rỗng (hợp lệ): UI cần render
	// "no assets yet" khác với "failed to load"
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrSuperseded - load này đã bị một load mới hơn vượt qua,
	// kết quả phải bị discard (latest request wins)
	ErrSuperseded = errors.New("catalog load superseded")
)

// Variant - một item chọn được trong catalog
type Variant struct {
	UID        string `json:"uid"`
	TextureURL string `json:"textureUrl"`
}

// Catalog - asset listing đã partition theo kind
type Catalog struct {
	Decks     []Variant
	Wheels    []Variant
	Griptapes []Variant
}

// Find tìm variant theo uid trong một list
func Find(list []Variant, uid string) (Variant, bool) {
	for _, v := range list {
		if v.UID == uid {
			return v, true
		}
	}
	return Variant{}, false
}

// Loader fetch catalog từ Asset Store API.
// Safe cho concurrent Load: load mới nhất thắng, load cũ bị ErrSuperseded.
type Loader struct {
	baseURL string
	client  *http.Client

	mu  sync.Mutex
	gen uint64
}

func NewLoader(baseURL string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{baseURL: baseURL, client: client}
}

// Load fetch GET /assets và partition theo kind.
// Catalog rỗng là kết quả hợp lệ, không phải error.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/assets", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	// Assets là pointer để phân biệt "key vắng mặt" (malformed)
	// với "mảng rỗng" (catalog trống hợp lệ)
	var payload struct {
		Assets *[]asset.Asset `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if payload.Assets == nil {
		return nil, fmt.Errorf("%w: missing asset list", ErrCatalogUnavailable)
	}

	// Một load mới hơn đã được issue trong lúc load này còn in-flight
	// → kết quả này stale, discard
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen != gen {
		return nil, ErrSuperseded
	}

	cat := &Catalog{
		Decks:     []Variant{},
		Wheels:    []Variant{},
		Griptapes: []Variant{},
	}
	for _, a := range *payload.Assets {
		v := Variant{UID: a.UID, TextureURL: a.URL}
		switch a.Kind {
		case asset.KindDeck:
			cat.Decks = append(cat.Decks, v)
		case asset.KindWheel:
			cat.Wheels = append(cat.Wheels, v)
		case asset.KindGriptape:
			cat.Griptapes = append(cat.Griptapes, v)
		}
	}

	return cat, nil
}
