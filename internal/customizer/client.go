package customizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"skateshop-backend/internal/domains/design"
)

var (
	// ErrIncompleteSelection - submit khi board chưa đủ deck + wheel
	// Bắt client-side, không có request nào được gửi
	ErrIncompleteSelection = errors.New("selection is missing deck or wheel")
)

// ContactInfo - metadata optional kèm theo submission
type ContactInfo struct {
	Email      string
	Notes      string
	PreviewURL string
}

// StoreClient nói chuyện với Design Store API
// (customer submit + admin review flow)
type StoreClient struct {
	baseURL string
	client  *http.Client
}

func NewStoreClient(baseURL string, client *http.Client) *StoreClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &StoreClient{baseURL: baseURL, client: client}
}

// SubmitDesign package selection hiện tại thành create request.
//
// Fail (validation/network/non-2xx) → error readable, selection không bị
// đụng tới: UI giữ nguyên như user để lại, resubmit được ngay.
func (c *StoreClient) SubmitDesign(ctx context.Context, sel *Selection, contact ContactInfo) (*design.Design, error) {
	deck, ok := sel.Deck()
	if !ok {
		return nil, ErrIncompleteSelection
	}
	wheel, ok := sel.Wheel()
	if !ok {
		return nil, ErrIncompleteSelection
	}

	req := design.CreateDesignRequest{
		DeckUID:    deck.UID,
		DeckURL:    deck.TextureURL,
		WheelUID:   wheel.UID,
		WheelURL:   wheel.TextureURL,
		TruckColor: sel.TruckColor(),
		BoltColor:  sel.BoltColor(),
	}
	if g, ok := sel.Griptape(); ok {
		req.GriptapeUID = &g.UID
		req.GriptapeURL = &g.TextureURL
	}
	if contact.Email != "" {
		req.CustomerEmail = &contact.Email
	}
	if contact.Notes != "" {
		req.Notes = &contact.Notes
	}
	if contact.PreviewURL != "" {
		req.PreviewURL = &contact.PreviewURL
	}

	var result struct {
		OK     bool           `json:"ok"`
		Design *design.Design `json:"design"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/designs", req, &result); err != nil {
		return nil, err
	}
	if result.Design == nil {
		return nil, fmt.Errorf("design store returned no design")
	}

	return result.Design, nil
}

// ============================================================
// ADMIN REVIEW FLOW
// ============================================================

// ListDesigns - mới nhất trước, server cap 200
func (c *StoreClient) ListDesigns(ctx context.Context) ([]design.Design, error) {
	var result struct {
		Designs []design.Design `json:"designs"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/designs", nil, &result); err != nil {
		return nil, err
	}
	return result.Designs, nil
}

// GetDesign trả về design.ErrNotFound nếu server trả 404
func (c *StoreClient) GetDesign(ctx context.Context, id string) (*design.Design, error) {
	var result struct {
		Design *design.Design `json:"design"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/designs/"+id, nil, &result); err != nil {
		return nil, err
	}
	if result.Design == nil {
		return nil, design.ErrNotFound
	}
	return result.Design, nil
}

// SetStatus - partial update chỉ đụng status (approve/reject)
func (c *StoreClient) SetStatus(ctx context.Context, id string, status design.DesignStatus) (*design.Design, error) {
	if status != design.StatusApproved && status != design.StatusRejected {
		return nil, fmt.Errorf("status must be APPROVED or REJECTED, got %q", status)
	}

	statusStr := string(status)
	req := design.UpdateDesignRequest{Status: &statusStr}

	var result struct {
		OK     bool           `json:"ok"`
		Design *design.Design `json:"design"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/designs/"+id, req, &result); err != nil {
		return nil, err
	}
	return result.Design, nil
}

func (c *StoreClient) RemoveDesign(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/designs/"+id, nil, nil)
}

// doJSON gửi request với JSON body (nếu có) và decode response vào out
func (c *StoreClient) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("design store request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out, design.ErrNotFound)
}

// decodeResponse map response thành out hoặc error
// 404 → notFound sentinel; non-2xx khác → message từ {"error": ...}
func decodeResponse(resp *http.Response, out interface{}, notFound error) error {
	if resp.StatusCode == http.StatusNotFound {
		return notFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("store error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("store error: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
