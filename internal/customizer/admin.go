package customizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"skateshop-backend/internal/domains/asset"
)

// AssetAdminClient quản lý catalog qua Assets API
type AssetAdminClient struct {
	baseURL string
	client  *http.Client
}

func NewAssetAdminClient(baseURL string, client *http.Client) *AssetAdminClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &AssetAdminClient{baseURL: baseURL, client: client}
}

// RegisterByURL đăng ký asset trỏ tới texture đã host sẵn.
// Validate client-side trước, request hỏng không bao giờ rời máy.
func (c *AssetAdminClient) RegisterByURL(ctx context.Context, kind asset.AssetKind, uid, url string) (*asset.Asset, error) {
	req := asset.RegisterAssetRequest{
		Kind: string(kind),
		UID:  uid,
		URL:  url,
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assets", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.doAsset(httpReq)
}

// RegisterByFile upload file texture kèm metadata (multipart).
// Validate client-side trước, request hỏng không bao giờ rời máy.
func (c *AssetAdminClient) RegisterByFile(ctx context.Context, kind asset.AssetKind, uid, filename string, data []byte) (*asset.Asset, error) {
	req := asset.UploadAssetRequest{
		Kind: string(kind),
		UID:  uid,
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := buildMultipart(map[string]string{
		"kind": req.Kind,
		"uid":  req.UID,
	}, filename, data)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assets", body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	return c.doAsset(httpReq)
}

// UpdateAsset - uid bắt buộc (chọn row theo kind+uid), file thắng url nếu có cả hai
func (c *AssetAdminClient) UpdateAsset(ctx context.Context, id string, uid, url string, filename string, data []byte) (*asset.Asset, error) {
	var httpReq *http.Request
	var err error

	if len(data) > 0 {
		req := asset.UpdateAssetRequest{UID: uid}
		req.Normalize()
		if err := req.Validate(); err != nil {
			return nil, err
		}

		var body *bytes.Buffer
		var contentType string
		body, contentType, err = buildMultipart(map[string]string{"uid": req.UID}, filename, data)
		if err != nil {
			return nil, err
		}
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/assets/"+id, body)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		httpReq.Header.Set("Content-Type", contentType)
	} else {
		req := asset.UpdateAssetRequest{UID: uid, URL: url}
		req.Normalize()
		if err := req.Validate(); err != nil {
			return nil, err
		}

		payload, err := json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/assets/"+id, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return c.doAsset(httpReq)
}

func (c *AssetAdminClient) RemoveAsset(ctx context.Context, id string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/assets/"+id, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("assets request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, nil, asset.ErrNotFound)
}

func (c *AssetAdminClient) doAsset(req *http.Request) (*asset.Asset, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		OK    bool         `json:"ok"`
		Asset *asset.Asset `json:"asset"`
	}
	if err := decodeResponse(resp, &result, asset.ErrNotFound); err != nil {
		return nil, err
	}
	if result.Asset == nil {
		return nil, fmt.Errorf("assets API returned no asset")
	}
	return result.Asset, nil
}

// buildMultipart - Content-Type lấy từ writer (có boundary), không tự set
func buildMultipart(fields map[string]string, filename string, data []byte) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write file data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}
