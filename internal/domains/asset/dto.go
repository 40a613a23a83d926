package asset

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// kindRule check enum qua AssetKind.Valid; rỗng để Required xử lý
func kindRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !AssetKind(s).Valid() {
		return errors.New("must be a valid asset kind")
	}
	return nil
}

// RegisterAssetRequest - upsert asset theo natural key (kind, uid) với URL cho sẵn
type RegisterAssetRequest struct {
	Kind string `json:"kind"`
	UID  string `json:"uid"`
	URL  string `json:"url"`
}

// Normalize trim whitespace trước khi validate
func (r *RegisterAssetRequest) Normalize() {
	r.Kind = strings.TrimSpace(r.Kind)
	r.UID = strings.TrimSpace(r.UID)
	r.URL = strings.TrimSpace(r.URL)
}

func (r RegisterAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind,
			validation.Required,
			validation.By(kindRule),
		),
		validation.Field(&r.UID,
			validation.Required,
			validation.Length(1, 100),
		),
		validation.Field(&r.URL,
			validation.Required,
			validation.Length(1, 2000),
		),
	)
}

// UploadAssetRequest - upsert asset với file upload (URL sinh ra sau khi upload)
type UploadAssetRequest struct {
	Kind string
	UID  string
}

func (r *UploadAssetRequest) Normalize() {
	r.Kind = strings.TrimSpace(r.Kind)
	r.UID = strings.TrimSpace(r.UID)
}

func (r UploadAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind,
			validation.Required,
			validation.By(kindRule),
		),
		validation.Field(&r.UID,
			validation.Required,
			validation.Length(1, 100),
		),
	)
}

// UpdateAssetRequest - partial update theo surrogate id
// UID bắt buộc; Kind/URL optional; file (nếu có) supersede URL
type UpdateAssetRequest struct {
	Kind string `json:"kind"`
	UID  string `json:"uid"`
	URL  string `json:"url"`
}

func (r *UpdateAssetRequest) Normalize() {
	r.Kind = strings.TrimSpace(r.Kind)
	r.UID = strings.TrimSpace(r.UID)
	r.URL = strings.TrimSpace(r.URL)
}

func (r UpdateAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UID,
			validation.Required.Error("uid is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Kind,
			validation.By(kindRule),
		),
	)
}

// UploadFile là file nhận từ multipart form
type UploadFile struct {
	Name string
	Data []byte
}
