package design

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateDesignRequest - customer submit selection hiện tại
// deckUid + wheelUid bắt buộc (board chưa đủ deck/wheel thì không submit được)
type CreateDesignRequest struct {
	DeckUID     string  `json:"deckUid"`
	DeckURL     string  `json:"deckUrl"`
	WheelUID    string  `json:"wheelUid"`
	WheelURL    string  `json:"wheelUrl"`
	GriptapeUID *string `json:"griptapeUid"`
	GriptapeURL *string `json:"griptapeUrl"`

	TruckColor string `json:"truckColor"`
	BoltColor  string `json:"boltColor"`

	CustomerEmail *string `json:"customerEmail"`
	Notes         *string `json:"notes"`
	PreviewURL    *string `json:"previewUrl"`
}

func (r CreateDesignRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DeckUID, validation.Required.Error("Missing deck/wheel")),
		validation.Field(&r.WheelUID, validation.Required.Error("Missing deck/wheel")),
		validation.Field(&r.CustomerEmail, is.EmailFormat),
	)
}

// UpdateDesignRequest - partial update, admin only
// nil = giữ nguyên field đó; snapshot fields không đụng được
type UpdateDesignRequest struct {
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	PreviewURL    *string `json:"previewUrl,omitempty"`
}

func (r UpdateDesignRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.In(
				string(StatusSubmitted),
				string(StatusPending),
				string(StatusApproved),
				string(StatusRejected),
			),
		),
		validation.Field(&r.CustomerEmail, is.EmailFormat),
	)
}

// Empty = request không thay đổi gì
func (r UpdateDesignRequest) Empty() bool {
	return r.Status == nil && r.Notes == nil && r.CustomerEmail == nil && r.PreviewURL == nil
}
