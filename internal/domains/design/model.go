package design

import (
	"time"

	"github.com/google/uuid"
)

// DesignStatus - lifecycle của design sau khi submit
type DesignStatus string

const (
	StatusSubmitted DesignStatus = "SUBMITTED"
	StatusPending   DesignStatus = "PENDING"
	StatusApproved  DesignStatus = "APPROVED"
	StatusRejected  DesignStatus = "REJECTED"
)

// Design là snapshot của một selection đã submit.
//
// Các field deck/wheel/griptape là bản copy (uid + url) tại thời điểm submit,
// KHÔNG phải foreign key sang assets: admin sửa/xóa catalog không được
// làm hỏng design lịch sử. Chỉ status mutable sau khi tạo.
type Design struct {
	ID uuid.UUID `json:"id"`

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

	Status    DesignStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}
