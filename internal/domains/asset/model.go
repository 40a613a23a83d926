package asset

import (
	"time"

	"github.com/google/uuid"
)

// AssetKind phân loại texture trong catalog
type AssetKind string

const (
	KindDeck     AssetKind = "DECK"
	KindWheel    AssetKind = "WHEEL"
	KindGriptape AssetKind = "GRIPTAPE"
)

func (k AssetKind) Valid() bool {
	switch k {
	case KindDeck, KindWheel, KindGriptape:
		return true
	}
	return false
}

// Asset là một texture trong catalog (deck/wheel/griptape)
//
// Identity có 2 phần:
// - ID (surrogate): addressing trực tiếp (update/delete theo id)
// - (Kind, UID) (natural key): upsert khi admin đăng ký texture
//
// DATABASE MAPPING:
// ┌──────────────────────────┐
// │       assets table        │
// ├──────────────────────────┤
// │ id (UUID) - PRIMARY KEY  │
// │ kind (TEXT)              │
// │ uid (TEXT)               │
// │ url (TEXT)               │
// │ created_at               │
// │ UNIQUE (kind, uid)       │
// └──────────────────────────┘
type Asset struct {
	ID        uuid.UUID `json:"id"`
	Kind      AssetKind `json:"kind"`
	UID       string    `json:"uid"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
