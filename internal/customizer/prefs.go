package customizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"

	"skateshop-backend/pkg/cache"
)

// PreferencesKey - tên cố định của persisted preferences record
const PreferencesKey = "skateshop:customizer:prefs"

// Preferences - record persist cục bộ (tương đương localStorage blob)
type Preferences struct {
	Deck       string `json:"deck"`
	Wheel      string `json:"wheel"`
	Griptape   string `json:"griptape"`
	TruckColor string `json:"truckColor"`
	BoltColor  string `json:"boltColor"`
}

// PreferenceStore persist Preferences record theo PreferencesKey
type PreferenceStore interface {
	// Load trả về (nil, nil) nếu chưa từng save
	Load(ctx context.Context) (*Preferences, error)
	Save(ctx context.Context, p Preferences) error
}

// ============================================================
// FilePreferenceStore - JSON file trên disk
// ============================================================

type FilePreferenceStore struct {
	path string
}

func NewFilePreferenceStore(path string) *FilePreferenceStore {
	return &FilePreferenceStore{path: path}
}

func (s *FilePreferenceStore) Load(_ context.Context) (*Preferences, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		// File hỏng coi như chưa có preferences, không error
		return nil, nil
	}
	return &p, nil
}

func (s *FilePreferenceStore) Save(_ context.Context, p Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

// ============================================================
// RedisPreferenceStore - preferences trong Redis (pkg/cache)
// ============================================================

type RedisPreferenceStore struct {
	cache cache.Cache
	key   string
}

func NewRedisPreferenceStore(c cache.Cache, sessionID string) *RedisPreferenceStore {
	return &RedisPreferenceStore{
		cache: c,
		key:   PreferencesKey + ":" + sessionID,
	}
}

func (s *RedisPreferenceStore) Load(ctx context.Context) (*Preferences, error) {
	var p Preferences
	found, err := s.cache.Get(ctx, s.key, &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

func (s *RedisPreferenceStore) Save(ctx context.Context, p Preferences) error {
	// TTL 0 = không expire: preferences sống qua session
	return s.cache.Set(ctx, s.key, p, 0)
}

// ============================================================
// PreferenceSource - một tier trong thứ tự ưu tiên lúc init
// ============================================================

// Slot - một trong 5 vị trí chọn của board
type Slot string

const (
	SlotDeck     Slot = "deck"
	SlotWheel    Slot = "wheel"
	SlotGriptape Slot = "griptape"
	SlotTruck    Slot = "truck"
	SlotBolt     Slot = "bolt"
)

// PreferenceSource resolve variant/color cho một slot.
// Initialization query các source theo thứ tự cố định:
// URL query trước, stored preferences sau (xem ResolveInitial).
type PreferenceSource interface {
	// Variant trả về (v, true) nếu source này resolve được slot
	// (thường là: có uid và uid tồn tại trong catalog)
	Variant(slot Slot, cat *Catalog) (Variant, bool)

	// Color trả về (color, true) nếu source này có màu cho slot
	Color(slot Slot) (string, bool)
}

// QuerySource - adapter đọc URL query string
type QuerySource struct {
	values url.Values
}

func NewQuerySource(values url.Values) QuerySource {
	return QuerySource{values: values}
}

func (q QuerySource) Variant(slot Slot, cat *Catalog) (Variant, bool) {
	// Preview page override: deckUrl/wheelUrl/griptapeUrl trỏ thẳng
	// texture URL, bypass catalog lookup
	if override := q.values.Get(string(slot) + "Url"); override != "" {
		return Variant{UID: q.values.Get(string(slot)), TextureURL: override}, true
	}

	uid := q.values.Get(string(slot))
	if uid == "" {
		return Variant{}, false
	}
	return Find(catalogList(cat, slot), uid)
}

func (q QuerySource) Color(slot Slot) (string, bool) {
	color := q.values.Get(string(slot))
	if color == "" {
		return "", false
	}
	return color, true
}

// StoredSource - adapter đọc persisted Preferences record
type StoredSource struct {
	prefs *Preferences
}

func NewStoredSource(prefs *Preferences) StoredSource {
	return StoredSource{prefs: prefs}
}

func (s StoredSource) Variant(slot Slot, cat *Catalog) (Variant, bool) {
	if s.prefs == nil {
		return Variant{}, false
	}

	var uid string
	switch slot {
	case SlotDeck:
		uid = s.prefs.Deck
	case SlotWheel:
		uid = s.prefs.Wheel
	case SlotGriptape:
		uid = s.prefs.Griptape
	}
	if uid == "" {
		return Variant{}, false
	}
	return Find(catalogList(cat, slot), uid)
}

func (s StoredSource) Color(slot Slot) (string, bool) {
	if s.prefs == nil {
		return "", false
	}

	var color string
	switch slot {
	case SlotTruck:
		color = s.prefs.TruckColor
	case SlotBolt:
		color = s.prefs.BoltColor
	}
	if color == "" {
		return "", false
	}
	return color, true
}

func catalogList(cat *Catalog, slot Slot) []Variant {
	if cat == nil {
		return nil
	}
	switch slot {
	case SlotDeck:
		return cat.Decks
	case SlotWheel:
		return cat.Wheels
	case SlotGriptape:
		return cat.Griptapes
	}
	return nil
}

// ResolveInitial resolve selection ban đầu sau khi catalog load xong.
//
// Thứ tự ưu tiên cho mỗi slot, theo thứ tự sources truyền vào
// (convention: QuerySource trước, StoredSource sau):
//  1. source resolve được (uid có trong catalog) → dùng
//  2. không source nào resolve → item đầu tiên của kind đó
//  3. kind rỗng → slot unset (board renderable-as-incomplete)
//
// Color: source đầu tiên có màu thắng, fallback DefaultMetalColor.
// uid không tồn tại trong catalog rơi xuống tier tiếp theo, không bao giờ error.
func ResolveInitial(cat *Catalog, sources ...PreferenceSource) *Selection {
	sel := NewSelection()

	resolveVariant := func(slot Slot, set func(Variant)) {
		for _, src := range sources {
			if v, ok := src.Variant(slot, cat); ok {
				set(v)
				return
			}
		}
		if list := catalogList(cat, slot); len(list) > 0 {
			set(list[0])
		}
		// kind rỗng → giữ unset
	}

	resolveColor := func(slot Slot, set func(string)) {
		for _, src := range sources {
			if c, ok := src.Color(slot); ok {
				set(c)
				return
			}
		}
		// default đã có sẵn trong NewSelection
	}

	// Resolve xong hết rồi mới attach observer phía caller,
	// nên các set ở đây không trigger sync
	resolveVariant(SlotDeck, sel.SetDeck)
	resolveVariant(SlotWheel, sel.SetWheel)
	resolveVariant(SlotGriptape, sel.SetGriptape)
	resolveColor(SlotTruck, sel.SetTruckColor)
	resolveColor(SlotBolt, sel.SetBoltColor)

	return sel
}
