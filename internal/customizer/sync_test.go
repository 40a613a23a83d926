package customizer

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore đếm số lần Save và giữ snapshot cuối
type recordingStore struct {
	mu    sync.Mutex
	saves []Preferences
}

func (s *recordingStore) Load(context.Context) (*Preferences, error) { return nil, nil }

func (s *recordingStore) Save(_ context.Context, p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, p)
	return nil
}

func (s *recordingStore) snapshot() []Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Preferences(nil), s.saves...)
}

func TestSynchronizerReplacesQueryImmediately(t *testing.T) {
	sel := NewSelection()
	writer := &URLValuesWriter{}
	base := url.Values{"ref": {"email"}}

	syncer := NewSynchronizer(sel, writer, nil, base, time.Hour)
	defer syncer.Close()

	sel.SetDeck(Variant{UID: "deck-01"})

	values := writer.Values()
	require.NotNil(t, values)
	assert.Equal(t, "deck-01", values.Get("deck"))
	assert.Equal(t, DefaultMetalColor, values.Get("truck"))
	// Param ngoài 5 slot được giữ nguyên
	assert.Equal(t, "email", values.Get("ref"))
	// Wheel chưa set → không có param
	assert.False(t, values.Has("wheel"))
}

// Một burst change chỉ persist đúng một lần, với state cuối cùng
func TestSynchronizerDebounceCoalesces(t *testing.T) {
	sel := NewSelection()
	store := &recordingStore{}

	syncer := NewSynchronizer(sel, nil, store, nil, 20*time.Millisecond)
	defer syncer.Close()

	sel.SetDeck(Variant{UID: "deck-01"})
	sel.SetDeck(Variant{UID: "deck-02"})
	sel.SetTruckColor("#FF0000")
	sel.SetDeck(Variant{UID: "deck-03"})

	require.Eventually(t, func() bool {
		return len(store.snapshot()) > 0
	}, time.Second, 5*time.Millisecond)

	// Chờ thêm để chắc không có flush thứ hai
	time.Sleep(60 * time.Millisecond)

	saves := store.snapshot()
	require.Len(t, saves, 1)
	assert.Equal(t, "deck-03", saves[0].Deck)
	assert.Equal(t, "#FF0000", saves[0].TruckColor)
}

// Change mới trong debounce window reset timer
func TestSynchronizerResetOnChange(t *testing.T) {
	sel := NewSelection()
	store := &recordingStore{}

	syncer := NewSynchronizer(sel, nil, store, nil, 50*time.Millisecond)
	defer syncer.Close()

	sel.SetDeck(Variant{UID: "deck-01"})
	time.Sleep(30 * time.Millisecond)
	sel.SetDeck(Variant{UID: "deck-02"})
	time.Sleep(30 * time.Millisecond)

	// 60ms trôi qua nhưng timer bị reset ở 30ms → chưa flush
	assert.Empty(t, store.snapshot())

	require.Eventually(t, func() bool {
		return len(store.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "deck-02", store.snapshot()[0].Deck)
}

func TestSynchronizerCloseFlushesPending(t *testing.T) {
	sel := NewSelection()
	store := &recordingStore{}

	syncer := NewSynchronizer(sel, nil, store, nil, time.Hour)

	sel.SetDeck(Variant{UID: "deck-01"})
	syncer.Close()

	saves := store.snapshot()
	require.Len(t, saves, 1)
	assert.Equal(t, "deck-01", saves[0].Deck)
}

func TestEncodeQuerySkipsUnsetSlots(t *testing.T) {
	sel := NewSelection()
	sel.SetWheel(Variant{UID: "wheel-01"})

	values := EncodeQuery(sel, nil)

	assert.False(t, values.Has("deck"))
	assert.False(t, values.Has("griptape"))
	assert.Equal(t, "wheel-01", values.Get("wheel"))
	assert.Equal(t, DefaultMetalColor, values.Get("truck"))
	assert.Equal(t, DefaultMetalColor, values.Get("bolt"))
}

func TestSnapshot(t *testing.T) {
	sel := NewSelection()
	sel.SetDeck(Variant{UID: "deck-01"})
	sel.SetGriptape(Variant{UID: "grip-01"})
	sel.SetBoltColor("#000000")

	p := Snapshot(sel)

	assert.Equal(t, "deck-01", p.Deck)
	assert.Equal(t, "", p.Wheel)
	assert.Equal(t, "grip-01", p.Griptape)
	assert.Equal(t, DefaultMetalColor, p.TruckColor)
	assert.Equal(t, "#000000", p.BoltColor)
}
