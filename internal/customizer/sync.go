package customizer

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultDebounce - cửa sổ coalesce cho persist preferences
// (kéo color picker bắn hàng chục change/giây, chỉ ghi state cuối)
const DefaultDebounce = 150 * time.Millisecond

// QueryWriter nhận query string mới sau mỗi selection change.
// Implementation phải REPLACE (không push): history không được phình ra.
type QueryWriter interface {
	Replace(values url.Values)
}

// URLValuesWriter - QueryWriter giữ values mới nhất trong memory
type URLValuesWriter struct {
	mu     sync.Mutex
	values url.Values
}

func (w *URLValuesWriter) Replace(values url.Values) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.values = values
}

func (w *URLValuesWriter) Values() url.Values {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.values
}

// EncodeQuery rewrite các param deck/wheel/griptape/truck/bolt trong base
// theo selection hiện tại. Param khác trong base giữ nguyên.
// Slot unset không được set param (giống behavior gốc).
func EncodeQuery(sel *Selection, base url.Values) url.Values {
	values := url.Values{}
	for k, vs := range base {
		values[k] = append([]string(nil), vs...)
	}

	if d, ok := sel.Deck(); ok {
		values.Set(string(SlotDeck), d.UID)
	}
	if w, ok := sel.Wheel(); ok {
		values.Set(string(SlotWheel), w.UID)
	}
	if g, ok := sel.Griptape(); ok {
		values.Set(string(SlotGriptape), g.UID)
	}
	if c := sel.TruckColor(); c != "" {
		values.Set(string(SlotTruck), c)
	}
	if c := sel.BoltColor(); c != "" {
		values.Set(string(SlotBolt), c)
	}

	return values
}

// Snapshot chụp selection hiện tại thành Preferences record
func Snapshot(sel *Selection) Preferences {
	p := Preferences{
		TruckColor: sel.TruckColor(),
		BoltColor:  sel.BoltColor(),
	}
	if d, ok := sel.Deck(); ok {
		p.Deck = d.UID
	}
	if w, ok := sel.Wheel(); ok {
		p.Wheel = w.UID
	}
	if g, ok := sel.Griptape(); ok {
		p.Griptape = g.UID
	}
	return p
}

// Synchronizer giữ selection ⇄ URL query ⇄ stored preferences consistent.
//
// Trên mỗi change:
//   - query được rewrite ngay (synchronous, replace semantics)
//   - persist preferences sau debounce window; change mới reset timer
//     nên một burst chỉ ghi đúng một lần, với state cuối cùng
type Synchronizer struct {
	sel      *Selection
	query    QueryWriter
	store    PreferenceStore
	base     url.Values
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *Preferences
	closed  bool
}

// NewSynchronizer tạo synchronizer và attach vào sel.
// base là query string hiện tại (các param ngoài 5 slot được giữ lại).
// debounce <= 0 dùng DefaultDebounce.
func NewSynchronizer(sel *Selection, query QueryWriter, store PreferenceStore, base url.Values, debounce time.Duration) *Synchronizer {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	s := &Synchronizer{
		sel:      sel,
		query:    query,
		store:    store,
		base:     base,
		debounce: debounce,
	}
	sel.OnChange(s.onChange)
	return s
}

func (s *Synchronizer) onChange() {
	// 1. URL sync ngay lập tức
	if s.query != nil {
		s.query.Replace(EncodeQuery(s.sel, s.base))
	}

	// 2. Persist debounced: snapshot bây giờ, ghi khi timer nổ
	snap := Snapshot(s.sel)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.pending = &snap
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

// flush ghi pending snapshot (chạy trên timer goroutine)
func (s *Synchronizer) flush() {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if p == nil || s.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.store.Save(ctx, *p); err != nil {
		// Persist fail không được làm hỏng UI state
		log.Warn().Err(err).Msg("Preference persist failed")
	}
}

// Close stop timer và flush pending snapshot cuối cùng (nếu có)
func (s *Synchronizer) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.flush()
}
