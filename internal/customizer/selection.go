package customizer

// DefaultMetalColor - màu mặc định cho truck và bolt
const DefaultMetalColor = "#6F6E6A"

// Selection là state container cho selection đang build của customer.
//
// 5 field độc lập: set field này không bao giờ clear field khác.
// Deck/wheel/griptape có thể unset (catalog rỗng cho kind đó);
// truck/bolt color luôn có giá trị (default DefaultMetalColor).
//
// Không validate gì ngoài type: mọi string là color hợp lệ,
// mọi Variant từ catalog là lựa chọn hợp lệ.
//
// Owned bởi UI event loop - không safe cho concurrent mutation.
type Selection struct {
	deck     *Variant
	wheel    *Variant
	griptape *Variant

	truckColor string
	boltColor  string

	onChange func()
}

func NewSelection() *Selection {
	return &Selection{
		truckColor: DefaultMetalColor,
		boltColor:  DefaultMetalColor,
	}
}

// OnChange đăng ký observer, gọi sau mỗi lần set
// (Synchronizer dùng hook này)
func (s *Selection) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Selection) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Selection) SetDeck(v Variant) {
	s.deck = &v
	s.notify()
}

func (s *Selection) SetWheel(v Variant) {
	s.wheel = &v
	s.notify()
}

func (s *Selection) SetGriptape(v Variant) {
	s.griptape = &v
	s.notify()
}

func (s *Selection) SetTruckColor(color string) {
	s.truckColor = color
	s.notify()
}

func (s *Selection) SetBoltColor(color string) {
	s.boltColor = color
	s.notify()
}

func (s *Selection) Deck() (Variant, bool) {
	if s.deck == nil {
		return Variant{}, false
	}
	return *s.deck, true
}

func (s *Selection) Wheel() (Variant, bool) {
	if s.wheel == nil {
		return Variant{}, false
	}
	return *s.wheel, true
}

func (s *Selection) Griptape() (Variant, bool) {
	if s.griptape == nil {
		return Variant{}, false
	}
	return *s.griptape, true
}

func (s *Selection) TruckColor() string {
	return s.truckColor
}

func (s *Selection) BoltColor() string {
	return s.boltColor
}

// Complete - board đủ deck + wheel để submit/preview chưa
// (griptape/truck/bolt luôn có default, không block)
func (s *Selection) Complete() bool {
	return s.deck != nil && s.wheel != nil
}
