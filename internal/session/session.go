package session

import (
	"sync"
	"time"

	"storefront/internal/i18n"
	"storefront/internal/notify"
	"storefront/internal/usecase"
)

// ブラウザ1つ分の状態。カートは他のセッションと共有しない。
type Session struct {
	ID       string
	Cart     *usecase.CartStore
	Checkout *usecase.CheckoutFlow
	Inbox    *notify.Inbox

	mu         sync.Mutex
	locale     i18n.Locale // 明示的に選ばれた言語（空なら未選択）
	lastLocale i18n.Locale // 直近のリクエストで使った言語
	lastSeen   time.Time
}

func (s *Session) Locale() (i18n.Locale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale, s.locale != ""
}

func (s *Session) SetLocale(l i18n.Locale) {
	s.mu.Lock()
	s.locale = l
	s.lastLocale = l
	s.mu.Unlock()
}

// 通知を出すときの言語
func (s *Session) CurrentLocale() i18n.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLocale
}

func (s *Session) UseLocale(l i18n.Locale) {
	s.mu.Lock()
	s.lastLocale = l
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
