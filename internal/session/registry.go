package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// 新しいセッションの中身を作る
type Builder func(id string) *Session

// Registry はセッションIDごとのSessionを持つ。
// 一定時間使われなかったものはSweepで破棄する。
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	build Builder
	ttl   time.Duration
	now   func() time.Time
	log   *zap.Logger

	// 件数が変わったとき（metrics用）
	OnCountChange func(n int)
}

// DI
func NewRegistry(build Builder, ttl time.Duration, log *zap.Logger) *Registry {
	return &Registry{
		sessions: map[string]*Session{},
		build:    build,
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// テスト用
func (r *Registry) SetNow(now func() time.Time) {
	r.now = now
}

// 無ければ作る。2つ目の戻り値は新規作成かどうか。
func (r *Registry) GetOrCreate(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	created := false
	if !ok {
		s = r.build(id)
		r.sessions[id] = s
		created = true
	}
	n := len(r.sessions)
	r.mu.Unlock()

	s.touch(r.now())
	if created {
		r.log.Debug("session created", zap.String("session_id", id))
		r.countChanged(n)
	}
	return s, created
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		s.touch(r.now())
	}
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// 期限切れのセッションを破棄して件数を返す
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	for _, s := range expired {
		s.Checkout.Close()
		r.log.Debug("session expired", zap.String("session_id", s.ID))
	}
	if len(expired) > 0 {
		r.countChanged(n)
	}
	return len(expired)
}

// ctxが終わるまで定期的にSweepする
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(); n > 0 {
				r.log.Info("expired sessions swept", zap.Int("count", n))
			}
		}
	}
}

// シャットダウン時
func (r *Registry) CloseAll() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = map[string]*Session{}
	r.mu.Unlock()

	for _, s := range all {
		s.Checkout.Close()
	}
	r.countChanged(0)
}

func (r *Registry) countChanged(n int) {
	if r.OnCountChange != nil {
		r.OnCountChange(n)
	}
}
