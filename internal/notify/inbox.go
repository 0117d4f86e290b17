package notify

import (
	"context"
	"sync"

	"storefront/internal/domain/model"
)

const DefaultInboxSize = 50

// セッションごとの未読通知。あふれたら古いものから捨てる。
type Inbox struct {
	mu    sync.Mutex
	size  int
	items []model.Notification
}

func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Inbox{size: size}
}

func (b *Inbox) Notify(ctx context.Context, n model.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) >= b.size {
		b.items = b.items[len(b.items)-b.size+1:]
	}
	b.items = append(b.items, n)
}

// 溜まっている通知を古い順に取り出して空にする
func (b *Inbox) Drain() []model.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.items
	b.items = nil
	if out == nil {
		return []model.Notification{}
	}
	return out
}

func (b *Inbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
