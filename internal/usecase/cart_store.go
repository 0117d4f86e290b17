package usecase

import (
	"sync"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

// カート操作の種類（observerへ渡す）
type CartOp string

const (
	CartOpAdd    CartOp = "add"
	CartOpUpdate CartOp = "update"
	CartOpRemove CartOp = "remove"
	CartOpClear  CartOp = "clear"
)

// 変更のたびに呼ばれる。中からCartStoreを変更しないこと。
type CartObserver func(op CartOp, snap model.CartSnapshot)

// CartStore はセッション1つ分のカート。
// 状態を変えるのはこの型のメソッドだけで、どの操作もエラーを返さない。
type CartStore struct {
	// 変更と通知をまとめて直列にする
	emitMu sync.Mutex

	mu        sync.RWMutex
	items     []model.CartItem
	observers map[int]CartObserver
	nextObs   int
}

func NewCartStore() *CartStore {
	return &CartStore{observers: map[int]CartObserver{}}
}

// 既にあれば数量+1、無ければ末尾に数量1で追加
func (s *CartStore) AddToCart(p model.Product) {
	s.mutate(CartOpAdd, func(items []model.CartItem) ([]model.CartItem, bool) {
		if i := indexOf(items, p.ID); i >= 0 {
			items[i].Quantity++
			return items, true
		}
		return append(items, model.CartItem{Product: p, Quantity: 1}), true
	})
}

// 0以下なら削除。無いIDは何もしない。
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.remove(CartOpUpdate, productID)
		return
	}
	s.mutate(CartOpUpdate, func(items []model.CartItem) ([]model.CartItem, bool) {
		i := indexOf(items, productID)
		if i < 0 || items[i].Quantity == quantity {
			return items, false
		}
		items[i].Quantity = quantity
		return items, true
	})
}

func (s *CartStore) RemoveFromCart(productID string) {
	s.remove(CartOpRemove, productID)
}

// 空でも必ず通知する
func (s *CartStore) ClearCart() {
	s.mutate(CartOpClear, func(items []model.CartItem) ([]model.CartItem, bool) {
		return nil, true
	})
}

// 追加順のコピー
func (s *CartStore) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyItems()
}

func (s *CartStore) TotalItems() int {
	return s.Snapshot().TotalItems
}

func (s *CartStore) TotalPrice() decimal.Decimal {
	return s.Snapshot().TotalPrice
}

// 明細と合計を同じ時点で取る
func (s *CartStore) Snapshot() model.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.NewCartSnapshot(s.copyItems())
}

// 戻り値を呼ぶと解除
func (s *CartStore) Subscribe(o CartObserver) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = o
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *CartStore) remove(op CartOp, productID string) {
	s.mutate(op, func(items []model.CartItem) ([]model.CartItem, bool) {
		i := indexOf(items, productID)
		if i < 0 {
			return items, false
		}
		return append(items[:i], items[i+1:]...), true
	})
}

func (s *CartStore) mutate(op CartOp, f func([]model.CartItem) ([]model.CartItem, bool)) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	items, changed := f(s.items)
	s.items = items
	if !changed && op != CartOpClear {
		s.mu.Unlock()
		return
	}
	snap := model.NewCartSnapshot(s.copyItems())
	obs := make([]CartObserver, 0, len(s.observers))
	for i := 0; i < s.nextObs; i++ {
		if o, ok := s.observers[i]; ok {
			obs = append(obs, o)
		}
	}
	s.mu.Unlock()

	for _, o := range obs {
		o(op, snap)
	}
}

func (s *CartStore) copyItems() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func indexOf(items []model.CartItem, productID string) int {
	for i, it := range items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}
