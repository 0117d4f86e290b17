package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// カート本体はセッションのCartStoreで、ここでは商品の引き当てと表示用の整形だけ行う。
type CartUsecase struct {
	productRepo repo.ProductRepository
	tr          *i18n.Translator
}

// DI
func NewCartUsecase(productRepo repo.ProductRepository, tr *i18n.Translator) *CartUsecase {
	return &CartUsecase{
		productRepo: productRepo,
		tr:          tr,
	}
}

type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items               []CartItemResponse `json:"items"`
	TotalItems          int                `json:"total_items"`
	TotalPrice          decimal.Decimal    `json:"total_price"`
	TotalPriceFormatted string             `json:"total_price_formatted"`
}

type AddCartInput struct {
	ProductID string
}

type UpdateCartItemInput struct {
	Quantity int
}

func (u *CartUsecase) GetCart(ctx context.Context, cart *CartStore, l i18n.Locale) CartResponse {
	return u.buildCartResponse(cart.Snapshot(), l)
}

// カートに追加（同一商品は数量+1）。
func (u *CartUsecase) AddToCart(ctx context.Context, cart *CartStore, l i18n.Locale, in AddCartInput) (CartResponse, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	cart.AddToCart(p)
	return u.buildCartResponse(cart.Snapshot(), l), nil
}

// 数量変更。0以下は削除、カートに無いIDはそのまま返す。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, cart *CartStore, l i18n.Locale, productID string, in UpdateCartItemInput) CartResponse {
	cart.UpdateQuantity(productID, in.Quantity)
	return u.buildCartResponse(cart.Snapshot(), l)
}

// 明細削除
func (u *CartUsecase) DeleteCartItem(ctx context.Context, cart *CartStore, l i18n.Locale, productID string) CartResponse {
	cart.RemoveFromCart(productID)
	return u.buildCartResponse(cart.Snapshot(), l)
}

func (u *CartUsecase) ClearCart(ctx context.Context, cart *CartStore, l i18n.Locale) CartResponse {
	cart.ClearCart()
	return u.buildCartResponse(cart.Snapshot(), l)
}

func (u *CartUsecase) buildCartResponse(snap model.CartSnapshot, l i18n.Locale) CartResponse {
	respItems := make([]CartItemResponse, 0, len(snap.Items))
	for _, it := range snap.Items {
		p := u.tr.Product(l, it.Product)
		respItems = append(respItems, CartItemResponse{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		})
	}

	return CartResponse{
		Items:               respItems,
		TotalItems:          snap.TotalItems,
		TotalPrice:          snap.TotalPrice,
		TotalPriceFormatted: u.tr.FormatPrice(l, snap.TotalPrice),
	}
}
