package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	tr          *i18n.Translator
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, tr *i18n.Translator) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		tr:          tr,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Category string
}

// 翻訳済みの商品
type ProductView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	FullDescription string          `json:"full_description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	PriceFormatted  string          `json:"price_formatted"`
	Image           string          `json:"image"`
	Category        model.Category  `json:"category"`
	CategoryLabel   string          `json:"category_label"`
}

type ProductListOutput struct {
	Items []ProductView `json:"items"`
	Total int           `json:"total"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, l i18n.Locale, in ListProductsInput) (ProductListOutput, error) {
	cat := model.Category(strings.TrimSpace(in.Category))
	if cat != "" && !cat.Valid() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	items, err := u.productRepo.List(ctx, repo.ProductListQuery{Category: cat})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	views := make([]ProductView, 0, len(items))
	for _, p := range items {
		v := u.view(l, p)
		// 一覧では長い説明は返さない
		v.FullDescription = ""
		views = append(views, v)
	}

	return ProductListOutput{Items: views, Total: len(views)}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, l i18n.Locale, productID string) (ProductView, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ProductView{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductView{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductView{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return u.view(l, p), nil
}

func (u *ProductUsecase) view(l i18n.Locale, p model.Product) ProductView {
	p = u.tr.Product(l, p)
	return ProductView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		Price:           p.Price,
		PriceFormatted:  u.tr.FormatPrice(l, p.Price),
		Image:           p.Image,
		Category:        p.Category,
		CategoryLabel:   u.tr.T(l, "products."+string(p.Category)),
	}
}
