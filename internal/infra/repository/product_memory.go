package repository

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var seedCatalog []byte

type catalogFile struct {
	Products []model.Product `yaml:"products"`
}

// 埋め込みのカタログを読む
func LoadSeedCatalog() ([]model.Product, error) {
	return ParseCatalog(seedCatalog)
}

// YAMLのカタログを読む
func ParseCatalog(data []byte) ([]model.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return f.Products, nil
}

// 起動時に渡された商品をそのまま順番どおりに返す。
type ProductMemoryRepository struct {
	products []model.Product
	byID     map[string]int
}

// DI
func NewProductMemoryRepository(products []model.Product) (*ProductMemoryRepository, error) {
	r := &ProductMemoryRepository{
		products: make([]model.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}

	return r, nil
}

func (r *ProductMemoryRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return r.products[i], nil
}

func validateProduct(p model.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %q: price must be >= 0", p.ID)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("product %q: unknown category %q", p.ID, p.Category)
	}
	return nil
}
