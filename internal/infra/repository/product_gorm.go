package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

// productsテーブルからカタログを読む（書き込みはしない）
type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 表示順で返す。categoryがあれば絞り込む。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	if err := tx.Order("sort_order asc").Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return []model.Product{}, err
		}
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// テーブルが空なら初期カタログを入れる。入れた件数を返す。
func (r *ProductGormRepository) SeedIfEmpty(ctx context.Context, products []model.Product) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	if n > 0 || len(products) == 0 {
		return 0, nil
	}

	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return 0, err
		}
	}
	if err := r.db.WithContext(ctx).Create(&products).Error; err != nil {
		return 0, err
	}
	return len(products), nil
}
