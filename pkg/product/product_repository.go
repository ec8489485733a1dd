package product

import (
	"WasteLess-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetProducts(ctx context.Context, page, limit int) ([]*entities.Product, int64, error)

		CreateQRCode(ctx context.Context, qr *entities.QRCode) error
		GetQRCodeByCode(ctx context.Context, code string) (*entities.QRCode, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProducts(ctx context.Context, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productRepository) CreateQRCode(ctx context.Context, qr *entities.QRCode) error {
	return r.db.WithContext(ctx).Create(qr).Error
}

func (r *productRepository) GetQRCodeByCode(ctx context.Context, code string) (*entities.QRCode, error) {
	var qr entities.QRCode
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("code = ?", code).
		First(&qr).Error; err != nil {
		return nil, err
	}
	return &qr, nil
}
