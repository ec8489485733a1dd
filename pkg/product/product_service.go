package product

import (
	"WasteLess-API/domain"
	"WasteLess-API/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, page, limit int) ([]domain.ProductResponse, int64, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)

		CreateQRCode(ctx context.Context, req domain.CreateQRCodeRequest) (domain.QRCodeResponse, error)
		GetQRCodeByCode(ctx context.Context, code string) (domain.QRCodeResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	product := &entities.Product{
		ID:               uuid.New(),
		Name:             req.Name,
		Category:         req.Category,
		DefaultShelfLife: req.DefaultShelfLife,
		DefaultOpenLife:  req.DefaultOpenLife,
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) GetProducts(ctx context.Context, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.productRepository.GetProducts(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ProductResponse
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}

	return response, count, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) CreateQRCode(ctx context.Context, req domain.CreateQRCodeRequest) (domain.QRCodeResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domain.QRCodeResponse{}, domain.ErrParseUUID
	}

	if _, err := s.productRepository.GetProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QRCodeResponse{}, domain.ErrProductNotFound
		}
		return domain.QRCodeResponse{}, err
	}

	qr := &entities.QRCode{
		Code:      req.Code,
		ProductID: productID,
		BatchInfo: req.BatchInfo,
		InfoURL:   req.InfoURL,
	}

	if err := s.productRepository.CreateQRCode(ctx, qr); err != nil {
		return domain.QRCodeResponse{}, err
	}

	return toQRCodeResponse(qr), nil
}

func (s *productService) GetQRCodeByCode(ctx context.Context, code string) (domain.QRCodeResponse, error) {
	qr, err := s.productRepository.GetQRCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QRCodeResponse{}, domain.ErrQRCodeNotFound
		}
		return domain.QRCodeResponse{}, err
	}

	return toQRCodeResponse(qr), nil
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:               product.ID.String(),
		Name:             product.Name,
		Category:         product.Category,
		DefaultShelfLife: product.DefaultShelfLife,
		DefaultOpenLife:  product.DefaultOpenLife,
	}
}

func toQRCodeResponse(qr *entities.QRCode) domain.QRCodeResponse {
	return domain.QRCodeResponse{
		Code:      qr.Code,
		ProductID: qr.ProductID.String(),
		BatchInfo: qr.BatchInfo,
		InfoURL:   qr.InfoURL,
	}
}
