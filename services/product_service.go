package services

import (
	"context"

	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/minio"
	"github.com/heliomart/solarstore-go/repositories"
)

type ProductService struct {
	repos *repositories.Repos
}

func NewProductService(repos *repositories.Repos) *ProductService {
	return &ProductService{repos: repos}
}

func (s *ProductService) ListProducts(ctx context.Context, input dto.ProductSearchInput) (dto.ProductListResponse, error) {
	params := repositories.ProductSearchParams{
		Keyword:  input.Keyword,
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		InStock:  input.InStock,
		Sort:     input.Sort,
		Page:     input.Page,
		PageSize: input.PageSize,
	}

	products, total, err := s.repos.Product.ListProducts(params)
	if err != nil {
		return dto.ProductListResponse{}, err
	}

	views := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, dto.ProductView{
			Product:  p,
			ImageURL: minio.PresignedImageURL(ctx, p.ImageKey),
		})
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return dto.ProductListResponse{
		Products: views,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (dto.ProductView, error) {
	product, err := s.repos.Product.GetProductByID(id)
	if err != nil {
		return dto.ProductView{}, err
	}
	return dto.ProductView{
		Product:  product,
		ImageURL: minio.PresignedImageURL(ctx, product.ImageKey),
	}, nil
}
