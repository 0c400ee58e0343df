package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/heliomart/solarstore-go/dto"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupProductServiceMocks(t *testing.T) (*ProductService, *mock_repositories.MockProductRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProduct := mock_repositories.NewMockProductRepo(ctrl)
	repos := &repositories.Repos{
		Product: mockProduct,
	}
	svc := NewProductService(repos)
	return svc, mockProduct
}

func TestListProducts_PassesFiltersAndDefaultsPaging(t *testing.T) {
	svc, mockProduct := setupProductServiceMocks(t)

	products := []models.Product{
		{PID: 1, Name: "Panel 450W", Category: string(models.CategoryPanels), SalePrice: 50000},
	}
	mockProduct.EXPECT().ListProducts(gomock.Any()).DoAndReturn(
		func(params repositories.ProductSearchParams) ([]models.Product, int64, error) {
			assert.Equal(t, "panel", params.Keyword)
			assert.Equal(t, "solar-panels", params.Category)
			assert.True(t, params.InStock)
			return products, 1, nil
		})

	resp, err := svc.ListProducts(context.Background(), dto.ProductSearchInput{
		Keyword:  "panel",
		Category: "solar-panels",
		InStock:  true,
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Products, 1)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, mockProduct := setupProductServiceMocks(t)
	mockProduct.EXPECT().GetProductByID(uint(99)).Return(models.Product{}, gorm.ErrRecordNotFound)

	_, err := svc.GetProduct(context.Background(), 99)
	assert.Error(t, err)
}
