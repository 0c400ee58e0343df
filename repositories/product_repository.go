package repositories

import (
	"github.com/heliomart/solarstore-go/db"
	"github.com/heliomart/solarstore-go/models"
)

type ProductSearchParams struct {
	Keyword  string
	Category string
	MinPrice float64
	MaxPrice float64
	InStock  bool
	Sort     string
	Page     int
	PageSize int
}

type ProductRepo interface {
	ListProducts(params ProductSearchParams) ([]models.Product, int64, error)
	GetProductByID(id uint) (models.Product, error)
	GetProductsByIDs(ids []uint) ([]models.Product, error)
	SaveProduct(product *models.Product) error
}

type DBProductRepo struct{}

func (r *DBProductRepo) ListProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := db.DB.Model(&models.Product{}).Where("active = ?", true)

	if params.Keyword != "" {
		like := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.MinPrice > 0 {
		query = query.Where("sale_price >= ?", params.MinPrice)
	}
	if params.MaxPrice > 0 {
		query = query.Where("sale_price <= ?", params.MaxPrice)
	}
	if params.InStock {
		query = query.Where("stock > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch params.Sort {
	case "price_asc":
		query = query.Order("sale_price asc")
	case "price_desc":
		query = query.Order("sale_price desc")
	default:
		query = query.Order("create_at desc")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var products []models.Product
	err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&products).Error
	return products, total, err
}

func (r *DBProductRepo) GetProductByID(id uint) (models.Product, error) {
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (r *DBProductRepo) GetProductsByIDs(ids []uint) ([]models.Product, error) {
	var products []models.Product
	err := db.DB.Where("p_id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *DBProductRepo) SaveProduct(product *models.Product) error {
	return db.DB.Save(product).Error
}
