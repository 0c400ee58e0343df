package dto

import "github.com/heliomart/solarstore-go/models"

type ProductSearchInput struct {
	Keyword  string  `form:"keyword"`
	Category string  `form:"categoryName"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	InStock  bool    `form:"in_stock"`
	Sort     string  `form:"sort" binding:"omitempty,oneof=price_asc price_desc newest"`
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}

type ProductView struct {
	Product  models.Product `json:"product"`
	ImageURL string         `json:"image_url"`
}

type ProductListResponse struct {
	Products []ProductView `json:"products"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
