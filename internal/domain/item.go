package domain

import "time"

type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateItemRequest struct {
	Name  string `json:"name" validate:"required,max=190"`
	Price *int64 `json:"price" validate:"required,min=0"`
}

type UpdateItemRequest struct {
	ID    string  `json:"-"`
	Name  *string `json:"name" validate:"omitempty,min=1,max=190"`
	Price *int64  `json:"price" validate:"omitempty,min=0"`
}

// ItemPage representa uma página da listagem de itens
type ItemPage struct {
	Items      []*Item `json:"items"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalItems int     `json:"total_items"`
	TotalPages int     `json:"total_pages"`
}
