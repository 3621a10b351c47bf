package dtos

type InventoryFilter struct {
	ProductName string `form:"product_name"`
	Reason      string `form:"reason"`
	DateFrom    string `form:"date_from"`
	DateTo      string `form:"date_to"`
	Page        int    `form:"page,default=1"`
	PageSize    int    `form:"page_size,default=10"`
}

type RestockInput struct {
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Note        *string `json:"note,omitempty"`
}
