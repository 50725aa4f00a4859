package models

// Order is the shop's order row. This service only reads the payable total.
type Order struct {
	ID    int64   `gorm:"column:order_id;primaryKey"`
	Total float64 `gorm:"column:total"`
}

func (Order) TableName() string {
	return "orders"
}
