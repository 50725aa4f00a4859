package posgrest

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark1979smith/farmison/internal/models"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore reads the shop's orders table. It never writes to it.
type OrderStore struct {
	orders *repository[models.Order]
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{orders: New[models.Order](db)}
}

func (s *OrderStore) GetPayableTotal(ctx context.Context, orderID int64) (float64, error) {
	order, err := s.orders.FirstBy(ctx, "order_id = ?", orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
		}
		return 0, err
	}
	return order.Total, nil
}
