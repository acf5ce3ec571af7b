package ordersource

import (
	"context"

	"courier/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderSource implements ports.OrderSource over a relational database.
// The console only reads from the source; writing is provided for seeding
// tooling and tests.
type GormOrderSource struct {
	db *gorm.DB
}

// NewGormOrderSource creates a new GORM order source.
func NewGormOrderSource(db *gorm.DB) *GormOrderSource {
	return &GormOrderSource{db: db}
}

// Migrate creates or updates the orders and order_items tables.
func (s *GormOrderSource) Migrate() error {
	return s.db.AutoMigrate(&OrderDTO{}, &ItemDTO{})
}

// FetchOrders returns all stored orders in creation order, each with its
// line items in their original order.
func (s *GormOrderSource) FetchOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position")
		}).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// Add saves a new order with its items.
func (s *GormOrderSource) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return s.db.WithContext(ctx).Create(&dto).Error
}
