// Package ordersource provides the gorm-backed implementation of the order
// source, so a real database can replace the fixture dataset without touching
// view logic. It handles the conversion between order aggregates and their
// relational representation.
package ordersource

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for order records.
// Items live in their own table and are loaded alongside the order.
type OrderDTO struct {
	ID        string      `gorm:"primaryKey"`
	Customer  CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Address   string
	Status    string    `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
	Items     []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the contact record embedded within the order table.
type CustomerDTO struct {
	Name  string
	Phone string
}

// ItemDTO represents one order line in the order_items table.
type ItemDTO struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	OrderID  string `gorm:"index"`
	Position int
	Name     string
	Quantity int
	Price    int
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Item positions record the original line order so reads preserve it.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:  aggregate.ID().String(),
			Position: i,
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderDTO{
		ID: aggregate.ID().String(),
		Customer: CustomerDTO{
			Name:  aggregate.Customer().Name(),
			Phone: aggregate.Customer().Phone(),
		},
		Address:   aggregate.Address().String(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		Items:     itemDTOs,
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, preserving its stored status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customer, address, items, status, dto.CreatedAt)
}
