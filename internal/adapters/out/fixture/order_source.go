// Package fixture provides the sample-dataset order source. It stands in for
// a real order backend: every fetch pauses for a configurable simulated delay
// and then returns the same fixed set of eight orders, all in new status.
package fixture

import (
	"context"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// sampleRecord is the raw shape of a fixture order before domain validation.
type sampleRecord struct {
	id        string
	name      string
	phone     string
	address   string
	items     []sampleItem
	createdAt string
}

type sampleItem struct {
	name     string
	quantity int
	price    int
}

// sampleOrders is the fixed working set handed to the courier.
// Prices are in minor currency units (UZS, no decimals).
func sampleOrders() []sampleRecord {
	return []sampleRecord{
		{
			id: "1", name: "Umarov Sardor", phone: "+998 90 123 45 67",
			address: "Toshkent, Chilonzor tumani, 7-kvartal",
			items: []sampleItem{
				{"Lavash Mol go'shtli", 2, 28000},
				{"Coca-Cola 1.5L", 1, 15000},
			},
			createdAt: "2023-10-15T10:30:00Z",
		},
		{
			id: "2", name: "Karimova Nilufar", phone: "+998 94 765 43 21",
			address: "Toshkent, Yunusobod tumani, 19-kvartal",
			items: []sampleItem{
				{"Osh (1 porsiya)", 3, 45000},
				{"Non", 2, 5000},
				{"Pepsi 1L", 1, 12000},
			},
			createdAt: "2023-10-15T11:15:00Z",
		},
		{
			id: "3", name: "Rasulov Javohir", phone: "+998 99 888 77 66",
			address: "Toshkent, Mirobod tumani, Hamid Olimjon ko'chasi",
			items: []sampleItem{
				{"Pitsa Margarita (katta)", 1, 80000},
				{"Fri kartoshka", 2, 18000},
			},
			createdAt: "2023-10-15T12:45:00Z",
		},
		{
			id: "4", name: "Ahmedov Nodir", phone: "+998 91 234 56 78",
			address: "Toshkent, Sergeli tumani, 3-mavze",
			items: []sampleItem{
				{"Chizburger", 3, 30000},
				{"Sprite 1L", 1, 12000},
			},
			createdAt: "2023-10-15T13:20:00Z",
		},
		{
			id: "5", name: "Abdullayeva Gulnora", phone: "+998 93 456 78 90",
			address: "Toshkent, Shayxontohur tumani, Labzak ko'chasi",
			items: []sampleItem{
				{"Sho'rva (1 porsiya)", 2, 35000},
				{"Somsa go'shtli", 5, 15000},
			},
			createdAt: "2023-10-15T14:10:00Z",
		},
		{
			id: "6", name: "Qodirov Bekzod", phone: "+998 95 678 90 12",
			address: "Toshkent, Olmazor tumani, 5-kvartal",
			items: []sampleItem{
				{"Tandir kabob", 2, 60000},
				{"Achiq-chuchuk salat", 1, 20000},
				{"Suv 1L", 2, 5000},
			},
			createdAt: "2023-10-15T15:30:00Z",
		},
		{
			id: "7", name: "Aliyeva Mohira", phone: "+998 97 890 12 34",
			address: "Toshkent, Mirzo Ulug'bek tumani, 15-mavze",
			items: []sampleItem{
				{"Norin (porsiya)", 1, 45000},
				{"Choy set", 1, 15000},
			},
			createdAt: "2023-10-15T16:45:00Z",
		},
		{
			id: "8", name: "Xoliqov Rustam", phone: "+998 98 012 34 56",
			address: "Toshkent, Bektemir tumani, Sputnik mavzesi",
			items: []sampleItem{
				{"Manti (5 dona)", 2, 40000},
				{"Qatiq", 1, 10000},
			},
			createdAt: "2023-10-15T17:20:00Z",
		},
	}
}

// OrderSource implements ports.OrderSource over the sample dataset.
type OrderSource struct {
	delay time.Duration
}

// NewOrderSource creates a fixture source that pauses for delay on every
// fetch before returning the dataset. A zero or negative delay disables the
// pause.
func NewOrderSource(delay time.Duration) *OrderSource {
	return &OrderSource{delay: delay}
}

// FetchOrders returns the eight sample orders in their fixed order after the
// simulated delay. A cancelled context abandons the fetch: the caller gets
// ctx.Err() and no orders, matching how an abandoned network call behaves.
func (s *OrderSource) FetchOrders(ctx context.Context) ([]*order.Order, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	records := sampleOrders()
	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		aggregate, err := buildOrder(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func buildOrder(record sampleRecord) (*order.Order, error) {
	id, err := kernel.NewOrderID(record.id)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(record.name, record.phone)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(record.address)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(record.items))
	for _, raw := range record.items {
		item, itemErr := order.NewItem(raw.name, raw.quantity, raw.price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	createdAt, err := time.Parse(time.RFC3339, record.createdAt)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, customer, address, items, createdAt)
}
