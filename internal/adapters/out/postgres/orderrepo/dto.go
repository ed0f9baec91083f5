// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their string form so the tables stay readable and
// the raw-SQL query handlers can filter on them directly.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	OverallStatus    string    `gorm:"type:varchar(32);not null;index"`
	RejectionMessage string
	PaymentStatus    string `gorm:"type:varchar(32);not null"`
	TotalAmount      float64
	Address          AddressDTO     `gorm:"embedded;embeddedPrefix:address_"`
	Items            []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// OrderItemDTO represents the database structure for persisting order items.
// Position preserves placement order; item sets never change after placement,
// only item fields do.
type OrderItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Position         int       `gorm:"not null"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null"`
	ProductName      string    `gorm:"type:varchar(255);not null"`
	Price            float64
	Quantity         int        `gorm:"not null"`
	Status           string     `gorm:"type:varchar(32);not null;index"`
	StatusUpdatedBy  *uuid.UUID `gorm:"type:uuid"`
	RejectionMessage string
	PreparationTime  *float64
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))

	for position, item := range domainItems {
		var updatedBy *uuid.UUID
		if id := item.StatusUpdatedBy(); id != nil {
			raw := id.Bytes()
			updatedBy = &raw
		}

		items = append(items, OrderItemDTO{
			ID:               item.ID().Bytes(),
			OrderID:          orderID,
			Position:         position,
			ProductID:        item.ProductID().Bytes(),
			ProductName:      item.ProductName(),
			Price:            item.Price(),
			Quantity:         item.Quantity(),
			Status:           item.Status().String(),
			StatusUpdatedBy:  updatedBy,
			RejectionMessage: item.RejectionMessage(),
			PreparationTime:  item.PreparationTime(),
		})
	}

	address := aggregate.Address()
	return OrderDTO{
		ID:               orderID,
		UserID:           aggregate.UserID().Bytes(),
		OverallStatus:    aggregate.OverallStatus().String(),
		RejectionMessage: aggregate.RejectionMessage(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		TotalAmount:      aggregate.TotalAmount(),
		Address: AddressDTO{
			Street:     address.Street,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		Items:     items,
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	overallStatus, err := order.StatusFromString(dto.OverallStatus)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		overallStatus,
		dto.RejectionMessage,
		paymentStatus,
		dto.TotalAmount,
		order.Address{
			Street:     dto.Address.Street,
			City:       dto.Address.City,
			State:      dto.Address.State,
			PostalCode: dto.Address.PostalCode,
			Country:    dto.Address.Country,
		},
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// itemToDomain converts an order item DTO to a domain entity.
func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ItemStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var updatedBy *kernel.UUID
	if dto.StatusUpdatedBy != nil {
		uID, byErr := kernel.UUIDFromBytes((*dto.StatusUpdatedBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		updatedBy = &uID
	}

	return order.RestoreOrderItem(
		id,
		productID,
		dto.ProductName,
		dto.Price,
		dto.Quantity,
		status,
		updatedBy,
		dto.RejectionMessage,
		dto.PreparationTime,
	)
}
