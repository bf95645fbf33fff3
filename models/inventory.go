package models

import (
	"fmt"
	"time"
)

// InventoryItem represents a stocked supply item.
type InventoryItem struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category" json:"category"`
	Quantity        int       `bson:"quantity" json:"quantity"`
	MinimumQuantity int       `bson:"minimumQuantity" json:"minimumQuantity"`
	Supplier        string    `bson:"supplier" json:"supplier"`
	LastRestocked   time.Time `bson:"lastRestocked" json:"lastRestocked"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InventoryInput carries a create/update payload for an inventory item.
type InventoryInput struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Quantity        int    `json:"quantity"`
	MinimumQuantity int    `json:"minimumQuantity"`
	Supplier        string `json:"supplier"`
	LastRestocked   string `json:"lastRestocked"`
}

func (in InventoryInput) Validate() (*InventoryItem, error) {
	if l := len(in.Name); l < 2 || l > 100 {
		return nil, fmt.Errorf("name must be between 2 and 100 characters")
	}
	if l := len(in.Category); l < 2 || l > 50 {
		return nil, fmt.Errorf("category must be between 2 and 50 characters")
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}
	if in.MinimumQuantity < 0 {
		return nil, fmt.Errorf("minimumQuantity must not be negative")
	}
	if l := len(in.Supplier); l < 2 || l > 100 {
		return nil, fmt.Errorf("supplier must be between 2 and 100 characters")
	}
	restocked, err := ParseDate(in.LastRestocked)
	if err != nil {
		return nil, fmt.Errorf("lastRestocked: %w", err)
	}
	return &InventoryItem{
		Name:            in.Name,
		Category:        in.Category,
		Quantity:        in.Quantity,
		MinimumQuantity: in.MinimumQuantity,
		Supplier:        in.Supplier,
		LastRestocked:   restocked,
	}, nil
}
