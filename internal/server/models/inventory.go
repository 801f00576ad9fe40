package models

import "time"

// InventoryCategory enumerates the stock categories of a printing shop.
type InventoryCategory string

const (
	CategoryPaper     InventoryCategory = "paper"
	CategoryInk       InventoryCategory = "ink"
	CategorySubstrate InventoryCategory = "substrate"
	CategoryEquipment InventoryCategory = "equipment"
	CategoryFinishing InventoryCategory = "finishing"
	CategoryPackaging InventoryCategory = "packaging"
	CategoryOther     InventoryCategory = "other"
)

// Valid reports whether c is a known inventory category.
func (c InventoryCategory) Valid() bool {
	switch c {
	case CategoryPaper, CategoryInk, CategorySubstrate, CategoryEquipment,
		CategoryFinishing, CategoryPackaging, CategoryOther:
		return true
	}
	return false
}

// InventoryItem is a stocked consumable or piece of equipment.
type InventoryItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	SKU         string            `json:"sku"`
	Category    InventoryCategory `json:"category"`
	Quantity    int               `json:"quantity"`
	MinStock    int               `json:"minStock"`
	Unit        string            `json:"unit"`
	UnitPrice   float64           `json:"unitPrice"`
	Supplier    string            `json:"supplier,omitempty"`
	Location    string            `json:"location,omitempty"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// LowStock reports whether the item is at or below its minimum stock level.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStock
}
