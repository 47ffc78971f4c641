package models

import "time"

// PropertyType 房源类型
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyStatus 房源状态
type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusOccupied    PropertyStatus = "occupied"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
)

// Property represents a rental unit owned by the landlord.
// Status is the authoritative occupancy field; IsAvailable is kept in the
// stored JSON for compatibility with the older shape and is re-derived by
// Normalize on every load.
type Property struct {
	ID          string         `json:"id"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zipCode"`
	Type        PropertyType   `json:"type"`
	RentAmount  float64        `json:"rentAmount"`
	Bedrooms    int            `json:"bedrooms,omitempty"`
	Bathrooms   int            `json:"bathrooms,omitempty"`
	SquareFeet  int            `json:"squareFeet,omitempty"`
	Status      PropertyStatus `json:"status"`
	IsAvailable bool           `json:"isAvailable"`
	TenantID    string         `json:"tenantId,omitempty"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ValidPropertyType 检查房源类型是否合法
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial:
		return true
	}
	return false
}

// Normalize reconciles the two legacy shapes (status enum vs isAvailable
// boolean) into the canonical one. A record written by the old pages may
// carry only one of the two fields.
func (p *Property) Normalize() {
	if p.Status == "" {
		if p.IsAvailable {
			p.Status = PropertyStatusAvailable
		} else {
			p.Status = PropertyStatusOccupied
		}
	}
	p.IsAvailable = p.Status == PropertyStatusAvailable
	if p.Status != PropertyStatusOccupied {
		p.TenantID = ""
	}
}

// Occupied 房源是否已被租住
func (p *Property) Occupied() bool {
	return p.Status == PropertyStatusOccupied
}
