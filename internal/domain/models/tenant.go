package models

import "time"

// EmergencyContact 紧急联系人
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Tenant represents a person leasing one of the landlord's properties.
// At most one active tenant may reference a given property; the occupancy
// service enforces that, not the store.
type Tenant struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	PropertyID       string           `json:"propertyId"`
	LeaseStartDate   time.Time        `json:"leaseStartDate"`
	LeaseEndDate     time.Time        `json:"leaseEndDate"`
	RentAmount       float64          `json:"rentAmount"`
	SecurityDeposit  float64          `json:"securityDeposit"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Notes            string           `json:"notes,omitempty"`
	IsActive         bool             `json:"isActive"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// FullName 租户全名
func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}
