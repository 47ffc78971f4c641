package storage

import (
	"time"

	"github.com/DerrickJaguar/rent/internal/domain/models"
)

// 首次访问空集合时写入的示例数据，内容保持确定性，便于演示和测试。

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedProperties() []models.Property {
	return []models.Property{
		{
			ID:          "1",
			Address:     "Andrews St",
			City:        "Kakiika",
			State:       "Mbarara",
			Type:        models.PropertyTypeApartment,
			RentAmount:  250,
			Status:      models.PropertyStatusOccupied,
			IsAvailable: false,
			TenantID:    "1",
			Bedrooms:    2,
			Bathrooms:   1,
			SquareFeet:  900,
			Description: "Beautiful 2-bedroom apartment in downtown",
			CreatedAt:   date(2024, time.September, 15),
			UpdatedAt:   date(2024, time.September, 15),
		},
		{
			ID:          "2",
			Address:     "456 Oak Ave",
			City:        "Brooklyn",
			State:       "NY",
			ZipCode:     "11201",
			Type:        models.PropertyTypeHouse,
			RentAmount:  3500,
			Status:      models.PropertyStatusAvailable,
			IsAvailable: true,
			Bedrooms:    3,
			Bathrooms:   2,
			SquareFeet:  1500,
			Description: "Spacious house with garden",
			CreatedAt:   date(2024, time.February, 1),
			UpdatedAt:   date(2024, time.February, 1),
		},
	}
}

func seedTenants() []models.Tenant {
	return []models.Tenant{
		{
			ID:              "1",
			FirstName:       "Mutamba",
			LastName:        "Sheenah",
			Email:           "sheenamutamba@email.com",
			Phone:           "0791111665",
			PropertyID:      "1",
			LeaseStartDate:  date(2025, time.July, 3),
			LeaseEndDate:    date(2025, time.September, 3),
			RentAmount:      60,
			SecurityDeposit: 30,
			IsActive:        true,
			EmergencyContact: models.EmergencyContact{
				Name:         "Jane Smith",
				Phone:        "(555) 987-6543",
				Relationship: "Spouse",
			},
			CreatedAt: date(2025, time.July, 3),
			UpdatedAt: date(2025, time.July, 3),
		},
	}
}

func seedPayments() []models.Payment {
	return []models.Payment{
		{
			ID:            "1",
			TenantID:      "1",
			PropertyID:    "1",
			Amount:        2500,
			PaymentDate:   date(2024, time.August, 1),
			DueDate:       date(2024, time.August, 1),
			PaymentMethod: models.PaymentMethodBankTransfer,
			Status:        models.PaymentStatusPaid,
			ReceiptNumber: "RCP-001",
			CreatedAt:     date(2024, time.August, 1),
		},
	}
}

func seedUser() *models.User {
	return &models.User{
		ID:        "1",
		Email:     "landlord@example.com",
		Name:      "Ngabirano Derrick",
		Role:      models.UserRoleLandlord,
		IsActive:  true,
		CreatedAt: date(2024, time.January, 1),
	}
}
