package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
	"github.com/DerrickJaguar/rent/pkg/clock"
)

// 测试用固定时间：2024-01-25
var testNow = time.Date(2024, time.January, 25, 10, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey: "test-secret",
	}
}

// newTestStore 构造内存后端的存储，预置给定集合，避免触发示例数据
func newTestStore(t *testing.T, now time.Time, properties []models.Property, tenants []models.Tenant, payments []models.Payment) (*storage.Store, *storage.MemoryBackend) {
	t.Helper()

	backend := storage.NewMemoryBackend()
	store := storage.NewStore(backend, clock.Fixed(now))

	require.NoError(t, store.SaveProperties(properties))
	require.NoError(t, store.SaveTenants(tenants))
	require.NoError(t, store.SavePayments(payments))
	require.NoError(t, store.SaveNotifications([]models.Notification{}))
	return store, backend
}

func fixtureProperty(id string, status models.PropertyStatus, tenantID string) models.Property {
	p := models.Property{
		ID:         id,
		Address:    "Plot " + id + " Main St",
		City:       "Mbarara",
		Type:       models.PropertyTypeApartment,
		RentAmount: 250,
		Status:     status,
		TenantID:   tenantID,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
	p.Normalize()
	return p
}

func fixtureTenant(id, propertyID string, active bool) models.Tenant {
	return models.Tenant{
		ID:             id,
		FirstName:      "Tenant",
		LastName:       id,
		Email:          "tenant" + id + "@example.com",
		PropertyID:     propertyID,
		LeaseStartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		LeaseEndDate:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		RentAmount:     250,
		IsActive:       active,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	}
}

func fixturePayment(id, tenantID string, amount float64, paymentDate time.Time, status models.PaymentStatus) models.Payment {
	return models.Payment{
		ID:            id,
		TenantID:      tenantID,
		PropertyID:    "1",
		Amount:        amount,
		PaymentDate:   paymentDate,
		DueDate:       paymentDate,
		PaymentMethod: models.PaymentMethodCash,
		Status:        status,
		ReceiptNumber: "RCP-" + id,
		CreatedAt:     paymentDate,
	}
}
