package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DerrickJaguar/rent/internal/domain/models"
)

func TestAssignTenantMarksPropertyOccupied(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusAvailable, "")},
		[]models.Tenant{fixtureTenant("t1", "p1", true)},
		nil)
	svc := NewOccupancyService(store, testConfig())

	require.NoError(t, svc.AssignTenant("p1", "t1"))

	properties, err := store.GetProperties()
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusOccupied, properties[0].Status)
	assert.False(t, properties[0].IsAvailable)
	assert.Equal(t, "t1", properties[0].TenantID)
	assert.Equal(t, testNow, properties[0].UpdatedAt)
}

func TestAssignTenantBindsTenantRecord(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusAvailable, "")},
		[]models.Tenant{fixtureTenant("t1", "", true)},
		nil)
	svc := NewOccupancyService(store, testConfig())

	require.NoError(t, svc.AssignTenant("p1", "t1"))

	tenants, err := store.GetTenants()
	require.NoError(t, err)
	assert.Equal(t, "p1", tenants[0].PropertyID)
	assert.True(t, tenants[0].IsActive)
}

func TestAssignTenantUnknownTenant(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusAvailable, "")},
		nil, nil)
	svc := NewOccupancyService(store, testConfig())

	assert.ErrorIs(t, svc.AssignTenant("p1", "missing"), ErrTenantNotFound)
}

func TestAssignTenantRejectsOccupiedProperty(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusOccupied, "t1")},
		[]models.Tenant{
			fixtureTenant("t1", "p1", true),
			fixtureTenant("t2", "", true),
		},
		nil)
	svc := NewOccupancyService(store, testConfig())

	err := svc.AssignTenant("p1", "t2")
	assert.ErrorIs(t, err, ErrPropertyOccupied)

	// 拒绝之后原绑定保持不变
	properties, err := store.GetProperties()
	require.NoError(t, err)
	assert.Equal(t, "t1", properties[0].TenantID)
}

func TestAssignTenantIsIdempotentForSameTenant(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusOccupied, "t1")},
		[]models.Tenant{fixtureTenant("t1", "p1", true)},
		nil)
	svc := NewOccupancyService(store, testConfig())

	assert.NoError(t, svc.AssignTenant("p1", "t1"))
}

func TestAssignTenantDetectsTenantSideConflict(t *testing.T) {
	// 房源侧没有绑定，但另一个在租租户已经指向它
	property := fixtureProperty("p1", models.PropertyStatusAvailable, "")
	store, _ := newTestStore(t, testNow,
		[]models.Property{property},
		[]models.Tenant{
			fixtureTenant("t1", "p1", true),
			fixtureTenant("t2", "", true),
		},
		nil)
	svc := NewOccupancyService(store, testConfig())

	err := svc.AssignTenant("p1", "t2")
	assert.ErrorIs(t, err, ErrPropertyOccupied)
}

func TestAssignTenantUnknownProperty(t *testing.T) {
	store, _ := newTestStore(t, testNow, nil, nil, nil)
	svc := NewOccupancyService(store, testConfig())

	err := svc.AssignTenant("missing", "t1")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestReleaseTenantRestoresAvailability(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusOccupied, "t1")},
		nil, nil)
	svc := NewOccupancyService(store, testConfig())

	require.NoError(t, svc.ReleaseTenant("p1"))

	properties, err := store.GetProperties()
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusAvailable, properties[0].Status)
	assert.True(t, properties[0].IsAvailable)
	assert.Empty(t, properties[0].TenantID)
}

func TestReleaseTenantClearsTenantBinding(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusOccupied, "t1")},
		[]models.Tenant{fixtureTenant("t1", "p1", true)},
		nil)
	svc := NewOccupancyService(store, testConfig())

	require.NoError(t, svc.ReleaseTenant("p1"))

	tenants, err := store.GetTenants()
	require.NoError(t, err)
	assert.Empty(t, tenants[0].PropertyID)
	// 解绑不代表停租，停租走租户服务
	assert.True(t, tenants[0].IsActive)
}

func TestReleaseTenantIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusAvailable, "")},
		nil, nil)
	svc := NewOccupancyService(store, testConfig())

	assert.NoError(t, svc.ReleaseTenant("p1"))
	assert.NoError(t, svc.ReleaseTenant("p1"))
}

func TestReleaseTenantUnknownProperty(t *testing.T) {
	store, _ := newTestStore(t, testNow, nil, nil, nil)
	svc := NewOccupancyService(store, testConfig())

	assert.ErrorIs(t, svc.ReleaseTenant("missing"), ErrPropertyNotFound)
}

func TestTransferTenantMovesBinding(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{
			fixtureProperty("p1", models.PropertyStatusOccupied, "t1"),
			fixtureProperty("p2", models.PropertyStatusAvailable, ""),
		},
		[]models.Tenant{fixtureTenant("t1", "p1", true)},
		nil)
	svc := NewOccupancyService(store, testConfig())

	require.NoError(t, svc.TransferTenant("t1", "p1", "p2"))

	properties, err := store.GetProperties()
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusAvailable, properties[0].Status)
	assert.Empty(t, properties[0].TenantID)
	assert.Equal(t, models.PropertyStatusOccupied, properties[1].Status)
	assert.Equal(t, "t1", properties[1].TenantID)

	tenants, err := store.GetTenants()
	require.NoError(t, err)
	assert.Equal(t, "p2", tenants[0].PropertyID)
}

func TestTransferTenantIsAllOrNothing(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{
			fixtureProperty("p1", models.PropertyStatusOccupied, "t1"),
			fixtureProperty("p2", models.PropertyStatusOccupied, "t2"),
		},
		[]models.Tenant{
			fixtureTenant("t1", "p1", true),
			fixtureTenant("t2", "p2", true),
		},
		nil)
	svc := NewOccupancyService(store, testConfig())

	err := svc.TransferTenant("t1", "p1", "p2")
	assert.ErrorIs(t, err, ErrPropertyOccupied)

	// 目标房源冲突时旧绑定必须原样保留
	properties, err := store.GetProperties()
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusOccupied, properties[0].Status)
	assert.Equal(t, "t1", properties[0].TenantID)
	assert.Equal(t, "t2", properties[1].TenantID)
}

func TestTransferTenantUnknownTarget(t *testing.T) {
	store, _ := newTestStore(t, testNow,
		[]models.Property{fixtureProperty("p1", models.PropertyStatusOccupied, "t1")},
		[]models.Tenant{fixtureTenant("t1", "p1", true)},
		nil)
	svc := NewOccupancyService(store, testConfig())

	assert.ErrorIs(t, svc.TransferTenant("t1", "p1", "missing"), ErrPropertyNotFound)
}
