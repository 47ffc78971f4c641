package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DerrickJaguar/rent/internal/domain/models"
)

func TestNextRentDueDate(t *testing.T) {
	assert.Equal(t,
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		NextRentDueDate(time.Date(2024, time.January, 25, 10, 0, 0, 0, time.UTC)))

	// 12月翻到下一年1月
	assert.Equal(t,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		NextRentDueDate(time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC)))

	// 月初1号的下一个到期日仍是下月1号
	assert.Equal(t,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		NextRentDueDate(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
}

func TestClassifyRentDue(t *testing.T) {
	assert.Equal(t, DueStatusOverdue, ClassifyRentDue(-1))
	assert.Equal(t, DueStatusUrgent, ClassifyRentDue(0))
	assert.Equal(t, DueStatusUrgent, ClassifyRentDue(7))
	assert.Equal(t, DueStatusUpcoming, ClassifyRentDue(8))
}

func TestClassifyLeaseExpiry(t *testing.T) {
	assert.Equal(t, DueStatusExpired, ClassifyLeaseExpiry(-1))
	assert.Equal(t, DueStatusUrgent, ClassifyLeaseExpiry(0))
	assert.Equal(t, DueStatusUrgent, ClassifyLeaseExpiry(14))
	assert.Equal(t, DueStatusActive, ClassifyLeaseExpiry(15))
}

func TestUpcomingDueDatesRentItems(t *testing.T) {
	// 2024-01-25: 距2月1号7天，应归为urgent
	now := time.Date(2024, time.January, 25, 10, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	tenants[0].LeaseEndDate = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	properties := []models.Property{fixtureProperty("p1", models.PropertyStatusOccupied, "t1")}

	items := UpcomingDueDates(now, tenants, properties)
	require.Len(t, items, 1)
	assert.Equal(t, DueItemRent, items[0].Kind)
	assert.Equal(t, 7, items[0].Days)
	assert.Equal(t, DueStatusUrgent, items[0].Status)
	assert.Equal(t, float64(250), items[0].Amount)
	assert.Equal(t, "Plot p1 Main St, Mbarara", items[0].Property)
}

func TestUpcomingDueDatesIncludesLeaseWithinWindow(t *testing.T) {
	now := time.Date(2024, time.January, 25, 10, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{
		fixtureTenant("t1", "p1", true),
		fixtureTenant("t2", "p2", true),
	}
	// t1租约在窗口内（10天后），t2远在窗口外
	tenants[0].LeaseEndDate = time.Date(2024, time.February, 4, 0, 0, 0, 0, time.UTC)
	tenants[1].LeaseEndDate = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	properties := []models.Property{
		fixtureProperty("p1", models.PropertyStatusOccupied, "t1"),
		fixtureProperty("p2", models.PropertyStatusOccupied, "t2"),
	}

	items := UpcomingDueDates(now, tenants, properties)
	require.Len(t, items, 3)

	var leaseItems []DueItem
	for _, item := range items {
		if item.Kind == DueItemLease {
			leaseItems = append(leaseItems, item)
		}
	}
	require.Len(t, leaseItems, 1)
	assert.Equal(t, "t1", leaseItems[0].TenantID)
	assert.Equal(t, 10, leaseItems[0].Days)
	assert.Equal(t, DueStatusUrgent, leaseItems[0].Status)

	// 列表按日期升序
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Date.Before(items[i-1].Date))
	}
}

func TestUpcomingDueDatesExpiredLeaseStaysListed(t *testing.T) {
	now := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	tenants[0].LeaseEndDate = time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	items := UpcomingDueDates(now, tenants, nil)
	var lease *DueItem
	for i := range items {
		if items[i].Kind == DueItemLease {
			lease = &items[i]
		}
	}
	require.NotNil(t, lease)
	assert.Equal(t, -4, lease.Days)
	assert.Equal(t, DueStatusExpired, lease.Status)
	assert.Equal(t, "Unknown Property", lease.Property)
}

func TestUpcomingDueDatesSkipsInactiveTenants(t *testing.T) {
	now := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", false)}

	assert.Empty(t, UpcomingDueDates(now, tenants, nil))
}

func TestMonthlyIncomeBucketsExactly(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		fixturePayment("pay1", "t1", 250, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), models.PaymentStatusPaid),
		fixturePayment("pay2", "t1", 100, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), models.PaymentStatusPaid),
		fixturePayment("pay3", "t1", 999, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), models.PaymentStatusPending),
		fixturePayment("pay4", "t1", 300, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), models.PaymentStatusPaid),
		fixturePayment("pay5", "t1", 888, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), models.PaymentStatusPaid),
	}

	buckets := MonthlyIncome(now, payments, 3)
	require.Len(t, buckets, 3)

	assert.Equal(t, "Jan 2024", buckets[0].Month)
	assert.Equal(t, float64(350), buckets[0].Income)
	// pending不计入，2月收入为0
	assert.Equal(t, "Feb 2024", buckets[1].Month)
	assert.Equal(t, float64(0), buckets[1].Income)
	assert.Equal(t, "Mar 2024", buckets[2].Month)
	assert.Equal(t, float64(300), buckets[2].Income)
}

func TestMonthlyIncomeDefaultsToTwelveMonths(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Len(t, MonthlyIncome(now, nil, 0), 12)
	assert.Len(t, MonthlyIncome(now, nil, -3), 12)
	assert.Len(t, MonthlyIncome(now, nil, 24), 24)
}

func TestMonthlyIncomeCrossesYearBoundary(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	buckets := MonthlyIncome(now, nil, 3)
	require.Len(t, buckets, 3)
	assert.Equal(t, "Nov 2023", buckets[0].Month)
	assert.Equal(t, "Dec 2023", buckets[1].Month)
	assert.Equal(t, "Jan 2024", buckets[2].Month)
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, float64(0), OccupancyRate(nil))

	properties := []models.Property{
		fixtureProperty("p1", models.PropertyStatusOccupied, "t1"),
		fixtureProperty("p2", models.PropertyStatusAvailable, ""),
		fixtureProperty("p3", models.PropertyStatusMaintenance, ""),
		fixtureProperty("p4", models.PropertyStatusOccupied, "t2"),
	}
	assert.Equal(t, float64(50), OccupancyRate(properties))

	all := []models.Property{fixtureProperty("p1", models.PropertyStatusOccupied, "t1")}
	assert.Equal(t, float64(100), OccupancyRate(all))
}

func TestPropertyTypeBreakdown(t *testing.T) {
	properties := []models.Property{
		fixtureProperty("p1", models.PropertyStatusOccupied, "t1"),
		fixtureProperty("p2", models.PropertyStatusAvailable, ""),
	}
	properties[1].Type = models.PropertyTypeHouse
	properties[1].RentAmount = 3500

	stats := PropertyTypeBreakdown(properties)
	require.Len(t, stats, 2)
	// 保持首次出现的顺序
	assert.Equal(t, "apartment", stats[0].Type)
	assert.Equal(t, 1, stats[0].Count)
	assert.Equal(t, float64(250), stats[0].Income)
	// 空置房源不计入收入
	assert.Equal(t, "house", stats[1].Type)
	assert.Equal(t, float64(0), stats[1].Income)
}

func TestComputeDashboardStats(t *testing.T) {
	now := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	properties := []models.Property{
		fixtureProperty("p1", models.PropertyStatusOccupied, "t1"),
		fixtureProperty("p2", models.PropertyStatusAvailable, ""),
	}
	tenants := []models.Tenant{
		fixtureTenant("t1", "p1", true),
		fixtureTenant("t2", "", false),
	}
	payments := []models.Payment{
		fixturePayment("pay1", "t1", 250, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), models.PaymentStatusPaid),
		fixturePayment("pay2", "t1", 100, time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC), models.PaymentStatusPaid),
		fixturePayment("pay3", "t1", 80, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), models.PaymentStatusOverdue),
	}

	stats := ComputeDashboardStats(now, properties, tenants, payments)
	assert.Equal(t, 2, stats.TotalProperties)
	assert.Equal(t, 1, stats.OccupiedProperties)
	assert.Equal(t, 1, stats.ActiveTenants)
	assert.Equal(t, float64(50), stats.OccupancyRate)
	// 只统计本月已收的250，上月的100和逾期的80不算
	assert.Equal(t, float64(250), stats.MonthlyIncome)
	assert.Equal(t, 1, stats.OverduePayments)
}

func TestGetReportAssemblesSummary(t *testing.T) {
	properties := []models.Property{
		fixtureProperty("p1", models.PropertyStatusOccupied, "t1"),
		fixtureProperty("p2", models.PropertyStatusAvailable, ""),
	}
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	payments := []models.Payment{
		fixturePayment("pay1", "t1", 250, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), models.PaymentStatusPaid),
	}
	store, _ := newTestStore(t, testNow, properties, tenants, payments)
	svc := NewStatsService(store, testConfig())

	report, err := svc.GetReport(6)
	require.NoError(t, err)
	assert.Equal(t, "6months", report.Period)
	assert.Equal(t, testNow, report.GeneratedAt)
	assert.Len(t, report.MonthlyIncome, 6)
	assert.Equal(t, float64(250), report.Summary.TotalIncome)
	assert.InDelta(t, 250.0/6.0, report.Summary.AverageMonthlyIncome, 0.0001)
	assert.Equal(t, float64(50), report.Summary.OccupancyRate)
	assert.Len(t, report.PropertyTypes, 1)
}
