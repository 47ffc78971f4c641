package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// 到期条目的分类结果
const (
	DueStatusOverdue  = "overdue"
	DueStatusUrgent   = "urgent"
	DueStatusUpcoming = "upcoming"
	DueStatusExpired  = "expired"
	DueStatusActive   = "active"
)

// DueItemKind 到期条目种类
type DueItemKind string

const (
	DueItemRent  DueItemKind = "rent"
	DueItemLease DueItemKind = "lease"
)

// DueItem 仪表盘"即将到期"列表的一行
type DueItem struct {
	TenantID   string      `json:"tenantId"`
	Kind       DueItemKind `json:"kind"`
	TenantName string      `json:"tenantName"`
	Property   string      `json:"property"`
	Amount     float64     `json:"amount,omitempty"`
	Date       time.Time   `json:"date"`
	Days       int         `json:"days"`
	Status     string      `json:"status"`
}

// MonthBucket 单个月份的收入汇总
type MonthBucket struct {
	Month      string    `json:"month"`
	ShortMonth string    `json:"shortMonth"`
	Start      time.Time `json:"start"`
	Income     float64   `json:"income"`
}

// DashboardStats 仪表盘统计卡数据
type DashboardStats struct {
	TotalProperties    int     `json:"totalProperties"`
	OccupiedProperties int     `json:"occupiedProperties"`
	ActiveTenants      int     `json:"activeTenants"`
	OccupancyRate      float64 `json:"occupancyRate"`
	MonthlyIncome      float64 `json:"monthlyIncome"`
	OverduePayments    int     `json:"overduePayments"`
}

// PropertyTypeStat 房源类型分布的一项
type PropertyTypeStat struct {
	Type   string  `json:"type"`
	Count  int     `json:"count"`
	Income float64 `json:"income"`
}

// ReportSummary 报表汇总部分
type ReportSummary struct {
	TotalProperties      int     `json:"totalProperties"`
	OccupiedProperties   int     `json:"occupiedProperties"`
	ActiveTenants        int     `json:"activeTenants"`
	TotalIncome          float64 `json:"totalIncome"`
	AverageMonthlyIncome float64 `json:"averageMonthlyIncome"`
	OccupancyRate        float64 `json:"occupancyRate"`
}

// ReportData 整份报表，纯数据结构，序列化/导出由外部组件负责
type ReportData struct {
	Period        string             `json:"period"`
	GeneratedAt   time.Time          `json:"generatedAt"`
	Summary       ReportSummary      `json:"summary"`
	MonthlyIncome []MonthBucket      `json:"monthlyIncome"`
	PropertyTypes []PropertyTypeStat `json:"propertyTypes"`
}

// InterfaceStatsService 定义时间聚合服务接口。所有方法都以注入时钟
// 的当前时间为基准，对当前集合做同步计算。
type InterfaceStatsService interface {
	GetDashboardStats() (*DashboardStats, error)
	GetUpcomingDueDates() ([]DueItem, error)
	GetMonthlyIncome(months int) ([]MonthBucket, error)
	GetReport(months int) (*ReportData, error)
}

// StatsService 提供仪表盘与报表的聚合计算
type StatsService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewStatsService 创建一个新的聚合服务
func NewStatsService(store *storage.Store, cfg *config.Config) InterfaceStatsService {
	return &StatsService{
		Store:  store,
		Config: cfg,
	}
}

// 1. GetDashboardStats 计算统计卡数据
func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, err
	}
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}
	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, err
	}
	stats := ComputeDashboardStats(s.Store.Clock().Now(), properties, tenants, payments)
	return &stats, nil
}

// 2. GetUpcomingDueDates 计算即将到期的租金与租约列表
func (s *StatsService) GetUpcomingDueDates() ([]DueItem, error) {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, err
	}
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}
	return UpcomingDueDates(s.Store.Clock().Now(), tenants, properties), nil
}

// 3. GetMonthlyIncome 计算近N个月的收入分桶
func (s *StatsService) GetMonthlyIncome(months int) ([]MonthBucket, error) {
	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, err
	}
	return MonthlyIncome(s.Store.Clock().Now(), payments, months), nil
}

// 4. GetReport 组装整份报表
func (s *StatsService) GetReport(months int) (*ReportData, error) {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, err
	}
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}
	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, err
	}

	now := s.Store.Clock().Now()
	buckets := MonthlyIncome(now, payments, months)
	var totalIncome float64
	for i := range buckets {
		totalIncome += buckets[i].Income
	}

	occupied := 0
	for i := range properties {
		if properties[i].Occupied() {
			occupied++
		}
	}
	activeTenants := 0
	for i := range tenants {
		if tenants[i].IsActive {
			activeTenants++
		}
	}

	report := &ReportData{
		Period:      fmt.Sprintf("%dmonths", len(buckets)),
		GeneratedAt: now,
		Summary: ReportSummary{
			TotalProperties:      len(properties),
			OccupiedProperties:   occupied,
			ActiveTenants:        activeTenants,
			TotalIncome:          totalIncome,
			AverageMonthlyIncome: totalIncome / float64(len(buckets)),
			OccupancyRate:        OccupancyRate(properties),
		},
		MonthlyIncome: buckets,
		PropertyTypes: PropertyTypeBreakdown(properties),
	}
	return report, nil
}

// daysBetween 两个日期相差的整天数，先截断到日再求差，
// 与date-fns的differenceInDays在纯日期输入下一致。
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// NextRentDueDate 下一个租金到期日：now之后首个月份的1号
func NextRentDueDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// ClassifyRentDue 对距租金到期的天数做分类
func ClassifyRentDue(daysUntilDue int) string {
	switch {
	case daysUntilDue < 0:
		return DueStatusOverdue
	case daysUntilDue <= RentDueSoonDays:
		return DueStatusUrgent
	default:
		return DueStatusUpcoming
	}
}

// ClassifyLeaseExpiry 对距租约到期的天数做分类
func ClassifyLeaseExpiry(daysUntilExpiry int) string {
	switch {
	case daysUntilExpiry < 0:
		return DueStatusExpired
	case daysUntilExpiry <= LeaseExpiryUrgentDays:
		return DueStatusUrgent
	default:
		return DueStatusActive
	}
}

// propertyLabel 展示用的房源名称
func propertyLabel(properties []models.Property, id string) string {
	property := findProperty(properties, id)
	if property == nil {
		return "Unknown Property"
	}
	if property.City == "" {
		return property.Address
	}
	return property.Address + ", " + property.City
}

// UpcomingDueDates computes the merged rent-due / lease-expiry feed: every
// active tenant contributes a rent item for the first of next month, and a
// lease item when the lease ends within the upcoming window. Sorted by date
// ascending; ties keep input order.
func UpcomingDueDates(now time.Time, tenants []models.Tenant, properties []models.Property) []DueItem {
	windowEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, UpcomingWindowDays)

	items := make([]DueItem, 0, len(tenants))
	for i := range tenants {
		tenant := &tenants[i]
		if !tenant.IsActive {
			continue
		}
		nextDue := NextRentDueDate(now)
		days := daysBetween(now, nextDue)
		items = append(items, DueItem{
			TenantID:   tenant.ID,
			Kind:       DueItemRent,
			TenantName: tenant.FullName(),
			Property:   propertyLabel(properties, tenant.PropertyID),
			Amount:     tenant.RentAmount,
			Date:       nextDue,
			Days:       days,
			Status:     ClassifyRentDue(days),
		})
	}
	for i := range tenants {
		tenant := &tenants[i]
		if !tenant.IsActive || tenant.LeaseEndDate.After(windowEnd) {
			continue
		}
		days := daysBetween(now, tenant.LeaseEndDate)
		items = append(items, DueItem{
			TenantID:   tenant.ID,
			Kind:       DueItemLease,
			TenantName: tenant.FullName(),
			Property:   propertyLabel(properties, tenant.PropertyID),
			Date:       tenant.LeaseEndDate,
			Days:       days,
			Status:     ClassifyLeaseExpiry(days),
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Date.Before(items[b].Date)
	})
	return items
}

// MonthlyIncome produces exactly N trailing month buckets, oldest first.
// A bucket sums paid payments whose paymentDate falls inside the month;
// months without payments stay at zero income.
func MonthlyIncome(now time.Time, payments []models.Payment, months int) []MonthBucket {
	if months <= 0 {
		months = 12
	}

	buckets := make([]MonthBucket, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		next := start.AddDate(0, 1, 0)

		var income float64
		for j := range payments {
			p := &payments[j]
			if p.Status != models.PaymentStatusPaid {
				continue
			}
			if p.PaymentDate.Before(start) || !p.PaymentDate.Before(next) {
				continue
			}
			income += p.Amount
		}

		buckets = append(buckets, MonthBucket{
			Month:      start.Format("Jan 2006"),
			ShortMonth: start.Format("Jan"),
			Start:      start,
			Income:     income,
		})
	}
	return buckets
}

// OccupancyRate 出租率百分比，没有房源时为0
func OccupancyRate(properties []models.Property) float64 {
	if len(properties) == 0 {
		return 0
	}
	occupied := 0
	for i := range properties {
		if properties[i].Occupied() {
			occupied++
		}
	}
	return float64(occupied) / float64(len(properties)) * 100
}

// PropertyTypeBreakdown 按类型统计房源数量和在租收入
func PropertyTypeBreakdown(properties []models.Property) []PropertyTypeStat {
	byType := make(map[string]*PropertyTypeStat)
	order := make([]string, 0, 3)
	for i := range properties {
		p := &properties[i]
		key := string(p.Type)
		stat, ok := byType[key]
		if !ok {
			stat = &PropertyTypeStat{Type: key}
			byType[key] = stat
			order = append(order, key)
		}
		stat.Count++
		if p.Occupied() {
			stat.Income += p.RentAmount
		}
	}

	result := make([]PropertyTypeStat, 0, len(order))
	for _, key := range order {
		result = append(result, *byType[key])
	}
	return result
}

// ComputeDashboardStats 计算统计卡数据：本月已收租金、在租租户数、
// 出租率与逾期支付数
func ComputeDashboardStats(now time.Time, properties []models.Property, tenants []models.Tenant, payments []models.Payment) DashboardStats {
	stats := DashboardStats{
		TotalProperties: len(properties),
		OccupancyRate:   OccupancyRate(properties),
	}
	for i := range properties {
		if properties[i].Occupied() {
			stats.OccupiedProperties++
		}
	}
	for i := range tenants {
		if tenants[i].IsActive {
			stats.ActiveTenants++
		}
	}
	for i := range payments {
		p := &payments[i]
		if p.Status == models.PaymentStatusPaid &&
			p.PaymentDate.Year() == now.Year() && p.PaymentDate.Month() == now.Month() {
			stats.MonthlyIncome += p.Amount
		}
		if p.Status == models.PaymentStatusOverdue {
			stats.OverduePayments++
		}
	}
	return stats
}
