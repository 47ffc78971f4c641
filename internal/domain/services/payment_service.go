package services

import (
	"fmt"
	"time"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// InterfacePaymentService 定义支付服务接口。支付记录创建后不可改，
// 只开放受限的状态迁移，不提供删除。
type InterfacePaymentService interface {
	GetAllPayments(page, pageSize int, status string) ([]models.Payment, int, error)
	GetPaymentByID(id string) (*models.Payment, error)
	RecordPayment(req *PaymentRequest) (*models.Payment, error)
	UpdatePaymentStatus(id string, status models.PaymentStatus) (*models.Payment, error)
	StatusRollup() (map[models.PaymentStatus]PaymentRollup, error)
}

// PaymentRequest 记录支付的载荷，日期为 YYYY-MM-DD
type PaymentRequest struct {
	TenantID      string  `json:"tenantId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentDate   string  `json:"paymentDate" binding:"required"`
	DueDate       string  `json:"dueDate" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

// PaymentRollup 单个状态的数量与金额合计
type PaymentRollup struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// PaymentService 提供支付相关的服务
type PaymentService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewPaymentService 创建一个新的支付服务
func NewPaymentService(store *storage.Store, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		Store:  store,
		Config: cfg,
	}
}

// 1. GetAllPayments 获取支付记录列表，支持分页和状态过滤
func (s *PaymentService) GetAllPayments(page, pageSize int, status string) ([]models.Payment, int, error) {
	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, 0, err
	}

	if status != "" {
		filtered := make([]models.Payment, 0, len(payments))
		for i := range payments {
			if payments[i].Status == models.PaymentStatus(status) {
				filtered = append(filtered, payments[i])
			}
		}
		payments = filtered
	}

	total := len(payments)
	start := (page - 1) * pageSize
	if start >= total {
		return []models.Payment{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return payments[start:end], total, nil
}

// 2. GetPaymentByID 根据ID获取支付记录
func (s *PaymentService) GetPaymentByID(id string) (*models.Payment, error) {
	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			result := payments[i]
			return &result, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
}

// 3. RecordPayment 记录一笔支付。propertyId取自租户当前绑定，
// 收据编号自动生成。
func (s *PaymentService) RecordPayment(req *PaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !models.ValidPaymentMethod(models.PaymentMethod(req.PaymentMethod)) {
		return nil, fmt.Errorf("%w: invalid payment method %q", ErrValidation, req.PaymentMethod)
	}
	status := models.PaymentStatus(req.Status)
	if req.Status == "" {
		status = models.PaymentStatusPaid
	}
	if !models.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: invalid payment status %q", ErrValidation, req.Status)
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid paymentDate %q", ErrValidation, req.PaymentDate)
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dueDate %q", ErrValidation, req.DueDate)
	}

	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}
	var tenant *models.Tenant
	for i := range tenants {
		if tenants[i].ID == req.TenantID {
			tenant = &tenants[i]
			break
		}
	}
	if tenant == nil {
		return nil, fmt.Errorf("%w: %s", ErrTenantNotFound, req.TenantID)
	}

	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		ID:            s.Store.NextID(),
		TenantID:      tenant.ID,
		PropertyID:    tenant.PropertyID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		DueDate:       dueDate,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Status:        status,
		ReceiptNumber: s.Store.NextReceiptNumber(),
		Notes:         req.Notes,
		CreatedAt:     s.Store.Clock().Now(),
	}

	payments = append(payments, payment)
	if err := s.Store.SavePayments(payments); err != nil {
		return nil, err
	}
	return &payment, nil
}

// 4. UpdatePaymentStatus 变更支付状态，只允许合法迁移
func (s *PaymentService) UpdatePaymentStatus(id string, status models.PaymentStatus) (*models.Payment, error) {
	if !models.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: invalid payment status %q", ErrValidation, status)
	}

	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	for i := range payments {
		if payments[i].ID == id {
			payment = &payments[i]
			break
		}
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}

	if !payment.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusChange, payment.Status, status)
	}
	payment.Status = status

	if err := s.Store.SavePayments(payments); err != nil {
		return nil, err
	}
	result := *payment
	return &result, nil
}

// 5. StatusRollup 按状态统计支付数量与金额
func (s *PaymentService) StatusRollup() (map[models.PaymentStatus]PaymentRollup, error) {
	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, err
	}
	return RollupPaymentsByStatus(payments), nil
}

// RollupPaymentsByStatus 对给定支付集合做按状态的数量/金额汇总
func RollupPaymentsByStatus(payments []models.Payment) map[models.PaymentStatus]PaymentRollup {
	rollup := make(map[models.PaymentStatus]PaymentRollup)
	for i := range payments {
		entry := rollup[payments[i].Status]
		entry.Count++
		entry.Total += payments[i].Amount
		rollup[payments[i].Status] = entry
	}
	return rollup
}
