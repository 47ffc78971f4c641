package models

import "time"

// PaymentMethod 支付方式
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOnline       PaymentMethod = "online"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
)

// PaymentStatus 支付状态
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
	PaymentStatusPartial PaymentStatus = "partial"
)

// Payment is a rent payment record. Immutable once created except for the
// status transitions allowed by CanTransitionTo.
type Payment struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"tenantId"`
	PropertyID    string        `json:"propertyId"`
	Amount        float64       `json:"amount"`
	PaymentDate   time.Time     `json:"paymentDate"`
	DueDate       time.Time     `json:"dueDate"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	ReceiptNumber string        `json:"receiptNumber"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ValidPaymentMethod 检查支付方式是否合法
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodBankTransfer,
		PaymentMethodOnline, PaymentMethodCreditCard:
		return true
	}
	return false
}

// ValidPaymentStatus 检查支付状态是否合法
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusOverdue, PaymentStatusPartial:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is legal:
// pending may move to paid/overdue/partial, and anything may settle to paid.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return false
	}
	if next == PaymentStatusPaid {
		return true
	}
	if s == PaymentStatusPending {
		return next == PaymentStatusOverdue || next == PaymentStatusPartial
	}
	return false
}
