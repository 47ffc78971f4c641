package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/domain/services/container"
	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
)

// InterfacePaymentController 定义支付控制器接口
type InterfacePaymentController interface {
	GetPayments()
	GetPayment()
	RecordPayment()
	UpdatePaymentStatus()
	GetStatusRollup()
}

// PaymentController 处理租金支付相关的请求
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController 创建一个新的支付控制器
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandlePaymentFunc 返回一个处理支付请求的Gin处理函数
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "getPayment":
			controller.GetPayment()
		case "recordPayment":
			controller.RecordPayment()
		case "updatePaymentStatus":
			controller.UpdatePaymentStatus()
		case "getStatusRollup":
			controller.GetStatusRollup()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// updatePaymentStatusRequest 支付状态变更请求
type updatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// 1. GetPayments 获取支付记录列表，可按状态过滤
// @Summary 获取所有支付记录
// @Tags Payment
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Param status query string false "按状态过滤: paid/pending/overdue/partial"
// @Router /payments [get]
func (c *PaymentController) GetPayments() {
	page, pageSize := pagination(c.Ctx)
	status := c.Ctx.Query("status")

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, total, err := paymentService.GetAllPayments(page, pageSize, status)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, page, pageSize),
		"data":       payments,
	})
}

// 2. GetPayment 获取单条支付记录
// @Summary 获取支付详情
// @Tags Payment
// @Security BearerAuth
// @Param id path string true "支付ID"
// @Router /payments/{id} [get]
func (c *PaymentController) GetPayment() {
	id := c.Ctx.Param("id")

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.GetPaymentByID(id)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, payment)
}

// 3. RecordPayment 登记一笔租金支付并生成收据编号
// @Summary 登记支付
// @Tags Payment
// @Security BearerAuth
// @Router /payments [post]
func (c *PaymentController) RecordPayment() {
	var req services.PaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.RecordPayment(&req)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, payment)
}

// 4. UpdatePaymentStatus 变更支付状态，仅允许合法状态迁移
// @Summary 更新支付状态
// @Tags Payment
// @Security BearerAuth
// @Param id path string true "支付ID"
// @Router /payments/{id}/status [put]
func (c *PaymentController) UpdatePaymentStatus() {
	id := c.Ctx.Param("id")

	var req updatePaymentStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.UpdatePaymentStatus(id, models.PaymentStatus(req.Status))
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, payment)
}

// 5. GetStatusRollup 按状态汇总支付笔数与金额
// @Summary 支付状态汇总
// @Tags Payment
// @Security BearerAuth
// @Router /payments/rollup [get]
func (c *PaymentController) GetStatusRollup() {
	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	rollup, err := paymentService.StatusRollup()
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rollup)
}
