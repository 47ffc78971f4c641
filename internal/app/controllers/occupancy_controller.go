package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/domain/services/container"
	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
)

// InterfaceOccupancyController 定义占用协调控制器接口
type InterfaceOccupancyController interface {
	AssignTenant()
	ReleaseTenant()
	TransferTenant()
}

// OccupancyController 处理房源与租户绑定关系的请求
type OccupancyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOccupancyController 创建一个新的占用协调控制器
func NewOccupancyController(ctx *gin.Context, container *container.ServiceContainer) *OccupancyController {
	return &OccupancyController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleOccupancyFunc 返回一个处理占用请求的Gin处理函数
func HandleOccupancyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOccupancyController(ctx, container)

		switch method {
		case "assignTenant":
			controller.AssignTenant()
		case "releaseTenant":
			controller.ReleaseTenant()
		case "transferTenant":
			controller.TransferTenant()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// assignRequest 绑定租户请求
type assignRequest struct {
	TenantID string `json:"tenantId" binding:"required"`
}

// transferRequest 换房请求
type transferRequest struct {
	OldPropertyID string `json:"oldPropertyId"`
	NewPropertyID string `json:"newPropertyId" binding:"required"`
}

// 1. AssignTenant 把房源标记为已租并绑定租户
// @Summary 绑定租户
// @Tags Occupancy
// @Security BearerAuth
// @Param id path string true "房源ID"
// @Router /properties/{id}/assign [put]
func (c *OccupancyController) AssignTenant() {
	propertyID := c.Ctx.Param("id")

	var req assignRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	if err := occupancyService.AssignTenant(propertyID, req.TenantID); err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"propertyId": propertyID, "tenantId": req.TenantID})
}

// 2. ReleaseTenant 把房源恢复为可租并清除绑定
// @Summary 解绑租户
// @Tags Occupancy
// @Security BearerAuth
// @Param id path string true "房源ID"
// @Router /properties/{id}/release [put]
func (c *OccupancyController) ReleaseTenant() {
	propertyID := c.Ctx.Param("id")

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	if err := occupancyService.ReleaseTenant(propertyID); err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"propertyId": propertyID})
}

// 3. TransferTenant 把租户从旧房源迁到新房源
// @Summary 租户换房
// @Tags Occupancy
// @Security BearerAuth
// @Param id path string true "租户ID"
// @Router /tenants/{id}/transfer [put]
func (c *OccupancyController) TransferTenant() {
	tenantID := c.Ctx.Param("id")

	var req transferRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	if err := occupancyService.TransferTenant(tenantID, req.OldPropertyID, req.NewPropertyID); err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{
		"tenantId":   tenantID,
		"propertyId": req.NewPropertyID,
	})
}
