package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/domain/services/container"
	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
)

// InterfaceTenantController 定义租户控制器接口
type InterfaceTenantController interface {
	GetTenants()
	GetTenant()
	CreateTenant()
	UpdateTenant()
	DeleteTenant()
}

// TenantController 处理租户相关的请求
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController 创建一个新的租户控制器
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleTenantFunc 返回一个处理租户请求的Gin处理函数
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "createTenant":
			controller.CreateTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "deleteTenant":
			controller.DeleteTenant()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetTenants 获取租户列表
// @Summary 获取所有租户
// @Tags Tenant
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Router /tenants [get]
func (c *TenantController) GetTenants() {
	page, pageSize := pagination(c.Ctx)

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenants, total, err := tenantService.GetAllTenants(page, pageSize)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, page, pageSize),
		"data":       tenants,
	})
}

// 2. GetTenant 获取单个租户详情
// @Summary 获取租户详情
// @Tags Tenant
// @Security BearerAuth
// @Param id path string true "租户ID"
// @Router /tenants/{id} [get]
func (c *TenantController) GetTenant() {
	id := c.Ctx.Param("id")

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.GetTenantByID(id)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// 3. CreateTenant 创建新租户，若处于在租状态则同时绑定房源
// @Summary 创建租户
// @Tags Tenant
// @Security BearerAuth
// @Router /tenants [post]
func (c *TenantController) CreateTenant() {
	var req services.TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.CreateTenant(&req)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// 4. UpdateTenant 更新租户信息并同步房源占用关系
// @Summary 更新租户
// @Tags Tenant
// @Security BearerAuth
// @Param id path string true "租户ID"
// @Router /tenants/{id} [put]
func (c *TenantController) UpdateTenant() {
	id := c.Ctx.Param("id")

	var req services.TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.UpdateTenant(id, &req)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// 5. DeleteTenant 删除租户并释放其占用的房源
// @Summary 删除租户
// @Tags Tenant
// @Security BearerAuth
// @Param id path string true "租户ID"
// @Router /tenants/{id} [delete]
func (c *TenantController) DeleteTenant() {
	id := c.Ctx.Param("id")

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.DeleteTenant(id); err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"id": id})
}
