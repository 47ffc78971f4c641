package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/domain/services/container"
	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
)

// InterfacePropertyController 定义房源控制器接口
type InterfacePropertyController interface {
	GetProperties()
	GetProperty()
	CreateProperty()
	UpdateProperty()
	DeleteProperty()
}

// PropertyController 处理房源相关的请求
type PropertyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPropertyController 创建一个新的房源控制器
func NewPropertyController(ctx *gin.Context, container *container.ServiceContainer) *PropertyController {
	return &PropertyController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandlePropertyFunc 返回一个处理房源请求的Gin处理函数
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPropertyController(ctx, container)

		switch method {
		case "getProperties":
			controller.GetProperties()
		case "getProperty":
			controller.GetProperty()
		case "createProperty":
			controller.CreateProperty()
		case "updateProperty":
			controller.UpdateProperty()
		case "deleteProperty":
			controller.DeleteProperty()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetProperties 获取房源列表
// @Summary 获取所有房源
// @Tags Property
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Router /properties [get]
func (c *PropertyController) GetProperties() {
	page, pageSize := pagination(c.Ctx)

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	properties, total, err := propertyService.GetAllProperties(page, pageSize)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, page, pageSize),
		"data":       properties,
	})
}

// 2. GetProperty 获取单个房源详情
// @Summary 获取房源详情
// @Tags Property
// @Security BearerAuth
// @Param id path string true "房源ID"
// @Router /properties/{id} [get]
func (c *PropertyController) GetProperty() {
	id := c.Ctx.Param("id")

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	property, err := propertyService.GetPropertyByID(id)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, property)
}

// 3. CreateProperty 创建新房源
// @Summary 创建房源
// @Tags Property
// @Security BearerAuth
// @Router /properties [post]
func (c *PropertyController) CreateProperty() {
	var req services.PropertyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	property, err := propertyService.CreateProperty(&req)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, property)
}

// 4. UpdateProperty 更新房源信息
// @Summary 更新房源
// @Tags Property
// @Security BearerAuth
// @Param id path string true "房源ID"
// @Router /properties/{id} [put]
func (c *PropertyController) UpdateProperty() {
	id := c.Ctx.Param("id")

	var req services.PropertyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	property, err := propertyService.UpdateProperty(id, &req)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, property)
}

// 5. DeleteProperty 删除房源
// @Summary 删除房源
// @Tags Property
// @Security BearerAuth
// @Param id path string true "房源ID"
// @Router /properties/{id} [delete]
func (c *PropertyController) DeleteProperty() {
	id := c.Ctx.Param("id")

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	if err := propertyService.DeleteProperty(id); err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"id": id})
}
