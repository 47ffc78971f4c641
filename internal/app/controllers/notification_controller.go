package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/domain/services/container"
	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
)

// InterfaceNotificationController 定义通知控制器接口
type InterfaceNotificationController interface {
	GetNotifications()
	CreateNotification()
	MarkNotificationRead()
	MarkAllNotificationsRead()
	DeleteNotification()
	GetUnreadCounts()
}

// NotificationController 处理通知相关的请求
type NotificationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificationController 创建一个新的通知控制器
func NewNotificationController(ctx *gin.Context, container *container.ServiceContainer) *NotificationController {
	return &NotificationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleNotificationFunc 返回一个处理通知请求的Gin处理函数
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificationController(ctx, container)

		switch method {
		case "getNotifications":
			controller.GetNotifications()
		case "createNotification":
			controller.CreateNotification()
		case "markNotificationRead":
			controller.MarkNotificationRead()
		case "markAllNotificationsRead":
			controller.MarkAllNotificationsRead()
		case "deleteNotification":
			controller.DeleteNotification()
		case "getUnreadCounts":
			controller.GetUnreadCounts()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetNotifications 获取全部通知（持久化通知与系统生成通知合并）
// @Summary 获取所有通知
// @Tags Notification
// @Security BearerAuth
// @Router /notifications [get]
func (c *NotificationController) GetNotifications() {
	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	notifications, err := notificationService.GetAllNotifications()
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, notifications)
}

// 2. CreateNotification 创建用户通知（maintenance 或 general）
// @Summary 创建通知
// @Tags Notification
// @Security BearerAuth
// @Router /notifications [post]
func (c *NotificationController) CreateNotification() {
	var req services.NotificationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	notification, err := notificationService.CreateNotification(&req)
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, notification)
}

// 3. MarkNotificationRead 标记单条通知为已读
// @Summary 标记通知已读
// @Tags Notification
// @Security BearerAuth
// @Param id path string true "通知ID"
// @Router /notifications/{id}/read [put]
func (c *NotificationController) MarkNotificationRead() {
	id := c.Ctx.Param("id")

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.MarkNotificationRead(id); err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"id": id})
}

// 4. MarkAllNotificationsRead 标记全部通知为已读
// @Summary 全部标记已读
// @Tags Notification
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (c *NotificationController) MarkAllNotificationsRead() {
	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.MarkAllNotificationsRead(); err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}

// 5. DeleteNotification 删除通知（系统生成的通知无法删除，下次仍会重新生成）
// @Summary 删除通知
// @Tags Notification
// @Security BearerAuth
// @Param id path string true "通知ID"
// @Router /notifications/{id} [delete]
func (c *NotificationController) DeleteNotification() {
	id := c.Ctx.Param("id")

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.DeleteNotification(id); err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"id": id})
}

// 6. GetUnreadCounts 获取各类型未读通知数量
// @Summary 未读数量统计
// @Tags Notification
// @Security BearerAuth
// @Router /notifications/unread-counts [get]
func (c *NotificationController) GetUnreadCounts() {
	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	counts, err := notificationService.UnreadCounts()
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	response.Success(c.Ctx, gin.H{"counts": counts, "total": total})
}
