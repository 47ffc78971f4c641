package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// failWithError 把服务层错误映射到错误码并返回统一响应
func failWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		response.FailWithMessage(ctx, code.ErrValidation, err.Error(), nil)
	case errors.Is(err, services.ErrPropertyOccupied):
		response.FailWithMessage(ctx, code.ErrPropertyOccupied, err.Error(), nil)
	case errors.Is(err, services.ErrPropertyNotFound):
		response.FailWithMessage(ctx, code.ErrPropertyNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrTenantNotFound):
		response.FailWithMessage(ctx, code.ErrTenantNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrPaymentNotFound):
		response.FailWithMessage(ctx, code.ErrPaymentNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidStatusChange):
		response.FailWithMessage(ctx, code.ErrPaymentStatusChange, err.Error(), nil)
	case errors.Is(err, services.ErrNotificationNotFound):
		response.FailWithMessage(ctx, code.ErrNotificationNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrPasswordIncorrect):
		response.Fail(ctx, code.ErrUserPasswordIncorrect, nil)
	case errors.Is(err, storage.ErrUnavailable):
		response.Fail(ctx, code.ErrStorage, nil)
	default:
		response.FailWithMessage(ctx, code.ErrUnknown, err.Error(), nil)
	}
}

// pagination 解析分页查询参数
func pagination(ctx *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
