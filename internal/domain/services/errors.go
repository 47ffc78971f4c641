package services

import "errors"

// 服务层的错误种类。控制器用errors.Is把它们映射到错误码，
// 校验类错误通过fmt.Errorf("%w: ...")携带具体原因。
var (
	// ErrValidation 请求数据缺失或不合法，未做任何变更
	ErrValidation = errors.New("validation failed")
	// ErrPropertyNotFound 房源不存在
	ErrPropertyNotFound = errors.New("property not found")
	// ErrPropertyOccupied 房源已绑定其他在租租户
	ErrPropertyOccupied = errors.New("property already has an active tenant")
	// ErrTenantNotFound 租户不存在
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrPaymentNotFound 支付记录不存在
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrInvalidStatusChange 非法的支付状态变更
	ErrInvalidStatusChange = errors.New("payment status change not allowed")
	// ErrNotificationNotFound 通知不存在
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrPasswordIncorrect 密码错误
	ErrPasswordIncorrect = errors.New("incorrect email or password")
)
