package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid auth token",
	ErrTooManyRequests: "too many requests",

	// 用户相关错误码
	ErrUserNotFound:          "user not found",
	ErrUserPasswordIncorrect: "incorrect email or password",

	// 房源相关错误码
	ErrPropertyNotFound: "property not found",
	ErrPropertyOccupied: "property already has an active tenant",

	// 租户相关错误码
	ErrTenantNotFound: "tenant not found",

	// 支付相关错误码
	ErrPaymentNotFound:     "payment not found",
	ErrPaymentStatusChange: "payment status change not allowed",

	// 通知相关错误码
	ErrNotificationNotFound: "notification not found",

	// 存储相关错误码
	ErrStorage: "storage backend unavailable, please retry",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// 房源相关错误码
	ErrPropertyNotFound: StatusNotFound,
	ErrPropertyOccupied: StatusConflict,

	// 租户相关错误码
	ErrTenantNotFound: StatusNotFound,

	// 支付相关错误码
	ErrPaymentNotFound:     StatusNotFound,
	ErrPaymentStatusChange: StatusBadRequest,

	// 通知相关错误码
	ErrNotificationNotFound: StatusNotFound,

	// 存储相关错误码
	ErrStorage: StatusServiceUnavailable,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
