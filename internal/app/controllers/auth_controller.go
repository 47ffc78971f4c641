package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/domain/services/container"
	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
}

// AuthController 处理身份验证请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"landlord@example.com"`
	Password string `json:"password" binding:"required" example:"password"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Verify landlord credentials and return a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body", nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	result, err := authService.Login(req.Email, req.Password)
	if err != nil {
		// 凭证错误统一返回401，避免泄露账号是否存在
		response.Unauthorized(c.Ctx)
		return
	}

	response.Success(c.Ctx, result)
}
