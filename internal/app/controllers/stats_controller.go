package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/domain/services/container"
	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
)

// InterfaceStatsController 定义统计控制器接口
type InterfaceStatsController interface {
	GetDashboardStats()
	GetUpcomingDueDates()
	GetMonthlyIncome()
	GetReport()
}

// StatsController 处理仪表盘与报表相关的请求
type StatsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatsController 创建一个新的统计控制器
func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatsFunc 返回一个处理统计请求的Gin处理函数
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)

		switch method {
		case "getDashboardStats":
			controller.GetDashboardStats()
		case "getUpcomingDueDates":
			controller.GetUpcomingDueDates()
		case "getMonthlyIncome":
			controller.GetMonthlyIncome()
		case "getReport":
			controller.GetReport()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// months 解析月份数查询参数，非法或缺省时返回默认值
func months(ctx *gin.Context) int {
	n, err := strconv.Atoi(ctx.DefaultQuery("months", "12"))
	if err != nil || n <= 0 {
		return 12
	}
	if n > 24 {
		return 24
	}
	return n
}

// 1. GetDashboardStats 获取仪表盘汇总数据
// @Summary 仪表盘统计
// @Tags Stats
// @Security BearerAuth
// @Router /stats/dashboard [get]
func (c *StatsController) GetDashboardStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetDashboardStats()
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, stats)
}

// 2. GetUpcomingDueDates 获取未来的租金与租约到期项
// @Summary 即将到期事项
// @Tags Stats
// @Security BearerAuth
// @Router /stats/due-dates [get]
func (c *StatsController) GetUpcomingDueDates() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	items, err := statsService.GetUpcomingDueDates()
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, items)
}

// 3. GetMonthlyIncome 获取按月汇总的已收租金
// @Summary 月度收入
// @Tags Stats
// @Security BearerAuth
// @Param months query int false "统计月数，默认12，最大24"
// @Router /stats/monthly-income [get]
func (c *StatsController) GetMonthlyIncome() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	buckets, err := statsService.GetMonthlyIncome(months(c.Ctx))
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, buckets)
}

// 4. GetReport 获取完整经营报表
// @Summary 经营报表
// @Tags Stats
// @Security BearerAuth
// @Param months query int false "统计月数，默认12，最大24"
// @Router /reports [get]
func (c *StatsController) GetReport() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	report, err := statsService.GetReport(months(c.Ctx))
	if err != nil {
		failWithError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, report)
}
