package controller

import (
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	CatalogService *service.CatalogService
}

func NewDashboardController(catalogService *service.CatalogService) *DashboardController {
	return &DashboardController{CatalogService: catalogService}
}

// GetDashboard godoc
// @Summary Dashboard payload
// @Description All courses with sections in display order, each section
// @Description flagged completed for the caller, plus per-course enrollment
// @Description state and the derived completion percentage.
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.DashboardCourse}
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	cards, err := c.CatalogService.Dashboard(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, cards)
}
