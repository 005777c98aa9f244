package controllers

import (
	"github.com/dennxbot/food-ordering-system-sub000/pkg/resp"
	"github.com/dennxbot/food-ordering-system-sub000/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	ReportSvc *services.ReportService
}

func NewAdminController(rs *services.ReportService) *AdminController {
	return &AdminController{ReportSvc: rs}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	counts, err := ac.ReportSvc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, counts)
}
