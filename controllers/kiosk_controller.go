package controllers

import (
	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/resp"
	"github.com/dennxbot/food-ordering-system-sub000/services"

	"github.com/gin-gonic/gin"
)

// KioskController serves the self-service kiosk: walk-in orders with items
// inline, settled face-to-face at the cashier.
type KioskController struct{ Svc *services.OrderService }

func NewKioskController(s *services.OrderService) *KioskController {
	return &KioskController{Svc: s}
}

// POST /kiosk/orders
func (kc *KioskController) Create(c *gin.Context) {
	var req services.DirectOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := kc.Svc.CreateDirect(entity.SourceKiosk, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /kiosk/orders/:number — the pickup screen looks orders up by their
// public number, not the internal id.
func (kc *KioskController) Lookup(c *gin.Context) {
	d, err := kc.Svc.DetailByNumber(c.Param("number"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, d)
}
