package controllers

import (
	"strconv"

	"github.com/dennxbot/food-ordering-system-sub000/pkg/resp"
	"github.com/dennxbot/food-ordering-system-sub000/services"
	"github.com/dennxbot/food-ordering-system-sub000/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc       *services.OrderService
	CancelSvc *services.CancellationService
}

func NewOrderController(s *services.OrderService, cs *services.CancellationService) *OrderController {
	return &OrderController{Svc: s, CancelSvc: cs}
}

// POST /orders/checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.CreateFromCart(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	d, err := oc.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, d)
}

type CancelOrderReq struct {
	Reason string `json:"reason" binding:"required"`
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req CancelOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := oc.CancelSvc.Cancel(uid, role, uint(id), req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, o)
}
