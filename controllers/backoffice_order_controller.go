package controllers

import (
	"strconv"
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/resp"
	"github.com/dennxbot/food-ordering-system-sub000/services"
	"github.com/dennxbot/food-ordering-system-sub000/utils"

	"github.com/gin-gonic/gin"
)

// BackofficeOrderController serves the owner/admin order screens: lists,
// one-button status advancement, explicit status set, cancel, POS entry,
// and the sales report.
type BackofficeOrderController struct {
	Svc       *services.OrderService
	CancelSvc *services.CancellationService
	ReportSvc *services.ReportService
}

func NewBackofficeOrderController(s *services.OrderService, cs *services.CancellationService, rs *services.ReportService) *BackofficeOrderController {
	return &BackofficeOrderController{Svc: s, CancelSvc: cs, ReportSvc: rs}
}

func isAdmin(c *gin.Context) bool { return utils.CurrentRole(c) == "admin" }

// GET /partner/restaurants/:id/orders?status=&page=&limit=
func (ctl *BackofficeOrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, _ := strconv.Atoi(c.Param("id"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := ctl.Svc.ListForRestaurant(uid, isAdmin(c), uint(restID), c.Query("status"), page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/orders/:id
func (ctl *BackofficeOrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	d, err := ctl.Svc.DetailForRestaurant(uid, isAdmin(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// the UI renders its single action button from this suggestion
	next := services.NextStatus(d.Order.OrderStatus, d.Order.OrderType, d.Order.Source)
	resp.OK(c, gin.H{"order": d.Order, "items": d.Items, "nextStatus": next})
}

// PATCH /partner/orders/:id/advance
func (ctl *BackofficeOrderController) Advance(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	o, err := ctl.Svc.Advance(uid, isAdmin(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, o)
}

type SetStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status
func (ctl *BackofficeOrderController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req SetStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := ctl.Svc.SetStatus(uint(id), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /partner/orders/:id/cancel — admin override skips the policy checks,
// owners go through them like everyone else.
func (ctl *BackofficeOrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req CancelOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := ctl.CancelSvc.Cancel(uid, role, uint(id), req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /partner/restaurants/:id/pos-orders — counter staff keying in a
// walk-in order at the register.
func (ctl *BackofficeOrderController) CreatePOS(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, _ := strconv.Atoi(c.Param("id"))

	var req services.DirectOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.RestaurantID = uint(restID)

	// staff can only key orders into their own restaurant
	if !isAdmin(c) {
		ok, err := ctl.Svc.OwnerCheck(req.RestaurantID, uid)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if !ok {
			resp.Forbidden(c, "forbidden")
			return
		}
	}

	out, err := ctl.Svc.CreateDirect(entity.SourcePOS, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /partner/restaurants/:id/report?from=2025-06-01&to=2025-06-30
func (ctl *BackofficeOrderController) SalesReport(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, _ := strconv.Atoi(c.Param("id"))

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t.AddDate(0, 0, 1) // inclusive end date
		}
	}

	sum, err := ctl.ReportSvc.SummaryForRestaurant(uid, isAdmin(c), uint(restID), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, sum)
}
