package controllers

import (
	"strconv"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/resp"
	"github.com/dennxbot/food-ordering-system-sub000/repository"
	"github.com/dennxbot/food-ordering-system-sub000/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Repo *repository.RestaurantRepository }

func NewRestaurantController(r *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: r}
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := ctl.Repo.List(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := ctl.Repo.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, rest)
}

// GET /partner/restaurants (owner's own)
func (ctl *RestaurantController) Mine(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	items, err := ctl.Repo.ListOwnedBy(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type CreateRestaurantReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	OwnerID     uint   `json:"ownerId" binding:"required"`
}

// POST /admin/restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest := entity.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		UserID:      req.OwnerID,
	}
	if err := ctl.Repo.Create(&rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rest)
}

type UpdateRestaurantReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	IsOpen      *bool   `json:"isOpen"`
}

// PATCH /partner/restaurants/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if role != "admin" {
		ok, err := ctl.Repo.IsOwnedBy(uint(id), uid)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if !ok {
			resp.Forbidden(c, "forbidden")
			return
		}
	}

	rest, err := ctl.Repo.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	var req UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name != nil {
		rest.Name = *req.Name
	}
	if req.Description != nil {
		rest.Description = *req.Description
	}
	if req.PhoneNumber != nil {
		rest.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		rest.Address = *req.Address
	}
	if req.IsOpen != nil {
		rest.IsOpen = *req.IsOpen
	}

	if err := ctl.Repo.Save(rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}
