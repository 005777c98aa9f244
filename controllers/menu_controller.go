package controllers

import (
	"strconv"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/resp"
	"github.com/dennxbot/food-ordering-system-sub000/repository"
	"github.com/dennxbot/food-ordering-system-sub000/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuController(mr *repository.MenuRepository, rr *repository.RestaurantRepository) *MenuController {
	return &MenuController{Repo: mr, RestRepo: rr}
}

func (ctl *MenuController) ownerCheck(c *gin.Context, restID uint) bool {
	if utils.CurrentRole(c) == "admin" {
		return true
	}
	ok, err := ctl.RestRepo.IsOwnedBy(restID, utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return false
	}
	if !ok {
		resp.Forbidden(c, "forbidden")
		return false
	}
	return true
}

// GET /restaurants/:id/menu
func (ctl *MenuController) ListByRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	cats, err := ctl.Repo.ListForRestaurant(uint(restID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// GET /items/:id
func (ctl *MenuController) GetItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Repo.GetFoodItem(uint(id))
	if err != nil {
		resp.NotFound(c, "item not found")
		return
	}
	resp.OK(c, item)
}

type CreateCategoryReq struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

// POST /partner/restaurants/:id/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	if !ctl.ownerCheck(c, uint(restID)) {
		return
	}

	var req CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Name: req.Name, SortOrder: req.SortOrder, RestaurantID: uint(restID)}
	if err := ctl.Repo.CreateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

type SizeIn struct {
	Name       string `json:"name" binding:"required"`
	PriceDelta int64  `json:"priceDelta"`
	SortOrder  int    `json:"sortOrder"`
}
type CreateFoodItemReq struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" binding:"required,min=1"` // minor units
	Picture     string   `json:"picture"`
	CategoryID  uint     `json:"categoryId" binding:"required"`
	Sizes       []SizeIn `json:"sizes"`
}

// POST /partner/restaurants/:id/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	if !ctl.ownerCheck(c, uint(restID)) {
		return
	}

	var req CreateFoodItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.FoodItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Picture:      req.Picture,
		IsAvailable:  true,
		CategoryID:   req.CategoryID,
		RestaurantID: uint(restID),
	}
	for _, s := range req.Sizes {
		item.Sizes = append(item.Sizes, entity.FoodSize{
			Name: s.Name, PriceDelta: s.PriceDelta, SortOrder: s.SortOrder,
		})
	}

	if err := ctl.Repo.CreateFoodItem(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type UpdateFoodItemReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Picture     *string `json:"picture"`
	IsAvailable *bool   `json:"isAvailable"`
}

// PATCH /partner/items/:id
// Price changes apply to future additions only; lines already in carts keep
// the price they were added at.
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Repo.GetFoodItem(uint(id))
	if err != nil {
		resp.NotFound(c, "item not found")
		return
	}
	if !ctl.ownerCheck(c, item.RestaurantID) {
		return
	}

	var req UpdateFoodItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Picture != nil {
		item.Picture = *req.Picture
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := ctl.Repo.SaveFoodItem(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}
