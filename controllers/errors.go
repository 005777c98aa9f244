package controllers

import (
	"errors"

	"github.com/dennxbot/food-ordering-system-sub000/pkg/resp"
	"github.com/dennxbot/food-ordering-system-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeServiceError maps the service error taxonomy onto HTTP. Store errors
// fall through unmodified as 500s.
func writeServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var denied *services.PolicyDenied
	switch {
	case errors.As(err, &vErr):
		resp.BadRequest(c, vErr.Error())
	case errors.As(err, &denied):
		resp.Forbidden(c, denied.Reason)
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNoTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
