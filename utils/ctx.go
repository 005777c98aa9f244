package utils

import "github.com/gin-gonic/gin"

// CurrentUserID and CurrentRole read the identity the auth middlewares put
// on the context. Zero values mean the request was not authenticated.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	id, _ := v.(uint)
	return id
}

func CurrentRole(c *gin.Context) string {
	v, _ := c.Get("role")
	role, _ := v.(string)
	return role
}
