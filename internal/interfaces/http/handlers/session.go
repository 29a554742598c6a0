package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/infrastructure/userservice"
	"github.com/coffeetech/farms/internal/shared/constants"
	"github.com/coffeetech/farms/internal/shared/utils"
)

// sessionUser returns the user stored by the session middleware. It writes a
// 401 and returns false when the route was mounted without it.
func sessionUser(c *gin.Context) (*userservice.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if exists {
		if user, ok := v.(*userservice.User); ok && user != nil {
			return user, true
		}
	}
	utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgSessionExpired)
	return nil, false
}
