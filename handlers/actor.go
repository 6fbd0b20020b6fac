package handlers

import (
	"WardShift/middlewares"
	"WardShift/services"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errUserNotFound = errors.New("user not found")

// resolveActor returns the full name of the authenticated staff member, used
// as the actor on audit log entries and record attributions.
func resolveActor(c *gin.Context, users services.UserService) (string, error) {
	userIDStr, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return "", err
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return "", err
	}
	user, err := users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errUserNotFound
	}
	return user.FullName, nil
}
