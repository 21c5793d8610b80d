package api

import (
	"net/http"

	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	queries queries.UserQueries
}

func NewUserHandler(userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{queries: userQueries}
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	u, err := h.queries.GetCurrentUser(c.Request.Context(), v.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(u))
}
