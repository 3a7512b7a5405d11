package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-judge/api/middleware"
	"prompt-judge/services"
)

// DashboardHandler godoc
// @Summary      User dashboard
// @Description  Recent analyses, achievements, aggregate stats and the six-month score trend
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.Dashboard
// @Failure      401  {object}  object{error=string}
// @Router       /user/analysis [get]
func DashboardHandler(svc *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		out, err := svc.Overview(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
