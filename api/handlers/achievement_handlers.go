package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-judge/api/middleware"
	"prompt-judge/dto"
	"prompt-judge/services"
)

type checkAchievementsRequest struct {
	Category string `json:"category"`
}

// CheckAchievementsHandler godoc
// @Summary      Check achievements
// @Description  Re-evaluate the badge rules for the user and award anything newly qualified. An empty category checks everything.
// @Tags         achievements
// @Accept       json
// @Produce      json
// @Success      200  {object}  object{new_achievements=[]achievements.Definition}
// @Failure      401  {object}  object{error=string}
// @Router       /achievements/check [post]
func CheckAchievementsHandler(svc *services.AchievementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req checkAchievementsRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
		}

		awarded, err := svc.CheckAndAward(c.Request.Context(), userID, req.Category)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"new_achievements": awarded})
	}
}

// ListAchievementsHandler godoc
// @Summary      List achievements
// @Description  The user's earned badges, newest first
// @Tags         achievements
// @Produce      json
// @Success      200  {object}  object{achievements=[]dto.AchievementDTO}
// @Failure      401  {object}  object{error=string}
// @Router       /achievements [get]
func ListAchievementsHandler(svc *services.AchievementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		earned, err := svc.ListForUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}

		out := make([]dto.AchievementDTO, 0, len(earned))
		for _, a := range earned {
			out = append(out, dto.NewAchievementDTO(a))
		}
		c.JSON(http.StatusOK, gin.H{"achievements": out})
	}
}
