package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-judge/api/middleware"
	"prompt-judge/dto"
	"prompt-judge/logger"
	"prompt-judge/models"
	"prompt-judge/rubric"
	"prompt-judge/services"
)

type analyzeRequest struct {
	Prompt string `json:"prompt"`
	Mode   string `json:"mode"`
}

// AnalyzeHandler godoc
// @Summary      Analyze a prompt
// @Description  Run a prompt through the model and score it on five categories. Works with or without authentication; only authenticated analyses are persisted and counted toward achievements.
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Success      200  {object}  object{analysis=dto.AnalysisResponse}
// @Failure      400  {object}  object{error=string}
// @Failure      429  {object}  object{error=string}
// @Failure      503  {object}  object{error=string}
// @Router       /analyze [post]
func AnalyzeHandler(svc *services.AnalysisService, achievements *services.AchievementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Mode == "" {
			req.Mode = models.ModeCasual
		}

		userID, _ := middleware.UserID(c)

		result, err := svc.Analyze(c.Request.Context(), userID, req.Prompt, req.Mode)
		if err != nil {
			writeError(c, err)
			return
		}

		// Badge thresholds may have just been crossed. A failure here
		// must not fail the analysis that was already paid for.
		if result.Saved {
			awarded, err := achievements.CheckAndAward(c.Request.Context(), userID, models.AchievementCategoryAnalysis)
			if err != nil {
				logger.WarnWithFields("achievement check failed", logger.Fields{
					"user_id": userID.Hex(),
					"error":   err.Error(),
				})
			} else if len(awarded) > 0 {
				c.JSON(http.StatusOK, gin.H{"analysis": result, "new_achievements": awarded})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"analysis": result})
	}
}

// ListModesHandler godoc
// @Summary      List analysis modes
// @Description  Describe the available analysis modes with their criteria, template and example prompts
// @Tags         analyze
// @Produce      json
// @Success      200  {object}  object{modes=[]dto.ModeGuide}
// @Router       /analyze/modes [get]
func ListModesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		modes := rubric.Modes()
		out := make([]dto.ModeGuide, 0, len(modes))
		for _, mode := range modes {
			r, _ := rubric.Get(mode)
			out = append(out, dto.ModeGuide{
				Mode:     mode,
				Criteria: r.Criteria,
				Template: r.Template,
				Examples: r.Examples,
			})
		}
		c.JSON(http.StatusOK, gin.H{"modes": out})
	}
}
