package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prompt-judge/api/middleware"
	"prompt-judge/dto"
	"prompt-judge/models"
	"prompt-judge/services"
)

type createChallengeRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Prompt      string    `json:"prompt"`
	Category    string    `json:"category"`
	Deadline    time.Time `json:"deadline"`
}

type submitChallengeRequest struct {
	Content string `json:"content"`
}

// CreateChallengeHandler godoc
// @Summary      Create challenge
// @Description  Store a new timed challenge; the deadline must lie in the future
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.ChallengeDTO
// @Failure      400  {object}  object{error=string}
// @Router       /challenges [post]
func CreateChallengeHandler(svc *services.ChallengeService, achievements *services.AchievementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req createChallengeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		ch, err := svc.Create(c.Request.Context(), userID, req.Title, req.Description, req.Prompt, req.Category, req.Deadline)
		if err != nil {
			writeError(c, err)
			return
		}

		checkAchievements(c, achievements, userID, models.AchievementCategoryChallenge)
		c.JSON(http.StatusCreated, dto.NewChallengeDTO(*ch))
	}
}

// ListChallengesHandler godoc
// @Summary      List challenges
// @Tags         challenges
// @Produce      json
// @Success      200  {object}  object{challenges=[]dto.ChallengeDTO}
// @Router       /challenges [get]
func ListChallengesHandler(svc *services.ChallengeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		challenges, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}

		out := make([]dto.ChallengeDTO, 0, len(challenges))
		for _, ch := range challenges {
			out = append(out, dto.NewChallengeDTO(ch))
		}
		c.JSON(http.StatusOK, gin.H{"challenges": out})
	}
}

// GetChallengeHandler godoc
// @Summary      Get challenge by id
// @Tags         challenges
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.ChallengeDTO
// @Failure      404  {object}  object{error=string}
// @Router       /challenges/{id} [get]
func GetChallengeHandler(svc *services.ChallengeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		ch, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewChallengeDTO(*ch))
	}
}

// DeleteChallengeHandler godoc
// @Summary      Delete challenge
// @Description  Remove the requester's own challenge
// @Tags         challenges
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      403  {object}  object{error=string}
// @Router       /challenges/{id} [delete]
func DeleteChallengeHandler(svc *services.ChallengeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), id, userID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "challenge deleted"})
	}
}

// SubmitChallengeHandler godoc
// @Summary      Submit to challenge
// @Description  Append the user's entry. Each user may submit once per challenge, before the deadline.
// @Tags         challenges
// @Param        id   path   string  true  "ObjectID"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.ChallengeDTO
// @Failure      400  {object}  object{error=string}
// @Failure      404  {object}  object{error=string}
// @Router       /challenges/{id}/submit [post]
func SubmitChallengeHandler(svc *services.ChallengeService, achievements *services.AchievementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var req submitChallengeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		ch, err := svc.Submit(c.Request.Context(), id, userID, req.Content)
		if err != nil {
			writeError(c, err)
			return
		}

		checkAchievements(c, achievements, userID, models.AchievementCategoryChallenge)
		c.JSON(http.StatusCreated, dto.NewChallengeDTO(*ch))
	}
}
