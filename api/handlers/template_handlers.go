package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-judge/api/middleware"
	"prompt-judge/dto"
	"prompt-judge/models"
	"prompt-judge/services"
)

type createTemplateRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
}

// CreateTemplateHandler godoc
// @Summary      Create template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.TemplateDTO
// @Failure      400  {object}  object{error=string}
// @Router       /templates [post]
func CreateTemplateHandler(svc *services.TemplateService, achievements *services.AchievementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req createTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		tpl, err := svc.Create(c.Request.Context(), userID, req.Title, req.Content, req.Category, req.Difficulty, req.Tags)
		if err != nil {
			writeError(c, err)
			return
		}

		checkAchievements(c, achievements, userID, models.AchievementCategoryTemplate)
		c.JSON(http.StatusCreated, dto.NewTemplateDTO(*tpl))
	}
}

// ListTemplatesHandler godoc
// @Summary      List templates
// @Description  List templates by usage count, optionally filtered by category
// @Tags         templates
// @Param        category  query  string  false  "Category filter"
// @Produce      json
// @Success      200  {object}  object{templates=[]dto.TemplateDTO}
// @Router       /templates [get]
func ListTemplatesHandler(svc *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		templates, err := svc.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			writeError(c, err)
			return
		}

		out := make([]dto.TemplateDTO, 0, len(templates))
		for _, t := range templates {
			out = append(out, dto.NewTemplateDTO(t))
		}
		c.JSON(http.StatusOK, gin.H{"templates": out})
	}
}

// GetTemplateHandler godoc
// @Summary      Get template by id
// @Tags         templates
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.TemplateDTO
// @Failure      404  {object}  object{error=string}
// @Router       /templates/{id} [get]
func GetTemplateHandler(svc *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		tpl, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewTemplateDTO(*tpl))
	}
}

// DeleteTemplateHandler godoc
// @Summary      Delete template
// @Description  Remove the requester's own template
// @Tags         templates
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      403  {object}  object{error=string}
// @Router       /templates/{id} [delete]
func DeleteTemplateHandler(svc *services.TemplateService) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
	}
}

// ToggleTemplateLikeHandler godoc
// @Summary      Toggle template like
// @Tags         templates
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{liked=bool}
// @Router       /templates/{id}/like [post]
func ToggleTemplateLikeHandler(svc *services.TemplateService) gin.HandlerFunc {
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

		liked, err := svc.ToggleLike(c.Request.Context(), id, userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"liked": liked})
	}
}

// UseTemplateHandler godoc
// @Summary      Use template
// @Description  Bump the template's usage counter and return the template content for the analyze page
// @Tags         templates
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.TemplateDTO
// @Failure      404  {object}  object{error=string}
// @Router       /templates/{id}/use [post]
func UseTemplateHandler(svc *services.TemplateService, achievements *services.AchievementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		if err := svc.RecordUsage(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}

		tpl, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}

		// usage may push the author over the Template Master threshold
		checkAchievements(c, achievements, tpl.Author, models.AchievementCategoryTemplate)
		c.JSON(http.StatusOK, dto.NewTemplateDTO(*tpl))
	}
}
