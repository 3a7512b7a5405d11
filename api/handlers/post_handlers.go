package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-judge/api/middleware"
	"prompt-judge/dto"
	"prompt-judge/logger"
	"prompt-judge/models"
	"prompt-judge/services"
)

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Prompt   string `json:"prompt"`
	Category string `json:"category"`
}

type addCommentRequest struct {
	Content string `json:"content"`
}

// CreatePostHandler godoc
// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.PostDTO
// @Failure      400  {object}  object{error=string}
// @Failure      401  {object}  object{error=string}
// @Router       /posts [post]
func CreatePostHandler(svc *services.PostService, achievements *services.AchievementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		post, err := svc.Create(c.Request.Context(), userID, req.Title, req.Content, req.Prompt, req.Category)
		if err != nil {
			writeError(c, err)
			return
		}

		checkAchievements(c, achievements, userID, models.AchievementCategoryCommunity)
		c.JSON(http.StatusCreated, dto.NewPostDTO(*post))
	}
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List posts, newest first, optionally filtered by category
// @Tags         posts
// @Param        category  query  string  false  "Category filter"
// @Produce      json
// @Success      200  {object}  object{posts=[]dto.PostDTO}
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			writeError(c, err)
			return
		}

		out := make([]dto.PostDTO, 0, len(posts))
		for _, p := range posts {
			out = append(out, dto.NewPostDTO(p))
		}
		c.JSON(http.StatusOK, gin.H{"posts": out})
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		post, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTO(*post))
	}
}

// DeletePostHandler godoc
// @Summary      Delete post
// @Description  Remove the requester's own post
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      403  {object}  object{error=string}
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
	}
}

// TogglePostLikeHandler godoc
// @Summary      Toggle post like
// @Description  Flip the requester's like and report the new state
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{liked=bool}
// @Router       /posts/{id}/like [post]
func TogglePostLikeHandler(svc *services.PostService) gin.HandlerFunc {
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

// AddCommentHandler godoc
// @Summary      Add comment
// @Description  Append a comment and return the updated post
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.PostDTO
// @Router       /posts/{id}/comments [post]
func AddCommentHandler(svc *services.PostService, achievements *services.AchievementService) gin.HandlerFunc {
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

		var req addCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		post, err := svc.AddComment(c.Request.Context(), id, userID, req.Content)
		if err != nil {
			writeError(c, err)
			return
		}

		checkAchievements(c, achievements, userID, models.AchievementCategoryCommunity)
		c.JSON(http.StatusCreated, dto.NewPostDTO(*post))
	}
}

// DeleteCommentHandler godoc
// @Summary      Delete comment
// @Description  Remove the requester's own comment
// @Tags         posts
// @Param        id         path   string  true  "Post ObjectID"
// @Param        commentId  path   string  true  "Comment ObjectID"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      403  {object}  object{error=string}
// @Router       /posts/{id}/comments/{commentId} [delete]
func DeleteCommentHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		postID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}
		commentID, ok := objectIDParam(c, "commentId")
		if !ok {
			return
		}

		if err := svc.DeleteComment(c.Request.Context(), postID, commentID, userID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
	}
}

// checkAchievements runs a best-effort badge check after a write.
// Failures are logged and never affect the response.
func checkAchievements(c *gin.Context, svc *services.AchievementService, userID primitive.ObjectID, category string) {
	if _, err := svc.CheckAndAward(c.Request.Context(), userID, category); err != nil {
		logger.WarnWithFields("achievement check failed", logger.Fields{
			"user_id":  userID.Hex(),
			"category": category,
			"error":    err.Error(),
		})
	}
}
