package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-judge/api/middleware"
	"prompt-judge/services"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler godoc
// @Summary      Sign up
// @Description  Register a new account and return a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.AuthResponse
// @Failure      400  {object}  object{error=string}
// @Router       /auth/signup [post]
func SignupHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		resp, err := svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Exchange credentials for a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.AuthResponse
// @Failure      401  {object}  object{error=string}
// @Router       /auth/login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		resp, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// MeHandler godoc
// @Summary      Current user
// @Description  Return the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserDTO
// @Failure      401  {object}  object{error=string}
// @Router       /auth/me [get]
func MeHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := svc.Profile(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
