package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Placify/config"
	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/middleware"
	"github.com/lshigami/Placify/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
	cfg         *config.Config
}

func NewAuthController(authService service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{authService: authService, cfg: cfg}
}

// Login godoc
// @Summary Log in with username and password
// @Description Verifies credentials, opens a session and sets the session cookie. The response tells the client which dashboard to redirect to.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Username and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	resp, token, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Login failed"))
		return
	}

	maxAge := c.cfg.Session.TTLHours * 3600
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary Register a new student account
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body dto.RegisterRequest true "Student signup fields"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or username/email already taken"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	if err := c.authService.Register(req); err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username or email already exists"))
			return
		}
		log.Error().Err(err).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Registration failed"))
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Registration successful"})
}

// Logout godoc
// @Summary Log out and clear the session
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token, _ := ctx.Cookie(middleware.SessionCookieName)
	if err := c.authService.Logout(token); err != nil {
		log.Warn().Err(err).Msg("Logout: service error")
	}
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// UserInfo godoc
// @Summary Echo the authenticated session identity
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserInfoResponse
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Router /api/user_info [get]
func (c *AuthController) UserInfo(ctx *gin.Context) {
	auth, ok := middleware.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
		return
	}
	ctx.JSON(http.StatusOK, dto.UserInfoResponse{
		UserID:   auth.UserID,
		Username: auth.Username,
		FullName: auth.FullName,
		Role:     auth.Role,
	})
}
