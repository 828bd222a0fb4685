package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/genaicorelab/iam-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	api.POST("/register/", h.userRegister)
	api.POST("/login/", h.userLogin)
	api.DELETE("/delete/", h.userDelete)

	users := api.Group("/users")
	users.GET("/me", h.userIdentityMiddleware, h.userMe)
}

type userRegisterInput struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Phone      string `json:"phone" binding:"required,phonenumber"`
	Role       string `json:"role" binding:"required"`
	Profession string `json:"profession" binding:"required"`
	Country    string `json:"country" binding:"required"`
	City       string `json:"city" binding:"required"`
}

type userRegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// @Summary User Register
// @Tags Users
// @Description Register a new user
// @ModuleID userRegister
// @Accept  json
// @Produce  json
// @Param input body userRegisterInput true "registration info"
// @Success 200 {object} userRegisterResponse
// @Failure 400 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /register/ [post]
func (h *Handler) userRegister(c *gin.Context) {
	var input userRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	userID, err := h.services.Users.Register(c.Request.Context(), service.UserRegisterInput{
		Username:   input.Username,
		Email:      input.Email,
		Password:   input.Password,
		Phone:      input.Phone,
		Role:       input.Role,
		Profession: input.Profession,
		Country:    input.Country,
		City:       input.City,
	})
	if err != nil {
		h.logger.Warn("register user failed", zap.String("username", input.Username), zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	h.logger.Info("user registered", zap.Int64("user_id", userID))

	c.JSON(http.StatusOK, userRegisterResponse{
		Message: "User registered successfully!",
		UserID:  userID,
	})
}

type userLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// @Summary User Login
// @Tags Users
// @Description Exchange email and password for a bearer token
// @ModuleID userLogin
// @Accept  json
// @Produce  json
// @Param input body userLoginInput true "credentials"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /login/ [post]
func (h *Handler) userLogin(c *gin.Context) {
	var input userLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	token, err := h.services.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.logger.Warn("login failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}

type userDeleteInput struct {
	Phone string `json:"phone" binding:"required,phonenumber"`
}

// @Summary User Delete
// @Tags Users
// @Description Delete a user by phone number
// @ModuleID userDelete
// @Accept  json
// @Produce  json
// @Param input body userDeleteInput true "phone"
// @Success 200 {object} messageResponse
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /delete/ [delete]
func (h *Handler) userDelete(c *gin.Context) {
	var input userDeleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Users.DeregisterByPhone(c.Request.Context(), input.Phone); err != nil {
		h.logger.Warn("delete user failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully!"})
}

type userProfileResponse struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	Profession       *string   `json:"profession"`
	Country          string    `json:"country"`
	City             string    `json:"city"`
	RegistrationDate time.Time `json:"registration_date"`
}

// @Summary Current User
// @Tags Users
// @Description Profile of the token holder
// @ModuleID userMe
// @Produce  json
// @Success 200 {object} userProfileResponse
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /users/me [get]
func (h *Handler) userMe(c *gin.Context) {
	email, err := getUserEmail(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	profile, err := h.services.Users.GetProfile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// token outlived the account
			unauthorizedResponse(c)
			return
		}
		serviceErrorResponse(c, err)
		return
	}

	response := userProfileResponse{
		ID:               profile.ID,
		Username:         profile.Username,
		Email:            profile.Email,
		Phone:            profile.Phone,
		Role:             profile.Role,
		Country:          profile.Country,
		City:             profile.City,
		RegistrationDate: profile.RegistrationDate,
	}
	if profile.Profession.Valid {
		response.Profession = &profile.Profession.String
	}

	c.JSON(http.StatusOK, response)
}
