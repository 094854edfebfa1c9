package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userUC "github.com/khoahotran/user-registry/internal/application/usecase/user"
	"github.com/khoahotran/user-registry/pkg/apperror"
	"github.com/khoahotran/user-registry/pkg/logger"
)

const (
	msgRegisterFailed = "Please try again...!"
	// Lookup misses answer 500 with this text, same as lookup failures.
	msgUserNotFound = "Please Try again!"
)

type UserHandler struct {
	registerUserUseCase *userUC.RegisterUserUseCase
	getUserUseCase      *userUC.GetUserUseCase
	logger              logger.Logger
}

func NewUserHandler(registerUC *userUC.RegisterUserUseCase, getUC *userUC.GetUserUseCase, log logger.Logger) *UserHandler {
	return &UserHandler{
		registerUserUseCase: registerUC,
		getUserUseCase:      getUC,
		logger:              log,
	}
}

func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for user registration", err))
		return
	}

	input := req.ToInput()
	if _, err := h.registerUserUseCase.Execute(c.Request.Context(), input); err != nil {
		h.logger.Error("Error registering user!", err, zap.String("email", input.Email))
		c.String(http.StatusInternalServerError, msgRegisterFailed)
		return
	}

	c.Status(http.StatusOK)
}

func (h *UserHandler) FindUserByEmail(c *gin.Context) {
	email := c.Param("email")

	output, err := h.getUserUseCase.Execute(c.Request.Context(), userUC.GetUserInput{Email: email})
	if err != nil {
		h.logger.Error("Cant find user email", err, zap.String("email", email))
		c.String(http.StatusInternalServerError, msgUserNotFound)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(output.User))
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/user")
	{
		users.POST("/", h.RegisterUser)
		users.GET("/:email", h.FindUserByEmail)
	}
}
