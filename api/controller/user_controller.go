package controller

import (
	"net/http"

	"github.com/kboussakridev/plateform-d-entrevue/usecase"

	"github.com/gin-gonic/gin"
)

// UserController 用户 HTTP 控制器
// 只读查询，用户写入只发生在 Webhook 同步路径
type UserController struct {
	userUseCase *usecase.UserUseCase
}

// NewUserController 创建 UserController 实例
func NewUserController(userUseCase *usecase.UserUseCase) *UserController {
	return &UserController{userUseCase: userUseCase}
}

// GetUsers 获取所有用户
// GET /api/users
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.userUseCase.GetUsers()
	if err != nil {
		internalError(c, "User", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserByClerkID 根据 Clerk user_id 获取用户
// GET /api/users/:clerkId
func (uc *UserController) GetUserByClerkID(c *gin.Context) {
	clerkID := c.Param("clerkId")
	if clerkID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "clerkId 不能为空"})
		return
	}

	user, err := uc.userUseCase.GetUserByClerkID(clerkID)
	if err != nil {
		internalError(c, "User", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "用户不存在"})
		return
	}

	c.JSON(http.StatusOK, user)
}
