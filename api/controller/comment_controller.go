package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kboussakridev/plateform-d-entrevue/api/middleware"
	domainErrors "github.com/kboussakridev/plateform-d-entrevue/domain/errors"
	"github.com/kboussakridev/plateform-d-entrevue/usecase"

	"github.com/gin-gonic/gin"
)

// AddCommentRequest 添加评价请求结构
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// CommentController 面试评价 HTTP 控制器
type CommentController struct {
	commentUseCase *usecase.CommentUseCase
}

// NewCommentController 创建 CommentController 实例
func NewCommentController(commentUseCase *usecase.CommentUseCase) *CommentController {
	return &CommentController{commentUseCase: commentUseCase}
}

// AddComment 为某场面试添加评价
// POST /api/interviews/:id/comments
// 评价人为当前调用者（面试官）
func (cc *CommentController) AddComment(c *gin.Context) {
	interviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "面试 ID 无效"})
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求参数无效"})
		return
	}

	callerID := middleware.CallerID(c)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "未获取到用户信息"})
		return
	}

	comment, err := cc.commentUseCase.AddComment(callerID, uint(interviewID), req.Content, req.Rating)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInterviewNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "面试不存在"})
			return
		}
		internalError(c, "Comment", err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetComments 获取某场面试的所有评价
// GET /api/interviews/:id/comments
func (cc *CommentController) GetComments(c *gin.Context) {
	interviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "面试 ID 无效"})
		return
	}

	comments, err := cc.commentUseCase.GetComments(uint(interviewID))
	if err != nil {
		internalError(c, "Comment", err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
