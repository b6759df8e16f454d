package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/kboussakridev/plateform-d-entrevue/api/middleware"
	domainErrors "github.com/kboussakridev/plateform-d-entrevue/domain/errors"
	"github.com/kboussakridev/plateform-d-entrevue/usecase"

	"github.com/gin-gonic/gin"
)

// --- 响应结构定义 ---

// ErrorResponse 错误响应结构
// 对外只返回粗粒度提示，内部错误细节记日志不出响应体
type ErrorResponse struct {
	Error string `json:"error"`
}

// internalError 记录底层错误并返回固定的 500 响应
func internalError(c *gin.Context, component string, err error) {
	log.Printf("[%s] ❌ 内部错误: %v", component, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "服务器内部错误"})
}

// --- 请求结构定义 ---

// CreateInterviewRequest 创建面试请求结构
type CreateInterviewRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    *string  `json:"description"`
	StartTime      int64    `json:"startTime" binding:"required"` // 毫秒时间戳
	Status         string   `json:"status" binding:"required"`
	StreamCallID   string   `json:"streamCallId" binding:"required"`
	CandidateID    string   `json:"candidateId" binding:"required"`
	InterviewerIDs []string `json:"interviewerIds" binding:"required"`
}

// UpdateInterviewStatusRequest 更新面试状态请求结构
type UpdateInterviewStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- 控制器定义 ---

// InterviewController 面试 HTTP 控制器
type InterviewController struct {
	interviewUseCase *usecase.InterviewUseCase
}

// NewInterviewController 创建 InterviewController 实例
func NewInterviewController(interviewUseCase *usecase.InterviewUseCase) *InterviewController {
	return &InterviewController{interviewUseCase: interviewUseCase}
}

// GetMyInterviews 获取当前调用者（候选人）的面试列表
// GET /api/interviews/my
// 挂载可选认证中间件：未认证时返回空列表而不是 401
func (ic *InterviewController) GetMyInterviews(c *gin.Context) {
	callerID := middleware.CallerID(c)

	interviews, err := ic.interviewUseCase.GetMyInterviews(callerID)
	if err != nil {
		internalError(c, "Interview", err)
		return
	}

	c.JSON(http.StatusOK, interviews)
}

// GetInterviewByStreamCallID 根据通话会话 ID 获取面试
// GET /api/interviews/stream/:streamCallId
func (ic *InterviewController) GetInterviewByStreamCallID(c *gin.Context) {
	streamCallID := c.Param("streamCallId")
	if streamCallID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "streamCallId 不能为空"})
		return
	}

	interview, err := ic.interviewUseCase.GetByStreamCallID(streamCallID)
	if err != nil {
		internalError(c, "Interview", err)
		return
	}
	if interview == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "面试不存在"})
		return
	}

	c.JSON(http.StatusOK, interview)
}

// CreateInterview 创建面试
// POST /api/interviews
// 调用者必须是该面试的候选人本人
func (ic *InterviewController) CreateInterview(c *gin.Context) {
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求参数无效"})
		return
	}

	callerID := middleware.CallerID(c)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "未获取到用户信息"})
		return
	}

	interview, err := ic.interviewUseCase.CreateInterview(callerID, usecase.CreateInterviewParams{
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      req.StartTime,
		Status:         req.Status,
		StreamCallID:   req.StreamCallID,
		CandidateID:    req.CandidateID,
		InterviewerIDs: req.InterviewerIDs,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotInterviewOwner) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "只能以候选人本人身份创建面试"})
			return
		}
		internalError(c, "Interview", err)
		return
	}

	c.JSON(http.StatusCreated, interview)
}

// UpdateInterviewStatus 更新面试状态
// PUT /api/interviews/:id/status
// 状态更新为 completed 时自动写入结束时间
func (ic *InterviewController) UpdateInterviewStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "面试 ID 无效"})
		return
	}

	var req UpdateInterviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求参数无效"})
		return
	}

	if err := ic.interviewUseCase.UpdateStatus(uint(id), req.Status); err != nil {
		if errors.Is(err, domainErrors.ErrInterviewNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "面试不存在"})
			return
		}
		internalError(c, "Interview", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "状态已更新"})
}
