package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kboussakridev/plateform-d-entrevue/api/middleware"
	"github.com/kboussakridev/plateform-d-entrevue/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ========== 错误响应测试 ==========
// 500 响应只返回固定提示，底层存储错误（连接串、主机名等）绝不进入响应体

// sensitiveStoreErr 模拟带敏感信息的持久化错误
var sensitiveStoreErr = errors.New("pq: connection refused host=db-internal.prod:5432 user=app password authentication failed")

// assertInternalErrorMasked 断言 500 响应体不包含底层错误细节
func assertInternalErrorMasked(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"服务器内部错误"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "db-internal")
	assert.NotContains(t, w.Body.String(), "pq:")
}

// TestInterviewController_StoreErrorMasked 面试查询落库失败时响应体不泄露错误细节
func TestInterviewController_StoreErrorMasked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockInterviewRepository)
	mockRepo.On("GetByStreamCallID", "call-1").Return(nil, sensitiveStoreErr)

	ic := NewInterviewController(usecase.NewInterviewUseCase(mockRepo))
	router := gin.New()
	router.GET("/api/interviews/stream/:streamCallId", ic.GetInterviewByStreamCallID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/interviews/stream/call-1", nil))

	assertInternalErrorMasked(t, w)
}

// TestCommentController_StoreErrorMasked 评价查询落库失败时响应体不泄露错误细节
func TestCommentController_StoreErrorMasked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockComments := new(MockCommentRepository)
	mockInterviews := new(MockInterviewRepository)
	mockComments.On("GetByInterviewID", uint(3)).Return(nil, sensitiveStoreErr)

	cc := NewCommentController(usecase.NewCommentUseCase(mockComments, mockInterviews))
	router := gin.New()
	router.GET("/api/interviews/:id/comments", cc.GetComments)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/interviews/3/comments", nil))

	assertInternalErrorMasked(t, w)
}

// TestUserController_StoreErrorMasked 用户查询落库失败时响应体不泄露错误细节
func TestUserController_StoreErrorMasked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockUserRepository)
	mockRepo.On("GetAll").Return(nil, sensitiveStoreErr)

	uc := NewUserController(usecase.NewUserUseCase(mockRepo))
	router := gin.New()
	router.GET("/api/users", uc.GetUsers)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assertInternalErrorMasked(t, w)
}

// TestInterviewController_BadRequestFixedMessage 参数绑定失败返回固定提示
// 不回显校验器内部的字段错误详情
func TestInterviewController_BadRequestFixedMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockInterviewRepository)
	ic := NewInterviewController(usecase.NewInterviewUseCase(mockRepo))
	router := gin.New()
	router.POST("/api/interviews", func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, "cand-1")
		ic.CreateInterview(c)
	})

	// title 缺失，binding:"required" 校验失败
	body := `{"startTime":1735689600000,"status":"scheduled","streamCallId":"call-1","candidateId":"cand-1","interviewerIds":["int-1"]}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/interviews", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"请求参数无效"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "Field validation")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}
