package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"festmap/internal/entity"
	"festmap/internal/usecase"
	"festmap/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeUseCase is a mock implementation of LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) AddLike(postID uint, userIdentifier string) (int, error) {
	args := m.Called(postID, userIdentifier)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeUseCase) RemoveLike(postID uint, userIdentifier string) (int, error) {
	args := m.Called(postID, userIdentifier)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeUseCase) GetLikeCount(postID uint) (*entity.LikeSummary, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeSummary), args.Error(1)
}

func (m *MockLikeUseCase) GetLikedPosts(userIdentifier string, limit, offset int) ([]*entity.LikedPost, error) {
	args := m.Called(userIdentifier, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LikedPost), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newLikeHandlerForTest(mockUseCase *MockLikeUseCase) *LikeHandler {
	return NewLikeHandler(mockUseCase, logger.New(), false)
}

func TestAddLike_Success(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/posts/:postId", handler.AddLike)

	mockUseCase.On("AddLike", uint(42), "festival-goer-1").Return(1, nil)

	body := `{"user_identifier":"festival-goer-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/posts/42", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(42), response["post_id"])
	assert.Equal(t, float64(1), response["like_count"])
	assert.Equal(t, "festival-goer-1", response["user_identifier"])

	mockUseCase.AssertExpectations(t)
}

func TestAddLike_AlreadyLiked(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/posts/:postId", handler.AddLike)

	mockUseCase.On("AddLike", uint(42), "festival-goer-1").Return(0, entity.ErrAlreadyExists)

	body := `{"user_identifier":"festival-goer-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/posts/42", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddLike_PostNotFound(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/posts/:postId", handler.AddLike)

	mockUseCase.On("AddLike", uint(9999), "festival-goer-1").Return(0, entity.ErrNotFound)

	body := `{"user_identifier":"festival-goer-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/posts/9999", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddLike_InvalidPostID(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/posts/:postId", handler.AddLike)

	body := `{"user_identifier":"festival-goer-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/posts/abc", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "AddLike")
}

func TestAddLike_MissingBody(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/posts/:postId", handler.AddLike)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/posts/42", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "AddLike")
}

func TestRemoveLike_Success(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/likes/posts/:postId", handler.RemoveLike)

	mockUseCase.On("RemoveLike", uint(42), "festival-goer-1").Return(0, nil)

	body := `{"user_identifier":"festival-goer-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/likes/posts/42", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(42), response["post_id"])
	assert.Equal(t, float64(0), response["like_count"])

	mockUseCase.AssertExpectations(t)
}

func TestRemoveLike_NotLiked(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/likes/posts/:postId", handler.RemoveLike)

	mockUseCase.On("RemoveLike", uint(42), "festival-goer-2").Return(0, entity.ErrNotFound)

	body := `{"user_identifier":"festival-goer-2"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/likes/posts/42", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPostLikes_Success(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.GET("/likes/posts/:postId", handler.GetPostLikes)

	summary := &entity.LikeSummary{
		PostID:     42,
		LikeCount:  2,
		LikedUsers: []string{"festival-goer-1", "festival-goer-2"},
	}
	mockUseCase.On("GetLikeCount", uint(42)).Return(summary, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/posts/42", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["like_count"])
	users := response["liked_users"].([]interface{})
	assert.Equal(t, 2, len(users))
	assert.Equal(t, "festival-goer-1", users[0])

	mockUseCase.AssertExpectations(t)
}

func TestGetPostLikes_NoLikes(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.GET("/likes/posts/:postId", handler.GetPostLikes)

	summary := &entity.LikeSummary{
		PostID:     7,
		LikeCount:  0,
		LikedUsers: []string{},
	}
	mockUseCase.On("GetLikeCount", uint(7)).Return(summary, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/posts/7", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(0), response["like_count"])

	mockUseCase.AssertExpectations(t)
}

func TestGetLikedPosts_Success(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.GET("/likes/user/:userIdentifier", handler.GetLikedPosts)

	mockPosts := []*entity.LikedPost{
		{Post: entity.Post{ID: 1, Content: "Post 1", LikesCount: 3}},
		{Post: entity.Post{ID: 2, Content: "Post 2", LikesCount: 1}},
	}
	mockUseCase.On("GetLikedPosts", "festival-goer-1", 20, 0).Return(mockPosts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/user/festival-goer-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	posts := response["data"].([]interface{})
	assert.Equal(t, 2, len(posts))
	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(t, false, pagination["hasMore"])

	mockUseCase.AssertExpectations(t)
}

func TestGetLikedPosts_InvalidIdentifier(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	router := setupTestRouter()
	router.GET("/likes/user/:userIdentifier", handler.GetLikedPosts)

	mockUseCase.On("GetLikedPosts", " ", 20, 0).Return(nil, entity.ErrInvalidArgument)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/user/%20", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestNewLikeHandler(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := newLikeHandlerForTest(mockUseCase)

	assert.NotNil(t, handler)
}
