package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexschwind/ratemycourses/internal/dto"
	"github.com/alexschwind/ratemycourses/internal/handler"
	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileService mocks the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(userID string) (*service.ProfileView, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) Update(userID string, levels map[models.Dimension]int, practicalPreference int) (*service.ProfileView, error) {
	args := m.Called(userID, levels, practicalPreference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func setupProfileRouter(mockService *MockProfileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	api.Use(mockAuthMiddleware(models.RoleUser))
	h := handler.NewProfileHandler(mockService)
	h.RegisterRoutes(api.Group("/me"))
	return router
}

// dimensionMap assigns the same value to all ten dimensions.
func dimensionMap(value int) map[models.Dimension]int {
	m := make(map[models.Dimension]int, 10)
	for _, d := range models.AllDimensions() {
		m[d] = value
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func TestGetProfile_Success(t *testing.T) {
	mockService := new(MockProfileService)
	router := setupProfileRouter(mockService)

	view := &service.ProfileView{
		Weights:             dimensionMap(20),
		Levels:              dimensionMap(3),
		PracticalPreference: 60,
	}
	mockService.On("Get", "test-user-id").Return(view, nil)

	req, _ := http.NewRequest("GET", "/api/me/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ProfileResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 20, response.Weights[models.DimensionWorkload])
	assert.Equal(t, 3, response.Importance[models.DimensionWorkload])
	assert.Equal(t, 60, response.PracticalPreference)
	assert.Len(t, response.Weights, 10)

	mockService.AssertExpectations(t)
}

func TestGetProfile_NotFound(t *testing.T) {
	mockService := new(MockProfileService)
	router := setupProfileRouter(mockService)

	mockService.On("Get", "test-user-id").Return(nil, service.ErrProfileNotFound)

	req, _ := http.NewRequest("GET", "/api/me/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestUpdateProfile_Success(t *testing.T) {
	mockService := new(MockProfileService)
	router := setupProfileRouter(mockService)

	importance := dimensionMap(3)
	importance[models.DimensionWorkload] = 5

	weights := dimensionMap(20)
	weights[models.DimensionWorkload] = 80

	view := &service.ProfileView{
		Weights:             weights,
		Levels:              importance,
		PracticalPreference: 70,
	}
	mockService.On("Update", "test-user-id", importance, 70).Return(view, nil)

	reqBody := dto.UpdateProfileRequest{
		Importance:          importance,
		PracticalPreference: intPtr(70),
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("PUT", "/api/me/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ProfileResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 80, response.Weights[models.DimensionWorkload])
	assert.Equal(t, 5, response.Importance[models.DimensionWorkload])
	assert.Equal(t, 70, response.PracticalPreference)

	mockService.AssertExpectations(t)
}

func TestUpdateProfile_ZeroPreference(t *testing.T) {
	mockService := new(MockProfileService)
	router := setupProfileRouter(mockService)

	importance := dimensionMap(3)
	view := &service.ProfileView{
		Weights:             dimensionMap(20),
		Levels:              importance,
		PracticalPreference: 0,
	}
	mockService.On("Update", "test-user-id", importance, 0).Return(view, nil)

	reqBody := dto.UpdateProfileRequest{
		Importance:          importance,
		PracticalPreference: intPtr(0),
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("PUT", "/api/me/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// a fully theoretical preference is a valid value, not a missing field
	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestUpdateProfile_ValidationError(t *testing.T) {
	mockService := new(MockProfileService)
	router := setupProfileRouter(mockService)

	importance := dimensionMap(9)
	mockService.On("Update", "test-user-id", importance, 50).
		Return(nil, service.ErrValidation)

	reqBody := dto.UpdateProfileRequest{
		Importance:          importance,
		PracticalPreference: intPtr(50),
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("PUT", "/api/me/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestUpdateProfile_MissingPreference(t *testing.T) {
	mockService := new(MockProfileService)
	router := setupProfileRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{
		"importance": dimensionMap(3),
	})

	req, _ := http.NewRequest("PUT", "/api/me/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Update")
}
