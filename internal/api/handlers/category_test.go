package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menu-platform-backend/internal/api/handlers"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/mocks"
	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockService     *mocks.MockCategoryServiceInterface
	mockBizService  *mocks.MockBusinessServiceInterface
	router          *gin.Engine
	userID          uuid.UUID
	businessID      uuid.UUID
	callerBusiness  *service.BusinessResponse
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCategoryServiceInterface(suite.ctrl)
	suite.mockBizService = mocks.NewMockBusinessServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.businessID = uuid.New()
	suite.callerBusiness = &service.BusinessResponse{ID: suite.businessID, Slug: "demo"}

	handler := handlers.NewCategoryHandler(suite.mockService, suite.mockBizService)
	suite.router = gin.New()
	// stand-in for the auth middleware: inject the session identity
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID.String())
	})
	suite.router.GET("/categories", handler.ListCategories)
	suite.router.POST("/categories", handler.CreateCategory)
	suite.router.POST("/categories/:id/move", handler.MoveCategory)
	suite.router.DELETE("/categories/:id", handler.DeleteCategory)
}

func (suite *CategoryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CategoryHandlerTestSuite) expectCallerBusiness() {
	suite.mockBizService.EXPECT().GetForUser(suite.userID).Return(suite.callerBusiness, nil)
}

func (suite *CategoryHandlerTestSuite) TestListCategories() {
	suite.expectCallerBusiness()
	suite.mockService.EXPECT().
		List(suite.businessID).
		Return([]service.CategoryResponse{
			{ID: uuid.New(), Title: "Starters", Position: 1},
			{ID: uuid.New(), Title: "Mains", Position: 2},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.CategoryResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Starters", got[0].Title)
}

func (suite *CategoryHandlerTestSuite) TestListCategories_NoBusiness() {
	suite.mockBizService.EXPECT().
		GetForUser(suite.userID).
		Return(nil, apperrors.ErrBusinessAdminNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory() {
	suite.expectCallerBusiness()
	suite.mockService.EXPECT().
		Create(suite.businessID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.CreateCategoryRequest) (*service.CategoryResponse, error) {
			return &service.CategoryResponse{ID: uuid.New(), Title: req.Title, Position: 1}, nil
		})

	body, _ := json.Marshal(service.CreateCategoryRequest{Title: "Drinks"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.CategoryResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Drinks", got.Title)
}

func (suite *CategoryHandlerTestSuite) TestMoveCategory() {
	categoryID := uuid.New()
	suite.expectCallerBusiness()
	suite.mockService.EXPECT().
		Move(suite.businessID, categoryID, "up").
		Return([]service.CategoryResponse{
			{ID: categoryID, Title: "Mains", Position: 1},
			{ID: uuid.New(), Title: "Starters", Position: 2},
		}, nil)

	body, _ := json.Marshal(handlers.MoveRequest{Direction: "up"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories/"+categoryID.String()+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.CategoryResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Mains", got[0].Title)
}

func (suite *CategoryHandlerTestSuite) TestMoveCategory_InvalidDirection() {
	categoryID := uuid.New()
	suite.expectCallerBusiness()
	suite.mockService.EXPECT().
		Move(suite.businessID, categoryID, "sideways").
		Return(nil, apperrors.ErrInvalidMoveDirection)

	body, _ := json.Marshal(handlers.MoveRequest{Direction: "sideways"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories/"+categoryID.String()+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_InvalidID() {
	suite.expectCallerBusiness()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/categories/not-a-uuid", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
