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

type ItemHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockService    *mocks.MockItemServiceInterface
	mockBizService *mocks.MockBusinessServiceInterface
	router         *gin.Engine
	userID         uuid.UUID
	businessID     uuid.UUID
}

func (suite *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockItemServiceInterface(suite.ctrl)
	suite.mockBizService = mocks.NewMockBusinessServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.businessID = uuid.New()

	handler := handlers.NewItemHandler(suite.mockService, suite.mockBizService)
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID.String())
	})
	suite.router.GET("/items", handler.ListItems)
	suite.router.POST("/items", handler.CreateItem)
	suite.router.PATCH("/items/:id/availability", handler.SetAvailability)
	suite.router.POST("/items/:id/move", handler.MoveItem)
}

func (suite *ItemHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ItemHandlerTestSuite) expectCallerBusiness() {
	suite.mockBizService.EXPECT().
		GetForUser(suite.userID).
		Return(&service.BusinessResponse{ID: suite.businessID, Slug: "demo"}, nil)
}

func (suite *ItemHandlerTestSuite) TestListItems() {
	categoryID := uuid.New()
	suite.expectCallerBusiness()
	suite.mockService.EXPECT().
		ListByCategory(suite.businessID, categoryID).
		Return([]service.ItemResponse{
			{ID: uuid.New(), CategoryID: categoryID, Name: "Steak", Available: true, Position: 1},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items?category_id="+categoryID.String(), nil)
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.ItemResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Steak", got[0].Name)
}

func (suite *ItemHandlerTestSuite) TestListItems_MissingCategoryParam() {
	suite.expectCallerBusiness()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ItemHandlerTestSuite) TestCreateItem() {
	categoryID := uuid.New()
	suite.expectCallerBusiness()
	suite.mockService.EXPECT().
		Create(suite.businessID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.CreateItemRequest) (*service.ItemResponse, error) {
			return &service.ItemResponse{
				ID:         uuid.New(),
				CategoryID: req.CategoryID,
				Name:       req.Name,
				Price:      req.Price,
				Available:  true,
				Position:   1,
			}, nil
		})

	body, _ := json.Marshal(service.CreateItemRequest{CategoryID: categoryID, Name: "Steak", Price: 12900})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ItemResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Steak", got.Name)
	assert.True(suite.T(), got.Available)
}

func (suite *ItemHandlerTestSuite) TestSetAvailability() {
	itemID := uuid.New()
	suite.expectCallerBusiness()
	suite.mockService.EXPECT().
		SetAvailability(suite.businessID, itemID, false).
		Return(&service.ItemResponse{ID: itemID, Name: "Steak", Available: false}, nil)

	body := []byte(`{"available": false}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/items/"+itemID.String()+"/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ItemResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.Available)
}

func (suite *ItemHandlerTestSuite) TestSetAvailability_MissingFlag() {
	itemID := uuid.New()
	suite.expectCallerBusiness()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/items/"+itemID.String()+"/availability", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ItemHandlerTestSuite) TestMoveItem_NotFound() {
	itemID := uuid.New()
	suite.expectCallerBusiness()
	suite.mockService.EXPECT().
		Move(suite.businessID, itemID, "down").
		Return(nil, apperrors.ErrItemNotFound)

	body, _ := json.Marshal(handlers.MoveRequest{Direction: "down"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items/"+itemID.String()+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestItemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}
