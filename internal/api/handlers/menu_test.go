package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menu-platform-backend/internal/api/handlers"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/mocks"
	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMenuServiceInterface
	router      *gin.Engine
}

func (suite *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMenuServiceInterface(suite.ctrl)

	handler := handlers.NewMenuHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.GET("/menu", handler.ResolveMenu)
	suite.router.GET("/menu/:slug", handler.GetMenu)
}

func (suite *MenuHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MenuHandlerTestSuite) TestGetMenu_Success() {
	menu := &service.MenuResponse{
		Business: service.BusinessResponse{Slug: "demo", Name: "Demo Restaurant"},
		Categories: []service.MenuCategoryView{
			{Title: "Starters", Position: 1, Items: []service.MenuItemView{}},
		},
		Currency: "CLP",
	}
	suite.mockService.EXPECT().LoadMenu("demo").Return(menu, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu/demo", nil)
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.MenuResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Demo Restaurant", got.Business.Name)
	assert.Len(suite.T(), got.Categories, 1)
}

func (suite *MenuHandlerTestSuite) TestGetMenu_NotFound() {
	suite.mockService.EXPECT().LoadMenu("ghost").Return(nil, apperrors.ErrBusinessNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu/ghost", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MenuHandlerTestSuite) TestResolveMenu_UsesHostHeader() {
	suite.mockService.EXPECT().
		ResolveAndLoad("demo.platix.app").
		Return(&service.ResolvedMenuResponse{Slug: "demo", Menu: &service.MenuResponse{}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	req.Host = "demo.platix.app"
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ResolvedMenuResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "demo", got.Slug)
	assert.False(suite.T(), got.Landing)
}

func (suite *MenuHandlerTestSuite) TestResolveMenu_HostQueryOverride() {
	suite.mockService.EXPECT().
		ResolveAndLoad("platix.app").
		Return(&service.ResolvedMenuResponse{Landing: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu?host=platix.app", nil)
	req.Host = "api.internal"
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ResolvedMenuResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Landing)
}

func (suite *MenuHandlerTestSuite) TestResolveMenu_UnknownTenantIsLandingNotError() {
	suite.mockService.EXPECT().
		ResolveAndLoad("ghost.platix.app").
		Return(&service.ResolvedMenuResponse{Landing: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	req.Host = "ghost.platix.app"
	suite.router.ServeHTTP(w, req)

	require.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ResolvedMenuResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Landing)
	assert.Nil(suite.T(), got.Menu)
}

func TestMenuHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}
