package service_test

import (
	"testing"

	"menu-platform-backend/internal/config"
	"menu-platform-backend/internal/database/models"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/mocks"
	"menu-platform-backend/internal/service"
	"menu-platform-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MenuServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockBusinessRepo *mocks.MockBusinessRepositoryInterface
	mockCategoryRepo *mocks.MockMenuCategoryRepositoryInterface
	mockItemRepo     *mocks.MockMenuItemRepositoryInterface
	menuService      *service.MenuService

	business   *models.Business
	categories []models.MenuCategory
}

func (suite *MenuServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBusinessRepo = mocks.NewMockBusinessRepositoryInterface(suite.ctrl)
	suite.mockCategoryRepo = mocks.NewMockMenuCategoryRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockMenuItemRepositoryInterface(suite.ctrl)

	resolver := tenant.NewResolver(&config.Config{RootDomain: "platix.app"})
	themes := config.ThemePresets{
		"dark": {Background: "#0F1217", Text: "#FFFFFF", Primary: "#F97316"},
		"warm": {Background: "#FFF7ED", Text: "#2B2B2B", Primary: "#EA580C"},
	}
	suite.menuService = service.NewMenuService(
		suite.mockBusinessRepo,
		suite.mockCategoryRepo,
		suite.mockItemRepo,
		resolver,
		themes,
		"CLP",
	)

	suite.business = &models.Business{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Slug:      "demo",
		Name:      "Demo Restaurant",
		Theme:     models.ThemeWarm,
	}
	suite.categories = []models.MenuCategory{
		{BaseModel: models.BaseModel{ID: uuid.New()}, BusinessID: suite.business.ID, Title: "Starters", Position: 1},
		{BaseModel: models.BaseModel{ID: uuid.New()}, BusinessID: suite.business.ID, Title: "Mains", Position: 2},
		{BaseModel: models.BaseModel{ID: uuid.New()}, BusinessID: suite.business.ID, Title: "Desserts", Position: 3},
	}
}

func (suite *MenuServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MenuServiceTestSuite) TestLoadMenu_Success() {
	starters, mains := suite.categories[0].ID, suite.categories[1].ID
	items := []models.MenuItem{
		{BaseModel: models.BaseModel{ID: uuid.New()}, CategoryID: starters, Name: "Bruschetta", Price: 4500, Available: true, Position: 1},
		{BaseModel: models.BaseModel{ID: uuid.New()}, CategoryID: starters, Name: "Soup", Price: 3900, Available: true, Position: 2},
		{BaseModel: models.BaseModel{ID: uuid.New()}, CategoryID: mains, Name: "Steak", Price: 12900, Available: true, Position: 1},
	}

	suite.mockBusinessRepo.EXPECT().GetBySlug("demo").Return(suite.business, nil)
	suite.mockCategoryRepo.EXPECT().GetByBusinessID(suite.business.ID).Return(suite.categories, nil)
	suite.mockItemRepo.EXPECT().
		GetByCategoryIDs([]uuid.UUID{suite.categories[0].ID, suite.categories[1].ID, suite.categories[2].ID}).
		Return(items, nil)

	menu, err := suite.menuService.LoadMenu("demo")

	suite.Require().NoError(err)
	suite.Equal("Demo Restaurant", menu.Business.Name)
	suite.Equal("CLP", menu.Currency)
	suite.Equal("#FFF7ED", menu.Theme.Background)

	suite.Require().Len(menu.Categories, 3)
	suite.Equal("Starters", menu.Categories[0].Title)
	suite.Len(menu.Categories[0].Items, 2)
	suite.Equal("Bruschetta", menu.Categories[0].Items[0].Name)
	suite.Len(menu.Categories[1].Items, 1)
}

func (suite *MenuServiceTestSuite) TestLoadMenu_FiltersUnavailableItems() {
	starters := suite.categories[0].ID
	items := []models.MenuItem{
		{BaseModel: models.BaseModel{ID: uuid.New()}, CategoryID: starters, Name: "Bruschetta", Available: true, Position: 1},
		{BaseModel: models.BaseModel{ID: uuid.New()}, CategoryID: starters, Name: "Out Of Stock", Available: false, Position: 2},
	}

	suite.mockBusinessRepo.EXPECT().GetBySlug("demo").Return(suite.business, nil)
	suite.mockCategoryRepo.EXPECT().GetByBusinessID(suite.business.ID).Return(suite.categories[:1], nil)
	suite.mockItemRepo.EXPECT().GetByCategoryIDs(gomock.Any()).Return(items, nil)

	menu, err := suite.menuService.LoadMenu("demo")

	suite.Require().NoError(err)
	suite.Require().Len(menu.Categories, 1)
	suite.Len(menu.Categories[0].Items, 1)
	suite.Equal("Bruschetta", menu.Categories[0].Items[0].Name)
}

func (suite *MenuServiceTestSuite) TestLoadMenu_KeepsEmptyCategories() {
	suite.mockBusinessRepo.EXPECT().GetBySlug("demo").Return(suite.business, nil)
	suite.mockCategoryRepo.EXPECT().GetByBusinessID(suite.business.ID).Return(suite.categories, nil)
	suite.mockItemRepo.EXPECT().GetByCategoryIDs(gomock.Any()).Return([]models.MenuItem{}, nil)

	menu, err := suite.menuService.LoadMenu("demo")

	suite.Require().NoError(err)
	suite.Require().Len(menu.Categories, 3)
	for _, category := range menu.Categories {
		suite.NotNil(category.Items)
		suite.Empty(category.Items)
	}
}

func (suite *MenuServiceTestSuite) TestLoadMenu_UnknownSlug() {
	suite.mockBusinessRepo.EXPECT().GetBySlug("ghost").Return(nil, gorm.ErrRecordNotFound)

	menu, err := suite.menuService.LoadMenu("ghost")

	suite.Nil(menu)
	suite.ErrorIs(err, apperrors.ErrBusinessNotFound)
}

func (suite *MenuServiceTestSuite) TestResolveAndLoad_RootDomainLandsOnLanding() {
	resp, err := suite.menuService.ResolveAndLoad("platix.app")

	suite.Require().NoError(err)
	suite.True(resp.Landing)
	suite.Nil(resp.Menu)
}

func (suite *MenuServiceTestSuite) TestResolveAndLoad_TenantHost() {
	suite.mockBusinessRepo.EXPECT().GetBySlug("demo").Return(suite.business, nil)
	suite.mockCategoryRepo.EXPECT().GetByBusinessID(suite.business.ID).Return(nil, nil)
	suite.mockItemRepo.EXPECT().GetByCategoryIDs([]uuid.UUID{}).Return(nil, nil)

	resp, err := suite.menuService.ResolveAndLoad("demo.platix.app")

	suite.Require().NoError(err)
	suite.False(resp.Landing)
	suite.Equal("demo", resp.Slug)
	suite.Require().NotNil(resp.Menu)
	suite.Equal("Demo Restaurant", resp.Menu.Business.Name)
}

func (suite *MenuServiceTestSuite) TestResolveAndLoad_UnknownTenantLandsOnLanding() {
	suite.mockBusinessRepo.EXPECT().GetBySlug("ghost").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.menuService.ResolveAndLoad("ghost.platix.app")

	suite.Require().NoError(err)
	suite.True(resp.Landing)
	suite.Empty(resp.Slug)
	suite.Nil(resp.Menu)
}

func (suite *MenuServiceTestSuite) TestResolveAndLoad_CustomDomainHost() {
	suite.business.Domain = "burgerhouse.cl"

	suite.mockBusinessRepo.EXPECT().GetByDomain("burgerhouse.cl").Return(suite.business, nil)
	suite.mockCategoryRepo.EXPECT().GetByBusinessID(suite.business.ID).Return(nil, nil)
	suite.mockItemRepo.EXPECT().GetByCategoryIDs([]uuid.UUID{}).Return(nil, nil)

	resp, err := suite.menuService.ResolveAndLoad("www.burgerhouse.cl")

	suite.Require().NoError(err)
	suite.False(resp.Landing)
	suite.Equal("demo", resp.Slug)
	suite.Require().NotNil(resp.Menu)
	suite.Equal("Demo Restaurant", resp.Menu.Business.Name)
}

func (suite *MenuServiceTestSuite) TestResolveAndLoad_SlugMissFallsBackToDomain() {
	suite.business.Domain = "menu.burgerhouse.cl"

	suite.mockBusinessRepo.EXPECT().GetBySlug("menu").Return(nil, gorm.ErrRecordNotFound)
	suite.mockBusinessRepo.EXPECT().GetByDomain("menu.burgerhouse.cl").Return(suite.business, nil)
	suite.mockCategoryRepo.EXPECT().GetByBusinessID(suite.business.ID).Return(nil, nil)
	suite.mockItemRepo.EXPECT().GetByCategoryIDs([]uuid.UUID{}).Return(nil, nil)

	resp, err := suite.menuService.ResolveAndLoad("menu.burgerhouse.cl")

	suite.Require().NoError(err)
	suite.False(resp.Landing)
	suite.Equal("demo", resp.Slug)
}

func (suite *MenuServiceTestSuite) TestResolveAndLoad_UnknownDomainLandsOnLanding() {
	suite.mockBusinessRepo.EXPECT().GetByDomain("nowhere.cl").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.menuService.ResolveAndLoad("nowhere.cl")

	suite.Require().NoError(err)
	suite.True(resp.Landing)
	suite.Nil(resp.Menu)
}

func TestMenuServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MenuServiceTestSuite))
}
