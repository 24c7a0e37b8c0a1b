package service_test

import (
	"testing"

	"menu-platform-backend/internal/database/models"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/mocks"
	"menu-platform-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type BusinessServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockBusinessRepositoryInterface
	mockAdminRepo   *mocks.MockBusinessAdminRepositoryInterface
	businessService *service.BusinessService
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockBusinessRepositoryInterface(suite.ctrl)
	suite.mockAdminRepo = mocks.NewMockBusinessAdminRepositoryInterface(suite.ctrl)
	suite.businessService = service.NewBusinessService(suite.mockRepo, suite.mockAdminRepo, validator.New())
}

func (suite *BusinessServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BusinessServiceTestSuite) TestOnboard_Success() {
	userID := uuid.New()

	suite.mockAdminRepo.EXPECT().GetByUserID(userID).Return(nil, nil)
	suite.mockRepo.EXPECT().GetBySlug("demo").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		CreateWithAdmin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(business *models.Business, admin *models.BusinessAdmin) error {
			suite.Equal("demo", business.Slug)
			suite.Equal("Demo Restaurant", business.Name)
			suite.Equal(models.ThemeDark, business.Theme)
			suite.Equal(userID, admin.UserID)
			suite.Equal(models.AdminRoleOwner, admin.Role)
			business.ID = uuid.New()
			return nil
		})

	resp, err := suite.businessService.Onboard(userID, &service.OnboardRequest{
		Slug: "Demo", // normalized to lowercase
		Name: "Demo Restaurant",
	})

	suite.Require().NoError(err)
	suite.Equal("demo", resp.Slug)
	suite.Equal("dark", resp.Theme)
}

func (suite *BusinessServiceTestSuite) TestOnboard_SlugTaken() {
	userID := uuid.New()
	existing := &models.Business{BaseModel: models.BaseModel{ID: uuid.New()}, Slug: "demo"}
	suite.mockAdminRepo.EXPECT().GetByUserID(userID).Return([]models.BusinessAdmin{}, nil)
	suite.mockRepo.EXPECT().GetBySlug("demo").Return(existing, nil)

	resp, err := suite.businessService.Onboard(userID, &service.OnboardRequest{
		Slug: "demo",
		Name: "Another",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrBusinessExists)
}

func (suite *BusinessServiceTestSuite) TestOnboard_AlreadyHasBusiness() {
	userID := uuid.New()
	suite.mockAdminRepo.EXPECT().
		GetByUserID(userID).
		Return([]models.BusinessAdmin{{UserID: userID, BusinessID: uuid.New()}}, nil)

	resp, err := suite.businessService.Onboard(userID, &service.OnboardRequest{
		Slug: "second-venture",
		Name: "Second Venture",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrBusinessAdminExists)
}

func (suite *BusinessServiceTestSuite) TestOnboard_RejectsBadSlug() {
	for _, slug := range []string{"has space", "UPPER!", "www", "-leading", "trailing-"} {
		resp, err := suite.businessService.Onboard(uuid.New(), &service.OnboardRequest{
			Slug: slug,
			Name: "Demo",
		})
		suite.Nil(resp, "slug %q", slug)
		suite.Error(err, "slug %q", slug)
	}
}

func (suite *BusinessServiceTestSuite) TestGetForUser_Success() {
	userID := uuid.New()
	businessID := uuid.New()
	business := &models.Business{BaseModel: models.BaseModel{ID: businessID}, Slug: "demo", Name: "Demo"}

	suite.mockAdminRepo.EXPECT().
		GetByUserID(userID).
		Return([]models.BusinessAdmin{{UserID: userID, BusinessID: businessID}}, nil)
	suite.mockRepo.EXPECT().GetByID(businessID).Return(business, nil)

	resp, err := suite.businessService.GetForUser(userID)

	suite.Require().NoError(err)
	suite.Equal(businessID, resp.ID)
}

func (suite *BusinessServiceTestSuite) TestGetForUser_NoLinkage() {
	userID := uuid.New()
	suite.mockAdminRepo.EXPECT().GetByUserID(userID).Return(nil, nil)

	resp, err := suite.businessService.GetForUser(userID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrBusinessAdminNotFound)
}

func (suite *BusinessServiceTestSuite) TestUpdateSettings_PartialUpdate() {
	userID := uuid.New()
	businessID := uuid.New()
	business := &models.Business{
		BaseModel: models.BaseModel{ID: businessID},
		Slug:      "demo",
		Name:      "Old Name",
		Theme:     models.ThemeDark,
		Phone:     "+56 9 1234 5678",
	}

	suite.mockAdminRepo.EXPECT().
		GetByUserID(userID).
		Return([]models.BusinessAdmin{{UserID: userID, BusinessID: businessID}}, nil)
	suite.mockRepo.EXPECT().GetByID(businessID).Return(business, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Business) error {
			suite.Equal("New Name", updated.Name)
			suite.Equal(models.ThemeWarm, updated.Theme)
			suite.Equal("+56 9 1234 5678", updated.Phone) // untouched
			return nil
		})

	name := "New Name"
	theme := "warm"
	resp, err := suite.businessService.UpdateSettings(userID, &service.UpdateBusinessRequest{
		Name:  &name,
		Theme: &theme,
	})

	suite.Require().NoError(err)
	suite.Equal("New Name", resp.Name)
	suite.Equal("warm", resp.Theme)
}

func (suite *BusinessServiceTestSuite) TestUpdateSettings_CustomDomain() {
	userID := uuid.New()
	businessID := uuid.New()
	business := &models.Business{
		BaseModel: models.BaseModel{ID: businessID},
		Slug:      "demo",
		Name:      "Demo",
		Theme:     models.ThemeDark,
	}

	suite.mockAdminRepo.EXPECT().
		GetByUserID(userID).
		Return([]models.BusinessAdmin{{UserID: userID, BusinessID: businessID}}, nil)
	suite.mockRepo.EXPECT().GetByID(businessID).Return(business, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Business) error {
			suite.Equal("menu.tacos.cl", updated.Domain)
			return nil
		})

	domain := "www.Menu.Tacos.cl"
	resp, err := suite.businessService.UpdateSettings(userID, &service.UpdateBusinessRequest{Domain: &domain})

	suite.Require().NoError(err)
	suite.Equal("menu.tacos.cl", resp.Domain)
}

func (suite *BusinessServiceTestSuite) TestUpdateSettings_RejectsBadDomain() {
	domain := "not a domain"
	resp, err := suite.businessService.UpdateSettings(uuid.New(), &service.UpdateBusinessRequest{Domain: &domain})

	suite.Nil(resp)
	suite.Error(err)
}

func (suite *BusinessServiceTestSuite) TestUpdateSettings_NotAnAdmin() {
	userID := uuid.New()
	suite.mockAdminRepo.EXPECT().GetByUserID(userID).Return([]models.BusinessAdmin{}, nil)

	name := "New Name"
	resp, err := suite.businessService.UpdateSettings(userID, &service.UpdateBusinessRequest{Name: &name})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotBusinessAdmin)
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
