package service_test

import (
	"testing"
	"time"

	"control-room-backend/internal/clock"
	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/mocks"
	"control-room-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LicenseServiceTestSuite defines the test suite for LicenseService
type LicenseServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockLicenseRepositoryInterface
	service *service.LicenseService
}

// SetupTest sets up the test suite
func (suite *LicenseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockLicenseRepositoryInterface(suite.ctrl)
	suite.service = service.NewLicenseService(suite.repo, clock.NewFake(fixedNow), service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *LicenseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LicenseServiceTestSuite) TestCreateLicenseStartsNow() {
	actorID := uuid.New()
	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	license, err := suite.service.CreateLicense(suite.T().Context(), actorID, &service.CreateLicenseRequest{LicenseNumber: "LIC-2024-031", AffectedUnit: "Unit 2"})
	suite.Require().NoError(err)
	suite.Equal(models.LicenseStatusActive, license.Status)
	suite.Equal(fixedNow, license.StartTime)
	suite.Equal(actorID, license.CreatedByUserID)
}

func (suite *LicenseServiceTestSuite) TestCreateLicenseWithStartTime() {
	start := fixedNow.Add(2 * time.Hour)
	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	license, err := suite.service.CreateLicense(suite.T().Context(), uuid.New(), &service.CreateLicenseRequest{LicenseNumber: "LIC-2024-032", AffectedUnit: "Unit 1", StartTime: &start})
	suite.Require().NoError(err)
	suite.Equal(start, license.StartTime)
}

func (suite *LicenseServiceTestSuite) TestCreateLicenseDuplicateNumber() {
	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.service.CreateLicense(suite.T().Context(), uuid.New(), &service.CreateLicenseRequest{LicenseNumber: "LIC-2024-031", AffectedUnit: "Unit 2"})
	suite.ErrorIs(err, apperrors.ErrLicenseExists)
}

func (suite *LicenseServiceTestSuite) TestListLicensesByStatus() {
	active := models.LicenseStatusActive
	suite.repo.EXPECT().GetByStatus(gomock.Any(), models.LicenseStatusActive).Return([]models.License{{LicenseNumber: "LIC-1"}}, nil)

	licenses, err := suite.service.ListLicenses(suite.T().Context(), &active)
	suite.Require().NoError(err)
	suite.Len(licenses, 1)

	suite.repo.EXPECT().GetAll(gomock.Any()).Return([]models.License{{LicenseNumber: "LIC-1"}, {LicenseNumber: "LIC-2"}}, nil)

	licenses, err = suite.service.ListLicenses(suite.T().Context(), nil)
	suite.Require().NoError(err)
	suite.Len(licenses, 2)
}

func (suite *LicenseServiceTestSuite) TestCloseLicense() {
	actorID := uuid.New()
	license := &models.License{BaseModel: models.BaseModel{ID: uuid.New()}, LicenseNumber: "LIC-1", Status: models.LicenseStatusActive}

	suite.repo.EXPECT().GetByID(gomock.Any(), license.ID).Return(license, nil)
	suite.repo.EXPECT().Close(gomock.Any(), license.ID, actorID, fixedNow).Return(true, nil)

	closed, err := suite.service.CloseLicense(suite.T().Context(), license.ID, actorID)
	suite.Require().NoError(err)
	suite.Equal(models.LicenseStatusClosed, closed.Status)
	suite.Equal(fixedNow, *closed.EndTime)
	suite.Equal(actorID, *closed.ClosedByUserID)
}

func (suite *LicenseServiceTestSuite) TestCloseLicenseTwice() {
	license := &models.License{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.LicenseStatusClosed}
	suite.repo.EXPECT().GetByID(gomock.Any(), license.ID).Return(license, nil)

	_, err := suite.service.CloseLicense(suite.T().Context(), license.ID, uuid.New())
	suite.ErrorIs(err, apperrors.ErrLicenseClosed)
}

func (suite *LicenseServiceTestSuite) TestCloseLicenseConcurrently() {
	actorID := uuid.New()
	license := &models.License{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.LicenseStatusActive}

	suite.repo.EXPECT().GetByID(gomock.Any(), license.ID).Return(license, nil)
	suite.repo.EXPECT().Close(gomock.Any(), license.ID, actorID, fixedNow).Return(false, nil)

	_, err := suite.service.CloseLicense(suite.T().Context(), license.ID, actorID)
	suite.True(apperrors.IsInvalidState(err))
}

func (suite *LicenseServiceTestSuite) TestGetLicenseNotFound() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetLicense(suite.T().Context(), id)
	suite.ErrorIs(err, apperrors.ErrLicenseNotFound)
}

// TestLicenseServiceTestSuite runs the test suite
func TestLicenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LicenseServiceTestSuite))
}
