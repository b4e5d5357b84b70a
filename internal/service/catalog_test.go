package service_test

import (
	"testing"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/mocks"
	"control-room-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CatalogServiceTestSuite defines the test suite for CatalogService
type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	equipment  *mocks.MockEquipmentRepositoryInterface
	tanks      *mocks.MockTankRepositoryInterface
	tasks      *mocks.MockScheduledTaskRepositoryInterface
	parameters *mocks.MockOperationalParameterRepositoryInterface
	service    *service.CatalogService
}

// SetupTest sets up the test suite
func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.equipment = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.tanks = mocks.NewMockTankRepositoryInterface(suite.ctrl)
	suite.tasks = mocks.NewMockScheduledTaskRepositoryInterface(suite.ctrl)
	suite.parameters = mocks.NewMockOperationalParameterRepositoryInterface(suite.ctrl)
	suite.service = service.NewCatalogService(suite.equipment, suite.tanks, suite.tasks, suite.parameters, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *CatalogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogServiceTestSuite) TestCreateEquipmentDefaultsToAvailable() {
	suite.equipment.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	equipment, err := suite.service.CreateEquipment(suite.T().Context(), &service.CreateEquipmentRequest{Name: "Boiler Feed Pump A", Location: "Unit 1"})
	suite.Require().NoError(err)
	suite.Equal(models.EquipmentStatusAvailable, equipment.Status)
}

func (suite *CatalogServiceTestSuite) TestCreateEquipmentInvalidStatus() {
	_, err := suite.service.CreateEquipment(suite.T().Context(), &service.CreateEquipmentRequest{Name: "Boiler Feed Pump A", Status: "BROKEN"})
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "status")
}

func (suite *CatalogServiceTestSuite) TestUpdateEquipment() {
	equipment := &models.Equipment{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Cooling Fan B", Status: models.EquipmentStatusInService}
	status := models.EquipmentStatusOutOfService
	reason := "motor overheating"

	suite.equipment.EXPECT().GetByID(gomock.Any(), equipment.ID).Return(equipment, nil)
	suite.equipment.EXPECT().Update(gomock.Any(), equipment).Return(nil)

	updated, err := suite.service.UpdateEquipment(suite.T().Context(), equipment.ID, &service.UpdateEquipmentRequest{Status: &status, UnavailabilityReason: &reason})
	suite.Require().NoError(err)
	suite.Equal(models.EquipmentStatusOutOfService, updated.Status)
	suite.Equal(reason, updated.UnavailabilityReason)
	suite.Equal("Cooling Fan B", updated.Name)
}

func (suite *CatalogServiceTestSuite) TestGetEquipmentNotFound() {
	id := uuid.New()
	suite.equipment.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetEquipment(suite.T().Context(), id)
	suite.ErrorIs(err, apperrors.ErrEquipmentNotFound)
}

func (suite *CatalogServiceTestSuite) TestDeleteReferencedEquipment() {
	id := uuid.New()
	suite.equipment.EXPECT().GetByID(gomock.Any(), id).Return(&models.Equipment{}, nil)
	suite.equipment.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrForeignKeyViolated)

	err := suite.service.DeleteEquipment(suite.T().Context(), id)
	suite.ErrorIs(err, apperrors.ErrEquipmentInUse)
}

func (suite *CatalogServiceTestSuite) TestCreateTank() {
	suite.tanks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	tank, err := suite.service.CreateTank(suite.T().Context(), &service.CreateTankRequest{Name: "Diesel Day Tank", ResourceType: models.ResourceTypeFuel, CapacityLiters: 50000})
	suite.Require().NoError(err)
	suite.Equal(models.ResourceTypeFuel, tank.ResourceType)
}

func (suite *CatalogServiceTestSuite) TestCreateTankValidation() {
	_, err := suite.service.CreateTank(suite.T().Context(), &service.CreateTankRequest{Name: "Diesel Day Tank", ResourceType: models.ResourceTypeFuel})
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "capacity_liters")
}

func (suite *CatalogServiceTestSuite) TestCreateTankDuplicate() {
	suite.tanks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.service.CreateTank(suite.T().Context(), &service.CreateTankRequest{Name: "Diesel Day Tank", ResourceType: models.ResourceTypeFuel, CapacityLiters: 50000})
	suite.ErrorIs(err, apperrors.ErrTankExists)
}

func (suite *CatalogServiceTestSuite) TestDeleteReferencedTank() {
	id := uuid.New()
	suite.tanks.EXPECT().GetByID(gomock.Any(), id).Return(&models.Tank{}, nil)
	suite.tanks.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrForeignKeyViolated)

	err := suite.service.DeleteTank(suite.T().Context(), id)
	suite.ErrorIs(err, apperrors.ErrTankInUse)
}

func (suite *CatalogServiceTestSuite) TestCreateScheduledTaskActiveByDefault() {
	suite.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	task, err := suite.service.CreateScheduledTask(suite.T().Context(), &service.CreateScheduledTaskRequest{Name: "Weekly diesel start", Category: models.TaskCategoryOperativeTest})
	suite.Require().NoError(err)
	suite.True(task.IsActive)
}

func (suite *CatalogServiceTestSuite) TestCreateInactiveScheduledTask() {
	inactive := false
	suite.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	task, err := suite.service.CreateScheduledTask(suite.T().Context(), &service.CreateScheduledTaskRequest{Name: "Retired check", Category: models.TaskCategoryRoutineActivity, IsActive: &inactive})
	suite.Require().NoError(err)
	suite.False(task.IsActive)
}

func (suite *CatalogServiceTestSuite) TestDeactivateScheduledTask() {
	task := &models.ScheduledTask{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Walkdown", IsActive: true}
	inactive := false

	suite.tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil)
	suite.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)

	updated, err := suite.service.UpdateScheduledTask(suite.T().Context(), task.ID, &service.UpdateScheduledTaskRequest{IsActive: &inactive})
	suite.Require().NoError(err)
	suite.False(updated.IsActive)
}

func (suite *CatalogServiceTestSuite) TestListActiveScheduledTasks() {
	suite.tasks.EXPECT().GetAll(gomock.Any(), true).Return([]models.ScheduledTask{{Name: "Walkdown", IsActive: true}}, nil)

	tasks, err := suite.service.ListScheduledTasks(suite.T().Context(), true)
	suite.Require().NoError(err)
	suite.Len(tasks, 1)
}

func (suite *CatalogServiceTestSuite) TestCreateOperationalParameterDuplicate() {
	suite.parameters.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.service.CreateOperationalParameter(suite.T().Context(), &service.CreateOperationalParameterRequest{Name: "Exhaust temperature", Unit: "°C"})
	suite.ErrorIs(err, apperrors.ErrOperationalParameterExists)
}

func (suite *CatalogServiceTestSuite) TestUpdateUnknownOperationalParameter() {
	id := uuid.New()
	suite.parameters.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	unit := "bar"
	_, err := suite.service.UpdateOperationalParameter(suite.T().Context(), id, &service.UpdateOperationalParameterRequest{Unit: &unit})
	suite.ErrorIs(err, apperrors.ErrOperationalParameterNotFound)
}

// TestCatalogServiceTestSuite runs the test suite
func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
