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

// PersonnelServiceTestSuite defines the test suite for PersonnelService
type PersonnelServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	positions *mocks.MockPositionRepositoryInterface
	employees *mocks.MockEmployeeRepositoryInterface
	groups    *mocks.MockShiftGroupRepositoryInterface
	service   *service.PersonnelService
}

// SetupTest sets up the test suite
func (suite *PersonnelServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.positions = mocks.NewMockPositionRepositoryInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.groups = mocks.NewMockShiftGroupRepositoryInterface(suite.ctrl)
	suite.service = service.NewPersonnelService(suite.positions, suite.employees, suite.groups, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *PersonnelServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PersonnelServiceTestSuite) TestCreatePosition() {
	suite.positions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	position, err := suite.service.CreatePosition(suite.T().Context(), &service.CreatePositionRequest{Name: "Turbine Operator"})
	suite.Require().NoError(err)
	suite.Equal("Turbine Operator", position.Name)
}

func (suite *PersonnelServiceTestSuite) TestCreatePositionDuplicate() {
	suite.positions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.service.CreatePosition(suite.T().Context(), &service.CreatePositionRequest{Name: "Turbine Operator"})
	suite.ErrorIs(err, apperrors.ErrPositionExists)
}

func (suite *PersonnelServiceTestSuite) TestCreateEmployeeDefaultsToPermanent() {
	positionID := uuid.New()
	suite.positions.EXPECT().GetByID(gomock.Any(), positionID).Return(&models.Position{}, nil)
	suite.employees.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	employee, err := suite.service.CreateEmployee(suite.T().Context(), &service.CreateEmployeeRequest{
		FullName:       "Ana Ruiz",
		BadgeID:        "B-1001",
		BasePositionID: &positionID,
	})
	suite.Require().NoError(err)
	suite.Equal(models.EmploymentTypePermanent, employee.EmploymentType)
	suite.Equal(&positionID, employee.BasePositionID)
}

func (suite *PersonnelServiceTestSuite) TestCreateEmployeeUnknownPosition() {
	positionID := uuid.New()
	suite.positions.EXPECT().GetByID(gomock.Any(), positionID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.CreateEmployee(suite.T().Context(), &service.CreateEmployeeRequest{
		FullName:       "Ana Ruiz",
		BadgeID:        "B-1001",
		BasePositionID: &positionID,
	})
	suite.ErrorIs(err, apperrors.ErrPositionNotFound)
}

func (suite *PersonnelServiceTestSuite) TestCreateEmployeeDuplicateBadge() {
	suite.employees.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.service.CreateEmployee(suite.T().Context(), &service.CreateEmployeeRequest{FullName: "Ana Ruiz", BadgeID: "B-1001"})
	suite.ErrorIs(err, apperrors.ErrEmployeeExists)
}

func (suite *PersonnelServiceTestSuite) TestUpdateEmployeeIsPartial() {
	employee := rosteredEmployee("ana")
	temporary := models.EmploymentTypeTemporary

	suite.employees.EXPECT().GetByID(gomock.Any(), employee.ID).Return(&employee, nil)
	suite.employees.EXPECT().Update(gomock.Any(), &employee).Return(nil)

	updated, err := suite.service.UpdateEmployee(suite.T().Context(), employee.ID, &service.UpdateEmployeeRequest{EmploymentType: &temporary})
	suite.Require().NoError(err)
	suite.Equal(models.EmploymentTypeTemporary, updated.EmploymentType)
	suite.Equal("ana", updated.FullName)
	suite.NotNil(updated.BasePositionID)
}

func (suite *PersonnelServiceTestSuite) TestUpdateEmployeeNotFound() {
	id := uuid.New()
	suite.employees.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	name := "Luis"
	_, err := suite.service.UpdateEmployee(suite.T().Context(), id, &service.UpdateEmployeeRequest{FullName: &name})
	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

func (suite *PersonnelServiceTestSuite) TestCreateGroup() {
	suite.groups.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	group, err := suite.service.CreateGroup(suite.T().Context(), &service.CreateGroupRequest{Name: "Group A"})
	suite.Require().NoError(err)
	suite.Equal("Group A", group.Name)

	_, err = suite.service.CreateGroup(suite.T().Context(), &service.CreateGroupRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PersonnelServiceTestSuite) TestGetGroupWithMembers() {
	group := &models.ShiftGroup{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Group B"}
	members := []models.Employee{rosteredEmployee("ana"), rosteredEmployee("luis")}

	suite.groups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.groups.EXPECT().GetMembers(gomock.Any(), group.ID).Return(members, nil)

	resp, err := suite.service.GetGroup(suite.T().Context(), group.ID)
	suite.Require().NoError(err)
	suite.Equal(group.ID, resp.ID)
	suite.Len(resp.Members, 2)
}

func (suite *PersonnelServiceTestSuite) TestDeleteGroupInUse() {
	id := uuid.New()
	suite.groups.EXPECT().GetByID(gomock.Any(), id).Return(&models.ShiftGroup{}, nil)
	suite.groups.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrForeignKeyViolated)

	err := suite.service.DeleteGroup(suite.T().Context(), id)
	suite.ErrorIs(err, apperrors.ErrGroupInUse)
	suite.True(apperrors.IsInvalidState(err))
}

func (suite *PersonnelServiceTestSuite) TestAddEmployeeToGroup() {
	groupID, employeeID := uuid.New(), uuid.New()
	suite.groups.EXPECT().GetByID(gomock.Any(), groupID).Return(&models.ShiftGroup{}, nil)
	suite.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(&models.Employee{}, nil)
	suite.groups.EXPECT().AddMember(gomock.Any(), groupID, employeeID).Return(nil)

	suite.NoError(suite.service.AddEmployeeToGroup(suite.T().Context(), groupID, employeeID))
}

func (suite *PersonnelServiceTestSuite) TestAddEmployeeToGroupTwice() {
	groupID, employeeID := uuid.New(), uuid.New()
	suite.groups.EXPECT().GetByID(gomock.Any(), groupID).Return(&models.ShiftGroup{}, nil)
	suite.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(&models.Employee{}, nil)
	suite.groups.EXPECT().AddMember(gomock.Any(), groupID, employeeID).Return(gorm.ErrDuplicatedKey)

	err := suite.service.AddEmployeeToGroup(suite.T().Context(), groupID, employeeID)
	suite.ErrorIs(err, apperrors.ErrMembershipExists)
}

func (suite *PersonnelServiceTestSuite) TestAddUnknownEmployeeToGroup() {
	groupID, employeeID := uuid.New(), uuid.New()
	suite.groups.EXPECT().GetByID(gomock.Any(), groupID).Return(&models.ShiftGroup{}, nil)
	suite.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.AddEmployeeToGroup(suite.T().Context(), groupID, employeeID)
	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

func (suite *PersonnelServiceTestSuite) TestRemoveEmployeeNotInGroup() {
	groupID, employeeID := uuid.New(), uuid.New()
	suite.groups.EXPECT().GetByID(gomock.Any(), groupID).Return(&models.ShiftGroup{}, nil)
	suite.groups.EXPECT().RemoveMember(gomock.Any(), groupID, employeeID).Return(false, nil)

	err := suite.service.RemoveEmployeeFromGroup(suite.T().Context(), groupID, employeeID)
	suite.ErrorIs(err, apperrors.ErrMembershipNotFound)
}

func (suite *PersonnelServiceTestSuite) TestRemoveEmployeeFromGroup() {
	groupID, employeeID := uuid.New(), uuid.New()
	suite.groups.EXPECT().GetByID(gomock.Any(), groupID).Return(&models.ShiftGroup{}, nil)
	suite.groups.EXPECT().RemoveMember(gomock.Any(), groupID, employeeID).Return(true, nil)

	suite.NoError(suite.service.RemoveEmployeeFromGroup(suite.T().Context(), groupID, employeeID))
}

// TestPersonnelServiceTestSuite runs the test suite
func TestPersonnelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonnelServiceTestSuite))
}
