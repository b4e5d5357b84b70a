package service_test

import (
	"errors"
	"testing"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ShiftServiceTestSuite defines the test suite for ShiftService
type ShiftServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *repoMocks
	service *service.ShiftService
	actorID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newRepoMocks(suite.ctrl)
	suite.actorID = uuid.New()
	suite.service = service.NewShiftService(suite.m.repos, suite.m.tx, suite.m.clock, testCalendar, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *ShiftServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftServiceTestSuite) TestOpenShift() {
	group := &models.ShiftGroup{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Group A"}
	members := []models.Employee{rosteredEmployee("ana"), rosteredEmployee("luis"), rosteredEmployee("marta")}

	var created *models.Shift
	var roster []models.ShiftAttendance

	suite.m.groups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.m.shifts.EXPECT().GetOpen(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.m.shifts.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, shift *models.Shift) error {
			created = shift
			return nil
		})
	suite.m.groups.EXPECT().GetMembers(gomock.Any(), group.ID).Return(members, nil)
	suite.m.attendance.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, records []models.ShiftAttendance) error {
			roster = records
			return nil
		})

	resp, err := suite.service.OpenShift(suite.T().Context(), suite.actorID, &service.OpenShiftRequest{GroupID: group.ID})
	suite.Require().NoError(err)

	suite.Equal(models.ShiftStatusOpen, resp.Status)
	suite.Equal(suite.actorID, resp.IncomingHolderID)
	suite.Equal(group.ID, resp.ScheduledGroupID)
	suite.Equal(fixedNow, resp.StartTime)
	suite.Nil(resp.EndTime)
	suite.Equal("2024-03-01", resp.OperationalDate)
	suite.Equal(1, resp.Designator)

	suite.Require().NotNil(created)
	suite.Equal(created.ID, resp.ID)
	suite.Require().Len(roster, len(members))
	for i, record := range roster {
		suite.Equal(created.ID, record.ShiftID)
		suite.Equal(members[i].ID, record.ScheduledEmployeeID)
		suite.Equal(members[i].ID, record.ActualEmployeeID)
		suite.Equal(models.AttendanceStatusPresent, record.Status)
	}
}

func (suite *ShiftServiceTestSuite) TestOpenShiftWhileAnotherIsOpen() {
	group := &models.ShiftGroup{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.m.groups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.m.shifts.EXPECT().GetOpen(gomock.Any()).Return(openShift(uuid.New()), nil)

	_, err := suite.service.OpenShift(suite.T().Context(), suite.actorID, &service.OpenShiftRequest{GroupID: group.ID})
	suite.True(apperrors.IsInvalidState(err))
	suite.ErrorIs(err, apperrors.ErrShiftAlreadyOpen)
}

func (suite *ShiftServiceTestSuite) TestOpenShiftLosesRaceOnUniqueIndex() {
	group := &models.ShiftGroup{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.m.groups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil)
	suite.m.shifts.EXPECT().GetOpen(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.m.shifts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.service.OpenShift(suite.T().Context(), suite.actorID, &service.OpenShiftRequest{GroupID: group.ID})
	suite.ErrorIs(err, apperrors.ErrShiftAlreadyOpen)
}

func (suite *ShiftServiceTestSuite) TestOpenShiftUnknownGroup() {
	groupID := uuid.New()
	suite.m.groups.EXPECT().GetByID(gomock.Any(), groupID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.OpenShift(suite.T().Context(), suite.actorID, &service.OpenShiftRequest{GroupID: groupID})
	suite.True(apperrors.IsNotFound(err))
}

func (suite *ShiftServiceTestSuite) TestOpenShiftRequiresGroup() {
	_, err := suite.service.OpenShift(suite.T().Context(), suite.actorID, &service.OpenShiftRequest{})
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "group_id")
	suite.Equal(0, suite.m.tx.calls)
}

func (suite *ShiftServiceTestSuite) TestCloseShift() {
	shift := openShift(suite.actorID)

	suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(shift, nil)
	suite.m.shifts.EXPECT().Close(gomock.Any(), shift.ID, suite.actorID, fixedNow).Return(true, nil)

	resp, err := suite.service.CloseShift(suite.T().Context(), shift.ID, suite.actorID)
	suite.Require().NoError(err)

	suite.Equal(models.ShiftStatusClosed, resp.Status)
	suite.Require().NotNil(resp.EndTime)
	suite.Equal(fixedNow, *resp.EndTime)
	suite.Require().NotNil(resp.OutgoingHolderID)
	suite.Equal(suite.actorID, *resp.OutgoingHolderID)
}

func (suite *ShiftServiceTestSuite) TestCloseShiftTwice() {
	shift := openShift(suite.actorID)
	closed := closedShift(suite.actorID)
	closed.ID = shift.ID

	gomock.InOrder(
		suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(shift, nil),
		suite.m.shifts.EXPECT().Close(gomock.Any(), shift.ID, suite.actorID, fixedNow).Return(true, nil),
		suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(closed, nil),
	)

	_, err := suite.service.CloseShift(suite.T().Context(), shift.ID, suite.actorID)
	suite.Require().NoError(err)

	_, err = suite.service.CloseShift(suite.T().Context(), shift.ID, suite.actorID)
	suite.True(apperrors.IsInvalidState(err))
	suite.ErrorIs(err, apperrors.ErrShiftClosed)
}

func (suite *ShiftServiceTestSuite) TestCloseShiftByNonHolder() {
	shift := openShift(uuid.New())
	suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(shift, nil)

	_, err := suite.service.CloseShift(suite.T().Context(), shift.ID, suite.actorID)
	suite.True(apperrors.IsForbidden(err))
}

func (suite *ShiftServiceTestSuite) TestCloseShiftNotFound() {
	id := uuid.New()
	suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.CloseShift(suite.T().Context(), id, suite.actorID)
	suite.ErrorIs(err, apperrors.ErrShiftNotFound)
}

func (suite *ShiftServiceTestSuite) TestCloseShiftConditionalUpdateMisses() {
	shift := openShift(suite.actorID)
	suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(shift, nil)
	suite.m.shifts.EXPECT().Close(gomock.Any(), shift.ID, suite.actorID, fixedNow).Return(false, nil)

	_, err := suite.service.CloseShift(suite.T().Context(), shift.ID, suite.actorID)
	suite.ErrorIs(err, apperrors.ErrShiftClosed)
}

func (suite *ShiftServiceTestSuite) TestCloseShiftStorageFailure() {
	shift := openShift(suite.actorID)
	cause := errors.New("connection reset")
	suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(shift, nil)
	suite.m.shifts.EXPECT().Close(gomock.Any(), shift.ID, suite.actorID, fixedNow).Return(false, cause)

	_, err := suite.service.CloseShift(suite.T().Context(), shift.ID, suite.actorID)
	suite.True(apperrors.IsTransaction(err))
	suite.ErrorIs(err, cause)
	suite.Equal(1, suite.m.tx.rollbacks)
}

func (suite *ShiftServiceTestSuite) TestGetActiveShiftForUser() {
	shift := openShift(suite.actorID)
	suite.m.shifts.EXPECT().GetOpenByHolder(gomock.Any(), suite.actorID).Return(shift, nil)

	resp, err := suite.service.GetActiveShiftForUser(suite.T().Context(), suite.actorID)
	suite.Require().NoError(err)
	suite.Equal(shift.ID, resp.ID)

	other := uuid.New()
	suite.m.shifts.EXPECT().GetOpenByHolder(gomock.Any(), other).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.service.GetActiveShiftForUser(suite.T().Context(), other)
	suite.ErrorIs(err, apperrors.ErrActiveShiftNotFound)
}

func (suite *ShiftServiceTestSuite) TestGetShiftDetails() {
	shift := openShift(suite.actorID)
	events := []models.EventLog{{ShiftID: shift.ID, EventType: models.EventTypeProtectionTrip, Description: "unit 2 trip"}}

	suite.m.shifts.EXPECT().GetByID(gomock.Any(), shift.ID).Return(shift, nil)
	suite.m.attendance.EXPECT().GetByShiftID(gomock.Any(), shift.ID).Return([]models.ShiftAttendance{}, nil)
	suite.m.logs.EXPECT().ListEquipmentStatusLogs(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListEventLogs(gomock.Any(), shift.ID).Return(events, nil)
	suite.m.logs.EXPECT().ListTaskLogs(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListNoveltyLogs(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListGenerationRamps(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListTankReadings(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListOperationalReadings(gomock.Any(), shift.ID).Return(nil, nil)

	detail, err := suite.service.GetShiftDetails(suite.T().Context(), shift.ID)
	suite.Require().NoError(err)
	suite.Equal(shift.ID, detail.ID)
	suite.Equal(events, detail.EventLogs)
}

func (suite *ShiftServiceTestSuite) TestAssignGroup() {
	shift := openShift(suite.actorID)
	group := &models.ShiftGroup{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Group B"}
	members := []models.Employee{rosteredEmployee("eva")}

	gomock.InOrder(
		suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(shift, nil),
		suite.m.groups.EXPECT().GetByID(gomock.Any(), group.ID).Return(group, nil),
		suite.m.shifts.EXPECT().UpdateGroup(gomock.Any(), shift.ID, group.ID).Return(nil),
		suite.m.attendance.EXPECT().DeleteByShiftID(gomock.Any(), shift.ID).Return(nil),
		suite.m.groups.EXPECT().GetMembers(gomock.Any(), group.ID).Return(members, nil),
		suite.m.attendance.EXPECT().CreateBatch(gomock.Any(), gomock.Len(1)).Return(nil),
	)

	resp, err := suite.service.AssignGroup(suite.T().Context(), shift.ID, suite.actorID, &service.AssignGroupRequest{GroupID: group.ID})
	suite.Require().NoError(err)
	suite.Equal(group.ID, resp.ScheduledGroupID)
}

func (suite *ShiftServiceTestSuite) TestAssignGroupByNonHolder() {
	shift := openShift(uuid.New())
	suite.m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(shift, nil)

	_, err := suite.service.AssignGroup(suite.T().Context(), shift.ID, suite.actorID, &service.AssignGroupRequest{GroupID: uuid.New()})
	suite.True(apperrors.IsForbidden(err))
}

func (suite *ShiftServiceTestSuite) TestUpdateAttendance() {
	shift := openShift(suite.actorID)
	substitute := uuid.New()
	record := &models.ShiftAttendance{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		ShiftID:             shift.ID,
		ScheduledEmployeeID: uuid.New(),
		Status:              models.AttendanceStatusPresent,
	}
	record.ActualEmployeeID = record.ScheduledEmployeeID
	covering := models.AttendanceStatusCovering

	suite.m.attendance.EXPECT().GetByID(gomock.Any(), record.ID).Return(record, nil)
	suite.m.shifts.EXPECT().GetByIDForShare(gomock.Any(), shift.ID).Return(shift, nil)
	suite.m.employees.EXPECT().GetByID(gomock.Any(), substitute).Return(&models.Employee{BaseModel: models.BaseModel{ID: substitute}}, nil)
	suite.m.attendance.EXPECT().Update(gomock.Any(), record).Return(nil)

	updated, err := suite.service.UpdateAttendance(suite.T().Context(), record.ID, suite.actorID, &service.UpdateAttendanceRequest{
		Status:           &covering,
		ActualEmployeeID: &substitute,
	})
	suite.Require().NoError(err)
	suite.Equal(models.AttendanceStatusCovering, updated.Status)
	suite.Equal(substitute, updated.ActualEmployeeID)
	suite.NotEqual(substitute, updated.ScheduledEmployeeID)
}

func (suite *ShiftServiceTestSuite) TestUpdateAttendanceOnClosedShift() {
	shift := closedShift(suite.actorID)
	record := &models.ShiftAttendance{BaseModel: models.BaseModel{ID: uuid.New()}, ShiftID: shift.ID}
	absent := models.AttendanceStatusAbsent

	suite.m.attendance.EXPECT().GetByID(gomock.Any(), record.ID).Return(record, nil)
	suite.m.shifts.EXPECT().GetByIDForShare(gomock.Any(), shift.ID).Return(shift, nil)

	_, err := suite.service.UpdateAttendance(suite.T().Context(), record.ID, suite.actorID, &service.UpdateAttendanceRequest{Status: &absent})
	suite.True(apperrors.IsInvalidState(err))
}

func (suite *ShiftServiceTestSuite) TestUpdateAttendanceRejectsUnknownStatus() {
	late := models.AttendanceStatus("LATE")

	_, err := suite.service.UpdateAttendance(suite.T().Context(), uuid.New(), suite.actorID, &service.UpdateAttendanceRequest{Status: &late})
	suite.True(apperrors.IsValidation(err))
}

// TestShiftServiceTestSuite runs the test suite
func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}

func TestRequireHolderOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	svc := service.NewShiftService(m.repos, m.tx, m.clock, testCalendar, service.NewValidator())

	// A closed shift reports InvalidState even to a non-holder
	shift := closedShift(uuid.New())
	m.shifts.EXPECT().GetByIDForUpdate(gomock.Any(), shift.ID).Return(shift, nil)

	_, err := svc.CloseShift(t.Context(), shift.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
	assert.False(t, apperrors.IsForbidden(err))
}
