package service_test

import (
	"testing"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *repoMocks
	service *service.ReportService
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newRepoMocks(suite.ctrl)
	suite.service = service.NewReportService(suite.m.repos)
}

// TearDownTest cleans up after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) TestListClosedShifts() {
	holder := uuid.New()
	suite.m.shifts.EXPECT().GetClosed(gomock.Any()).Return([]models.Shift{*closedShift(holder), *closedShift(holder)}, nil)

	shifts, err := suite.service.ListClosedShifts(suite.T().Context())
	suite.Require().NoError(err)
	suite.Len(shifts, 2)
	for _, shift := range shifts {
		suite.Equal(models.ShiftStatusClosed, shift.Status)
		suite.Equal("2024-03-01", shift.OperationalDate)
	}
}

func (suite *ReportServiceTestSuite) TestGetReport() {
	shift := closedShift(uuid.New())
	ramps := []models.GenerationRamp{{ShiftID: shift.ID, ActualRateMWPerMin: 6, IsCompliant: true}}

	suite.m.shifts.EXPECT().GetByID(gomock.Any(), shift.ID).Return(shift, nil)
	suite.m.attendance.EXPECT().GetByShiftID(gomock.Any(), shift.ID).Return([]models.ShiftAttendance{{ShiftID: shift.ID}}, nil)
	suite.m.logs.EXPECT().ListEquipmentStatusLogs(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListEventLogs(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListTaskLogs(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListNoveltyLogs(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListGenerationRamps(gomock.Any(), shift.ID).Return(ramps, nil)
	suite.m.logs.EXPECT().ListTankReadings(gomock.Any(), shift.ID).Return(nil, nil)
	suite.m.logs.EXPECT().ListOperationalReadings(gomock.Any(), shift.ID).Return(nil, nil)

	report, err := suite.service.GetReport(suite.T().Context(), shift.ID)
	suite.Require().NoError(err)
	suite.Equal(shift.ID, report.ID)
	suite.Len(report.Attendance, 1)
	suite.Equal(ramps, report.GenerationRamps)
}

func (suite *ReportServiceTestSuite) TestOpenShiftHasNoReport() {
	shift := openShift(uuid.New())
	suite.m.shifts.EXPECT().GetByID(gomock.Any(), shift.ID).Return(shift, nil)

	_, err := suite.service.GetReport(suite.T().Context(), shift.ID)
	suite.ErrorIs(err, apperrors.ErrReportNotFound)
}

func (suite *ReportServiceTestSuite) TestUnknownShiftHasNoReport() {
	id := uuid.New()
	suite.m.shifts.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetReport(suite.T().Context(), id)
	suite.True(apperrors.IsNotFound(err))
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
