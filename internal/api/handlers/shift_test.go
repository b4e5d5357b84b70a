package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/mocks"
	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShiftHandlerTestSuite tests the ShiftHandler
type ShiftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockShifts   *mocks.MockShiftServiceInterface
	mockHandover *mocks.MockHandoverServiceInterface
	handler      *ShiftHandler
	userID       uuid.UUID
}

// SetupSuite sets up the test suite
func (suite *ShiftHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *ShiftHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShifts = mocks.NewMockShiftServiceInterface(suite.ctrl)
	suite.mockHandover = mocks.NewMockHandoverServiceInterface(suite.ctrl)
	suite.handler = NewShiftHandler(suite.mockShifts, suite.mockHandover)
	suite.userID = uuid.New()

	suite.router = gin.New()

	// Setup routes
	v1 := suite.router.Group("/api/v1")
	v1.Use(authenticatedAs(suite.userID, models.UserRoleShiftSuperintendent))
	{
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", suite.handler.OpenShift)
			shifts.GET("/active/me", suite.handler.GetActiveShift)
			shifts.POST("/handover", suite.handler.Handover)
			shifts.GET("/:id", suite.handler.GetShift)
			shifts.PUT("/:id/close", suite.handler.CloseShift)
			shifts.POST("/:id/assign-group", suite.handler.AssignGroup)
			shifts.GET("/:id/attendance", suite.handler.ListAttendance)
		}
		v1.PATCH("/attendance/:id", suite.handler.UpdateAttendance)
	}

	// Routes without an authenticated user
	anonymous := suite.router.Group("/anonymous")
	{
		anonymous.POST("/shifts", suite.handler.OpenShift)
		anonymous.POST("/shifts/handover", suite.handler.Handover)
	}
}

// TearDownTest cleans up after each test
func (suite *ShiftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftHandlerTestSuite) openShiftResponse(groupID uuid.UUID) *service.ShiftResponse {
	return &service.ShiftResponse{
		ID:               uuid.New(),
		StartTime:        time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC),
		Status:           models.ShiftStatusOpen,
		IncomingHolderID: suite.userID,
		ScheduledGroupID: groupID,
		OperationalDate:  "2026-03-02",
		Designator:       1,
	}
}

func (suite *ShiftHandlerTestSuite) validHandover() service.HandoverRequest {
	return service.HandoverRequest{
		OutgoingPassword: "outgoing-secret",
		IncomingUsername: "next.operator",
		IncomingPassword: "incoming-secret",
		ShiftToCloseID:   uuid.New(),
		NextGroupID:      uuid.New(),
	}
}

// TestOpenShift tests opening a shift for a group
func (suite *ShiftHandlerTestSuite) TestOpenShift() {
	groupID := uuid.New()
	expected := suite.openShiftResponse(groupID)

	suite.mockShifts.EXPECT().
		OpenShift(gomock.Any(), suite.userID, &service.OpenShiftRequest{GroupID: groupID}).
		Return(expected, nil)

	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts", service.OpenShiftRequest{GroupID: groupID})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.ShiftResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected.ID, response.ID)
	assert.Equal(suite.T(), models.ShiftStatusOpen, response.Status)
	assert.Equal(suite.T(), suite.userID, response.IncomingHolderID)
	assert.Nil(suite.T(), response.EndTime)
}

// TestOpenShiftUnauthenticated tests that a request without a user is rejected before the service
func (suite *ShiftHandlerTestSuite) TestOpenShiftUnauthenticated() {
	w := performRequest(suite.router, http.MethodPost, "/anonymous/shifts", service.OpenShiftRequest{GroupID: uuid.New()})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestOpenShiftInvalidBody tests opening a shift with a malformed body
func (suite *ShiftHandlerTestSuite) TestOpenShiftInvalidBody() {
	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts", `{"group_id": `)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid request body")
}

// TestOpenShiftAlreadyOpen tests that a second open shift maps to a conflict
func (suite *ShiftHandlerTestSuite) TestOpenShiftAlreadyOpen() {
	suite.mockShifts.EXPECT().
		OpenShift(gomock.Any(), suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrShiftAlreadyOpen)

	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts", service.OpenShiftRequest{GroupID: uuid.New()})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestOpenShiftGroupNotFound tests opening a shift for an unknown group
func (suite *ShiftHandlerTestSuite) TestOpenShiftGroupNotFound() {
	suite.mockShifts.EXPECT().
		OpenShift(gomock.Any(), suite.userID, gomock.Any()).
		Return(nil, apperrors.NewNotFoundError("shift group"))

	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts", service.OpenShiftRequest{GroupID: uuid.New()})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetActiveShift tests reading the caller's open shift
func (suite *ShiftHandlerTestSuite) TestGetActiveShift() {
	expected := suite.openShiftResponse(uuid.New())

	suite.mockShifts.EXPECT().
		GetActiveShiftForUser(gomock.Any(), suite.userID).
		Return(expected, nil)

	w := performRequest(suite.router, http.MethodGet, "/api/v1/shifts/active/me", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.ShiftResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected.ID, response.ID)
}

// TestHandover tests a successful handover
func (suite *ShiftHandlerTestSuite) TestHandover() {
	request := suite.validHandover()
	expected := suite.openShiftResponse(request.NextGroupID)

	suite.mockHandover.EXPECT().
		Handover(gomock.Any(), suite.userID, &request).
		Return(expected, nil)

	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts/handover", request)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.ShiftResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected.ID, response.ID)
	assert.Equal(suite.T(), request.NextGroupID, response.ScheduledGroupID)
}

// TestHandoverUnauthenticated tests that a handover without a user is rejected
func (suite *ShiftHandlerTestSuite) TestHandoverUnauthenticated() {
	w := performRequest(suite.router, http.MethodPost, "/anonymous/shifts/handover", suite.validHandover())

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestHandoverBadCredentials tests that a failed handshake maps to 401
func (suite *ShiftHandlerTestSuite) TestHandoverBadCredentials() {
	suite.mockHandover.EXPECT().
		Handover(gomock.Any(), suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials)

	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts/handover", suite.validHandover())

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestHandoverNotHolder tests that only the holder may hand a shift over
func (suite *ShiftHandlerTestSuite) TestHandoverNotHolder() {
	suite.mockHandover.EXPECT().
		Handover(gomock.Any(), suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrNotShiftHolder)

	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts/handover", suite.validHandover())

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestHandoverRolledBack tests that a rolled back handover hides the storage error
func (suite *ShiftHandlerTestSuite) TestHandoverRolledBack() {
	suite.mockHandover.EXPECT().
		Handover(gomock.Any(), suite.userID, gomock.Any()).
		Return(nil, apperrors.NewTransactionError("handover", errors.New("connection reset")))

	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts/handover", suite.validHandover())

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var response ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Internal server error", response.Error)
	assert.NotContains(suite.T(), w.Body.String(), "connection reset")
}

// TestGetShift tests reading a shift with its logs
func (suite *ShiftHandlerTestSuite) TestGetShift() {
	shift := suite.openShiftResponse(uuid.New())
	expected := &service.ShiftDetailResponse{ShiftResponse: *shift}

	suite.mockShifts.EXPECT().
		GetShiftDetails(gomock.Any(), shift.ID).
		Return(expected, nil)

	w := performRequest(suite.router, http.MethodGet, "/api/v1/shifts/"+shift.ID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), shift.ID.String())
}

// TestGetShiftNotFound tests reading an unknown shift
func (suite *ShiftHandlerTestSuite) TestGetShiftNotFound() {
	id := uuid.New()

	suite.mockShifts.EXPECT().
		GetShiftDetails(gomock.Any(), id).
		Return(nil, apperrors.ErrShiftNotFound)

	w := performRequest(suite.router, http.MethodGet, "/api/v1/shifts/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCloseShift tests closing the caller's shift
func (suite *ShiftHandlerTestSuite) TestCloseShift() {
	shift := suite.openShiftResponse(uuid.New())
	end := shift.StartTime.Add(8 * time.Hour)
	shift.EndTime = &end
	shift.Status = models.ShiftStatusClosed

	suite.mockShifts.EXPECT().
		CloseShift(gomock.Any(), shift.ID, suite.userID).
		Return(shift, nil)

	w := performRequest(suite.router, http.MethodPut, "/api/v1/shifts/"+shift.ID.String()+"/close", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.ShiftResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ShiftStatusClosed, response.Status)
	assert.NotNil(suite.T(), response.EndTime)
}

// TestCloseShiftTwice tests that closing a closed shift maps to a conflict
func (suite *ShiftHandlerTestSuite) TestCloseShiftTwice() {
	id := uuid.New()

	suite.mockShifts.EXPECT().
		CloseShift(gomock.Any(), id, suite.userID).
		Return(nil, apperrors.ErrShiftClosed)

	w := performRequest(suite.router, http.MethodPut, "/api/v1/shifts/"+id.String()+"/close", nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestCloseShiftForbidden tests closing a shift held by someone else
func (suite *ShiftHandlerTestSuite) TestCloseShiftForbidden() {
	id := uuid.New()

	suite.mockShifts.EXPECT().
		CloseShift(gomock.Any(), id, suite.userID).
		Return(nil, apperrors.ErrNotShiftHolder)

	w := performRequest(suite.router, http.MethodPut, "/api/v1/shifts/"+id.String()+"/close", nil)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestCloseShiftInvalidID tests closing with a malformed shift ID
func (suite *ShiftHandlerTestSuite) TestCloseShiftInvalidID() {
	w := performRequest(suite.router, http.MethodPut, "/api/v1/shifts/not-a-uuid/close", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Invalid shift ID", response.Error)
}

// TestAssignGroup tests re-targeting an open shift
func (suite *ShiftHandlerTestSuite) TestAssignGroup() {
	groupID := uuid.New()
	shift := suite.openShiftResponse(groupID)

	suite.mockShifts.EXPECT().
		AssignGroup(gomock.Any(), shift.ID, suite.userID, &service.AssignGroupRequest{GroupID: groupID}).
		Return(shift, nil)

	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/assign-group", service.AssignGroupRequest{GroupID: groupID})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestListAttendance tests reading the attendance sheet
func (suite *ShiftHandlerTestSuite) TestListAttendance() {
	shiftID := uuid.New()
	employeeID := uuid.New()
	records := []models.ShiftAttendance{
		{
			BaseModel:           models.BaseModel{ID: uuid.New()},
			ShiftID:             shiftID,
			ScheduledEmployeeID: employeeID,
			ActualEmployeeID:    employeeID,
			PositionID:          uuid.New(),
			Status:              models.AttendanceStatusPresent,
		},
	}

	suite.mockShifts.EXPECT().
		ListAttendance(gomock.Any(), shiftID).
		Return(records, nil)

	w := performRequest(suite.router, http.MethodGet, "/api/v1/shifts/"+shiftID.String()+"/attendance", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.ShiftAttendance
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), models.AttendanceStatusPresent, response[0].Status)
}

// TestUpdateAttendance tests recording an absence
func (suite *ShiftHandlerTestSuite) TestUpdateAttendance() {
	recordID := uuid.New()

	suite.mockShifts.EXPECT().
		UpdateAttendance(gomock.Any(), recordID, suite.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ uuid.UUID, req *service.UpdateAttendanceRequest) (*models.ShiftAttendance, error) {
			if assert.NotNil(suite.T(), req.Status) {
				assert.Equal(suite.T(), models.AttendanceStatusAbsent, *req.Status)
			}
			assert.Nil(suite.T(), req.ActualEmployeeID)
			return &models.ShiftAttendance{
				BaseModel: models.BaseModel{ID: id},
				Status:    models.AttendanceStatusAbsent,
			}, nil
		})

	w := performRequest(suite.router, http.MethodPatch, "/api/v1/attendance/"+recordID.String(), map[string]interface{}{"status": "ABSENT"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ABSENT")
}

// TestUpdateAttendanceClosedShift tests patching the sheet of a closed shift
func (suite *ShiftHandlerTestSuite) TestUpdateAttendanceClosedShift() {
	recordID := uuid.New()

	suite.mockShifts.EXPECT().
		UpdateAttendance(gomock.Any(), recordID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrShiftClosed)

	w := performRequest(suite.router, http.MethodPatch, "/api/v1/attendance/"+recordID.String(), map[string]interface{}{"status": "ABSENT"})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestShiftHandlerTestSuite runs the test suite
func TestShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}
