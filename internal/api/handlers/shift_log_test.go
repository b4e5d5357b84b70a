package handlers

import (
	"context"
	"encoding/json"
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

// ShiftLogHandlerTestSuite tests the ShiftLogHandler
type ShiftLogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockShiftLogServiceInterface
	handler     *ShiftLogHandler
	userID      uuid.UUID
	shiftID     uuid.UUID
}

// SetupSuite sets up the test suite
func (suite *ShiftLogHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *ShiftLogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockShiftLogServiceInterface(suite.ctrl)
	suite.handler = NewShiftLogHandler(suite.mockService)
	suite.userID = uuid.New()
	suite.shiftID = uuid.New()

	suite.router = gin.New()

	// Setup routes
	shifts := suite.router.Group("/api/v1/shifts")
	shifts.Use(authenticatedAs(suite.userID, models.UserRoleShiftSuperintendent))
	for _, kind := range service.LogKinds {
		shifts.POST("/:id/"+string(kind), suite.handler.AppendLog(kind))
		shifts.GET("/:id/"+string(kind), suite.handler.ListLogs(kind))
	}
}

// TearDownTest cleans up after each test
func (suite *ShiftLogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftLogHandlerTestSuite) path(kind service.LogKind) string {
	return "/api/v1/shifts/" + suite.shiftID.String() + "/" + string(kind)
}

// TestAppendRamp tests that a ramp body is decoded into the ramp payload
func (suite *ShiftLogHandlerTestSuite) TestAppendRamp() {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rampID := uuid.New()

	suite.mockService.EXPECT().
		AppendLog(gomock.Any(), suite.shiftID, suite.userID, gomock.AssignableToTypeOf(&service.GenerationRampRequest{})).
		DoAndReturn(func(_ context.Context, shiftID, userID uuid.UUID, payload service.LogPayload) (interface{}, error) {
			ramp := payload.(*service.GenerationRampRequest)
			assert.Equal(suite.T(), service.LogKindRamps, ramp.Kind())
			assert.Equal(suite.T(), 100.0, ramp.InitialLoadMW)
			assert.Equal(suite.T(), 160.0, ramp.FinalLoadMW)
			assert.True(suite.T(), ramp.EndTime.Sub(ramp.StartTime) == 10*time.Minute)
			return &models.GenerationRamp{
				BaseModel:          models.BaseModel{ID: rampID},
				ShiftID:            shiftID,
				UserID:             userID,
				ActualRateMWPerMin: 6.0,
				IsCompliant:        true,
			}, nil
		})

	body := map[string]interface{}{
		"grid_operator_name":     "National dispatch",
		"start_time":             start.Format(time.RFC3339),
		"end_time":               start.Add(10 * time.Minute).Format(time.RFC3339),
		"initial_load_mw":        100,
		"final_load_mw":          160,
		"target_rate_mw_per_min": 5,
		"is_compliant":           false,
	}
	w := performRequest(suite.router, http.MethodPost, suite.path(service.LogKindRamps), body)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response models.GenerationRamp
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), rampID, response.ID)
	assert.True(suite.T(), response.IsCompliant)
}

// TestAppendLogInvalidBody tests appending with a malformed body
func (suite *ShiftLogHandlerTestSuite) TestAppendLogInvalidBody() {
	w := performRequest(suite.router, http.MethodPost, suite.path(service.LogKindEvents), `{"description": 5`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestAppendLogInvalidShiftID tests appending to a malformed shift ID
func (suite *ShiftLogHandlerTestSuite) TestAppendLogInvalidShiftID() {
	w := performRequest(suite.router, http.MethodPost, "/api/v1/shifts/abc/events", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid shift ID")
}

// TestAppendLogClosedShift tests that every kind maps a closed shift to a conflict
func (suite *ShiftLogHandlerTestSuite) TestAppendLogClosedShift() {
	for _, kind := range service.LogKinds {
		suite.mockService.EXPECT().
			AppendLog(gomock.Any(), suite.shiftID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrShiftClosed)

		w := performRequest(suite.router, http.MethodPost, suite.path(kind), map[string]interface{}{})

		assert.Equal(suite.T(), http.StatusConflict, w.Code, "kind %s", kind)
	}
}

// TestAppendLogNotHolder tests that every kind maps a non-holder to forbidden
func (suite *ShiftLogHandlerTestSuite) TestAppendLogNotHolder() {
	for _, kind := range service.LogKinds {
		suite.mockService.EXPECT().
			AppendLog(gomock.Any(), suite.shiftID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrNotShiftHolder)

		w := performRequest(suite.router, http.MethodPost, suite.path(kind), map[string]interface{}{})

		assert.Equal(suite.T(), http.StatusForbidden, w.Code, "kind %s", kind)
	}
}

// TestAppendLogMissingReference tests that an unknown catalog entry maps to 404
func (suite *ShiftLogHandlerTestSuite) TestAppendLogMissingReference() {
	suite.mockService.EXPECT().
		AppendLog(gomock.Any(), suite.shiftID, suite.userID, gomock.AssignableToTypeOf(&service.TankReadingRequest{})).
		Return(nil, apperrors.ErrTankNotFound)

	w := performRequest(suite.router, http.MethodPost, suite.path(service.LogKindTankReadings), map[string]interface{}{
		"tank_id": uuid.New().String(),
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "tank")
}

// TestAppendRampZeroElapsed tests that a ramp validation failure maps to 400
func (suite *ShiftLogHandlerTestSuite) TestAppendRampZeroElapsed() {
	suite.mockService.EXPECT().
		AppendLog(gomock.Any(), suite.shiftID, suite.userID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("end_time", "must be after start_time"))

	w := performRequest(suite.router, http.MethodPost, suite.path(service.LogKindRamps), map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListLogs tests listing one log of a shift
func (suite *ShiftLogHandlerTestSuite) TestListLogs() {
	entries := []models.EventLog{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ShiftID: suite.shiftID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, ShiftID: suite.shiftID},
	}

	suite.mockService.EXPECT().
		ListLogs(gomock.Any(), suite.shiftID, service.LogKindEvents).
		Return(entries, nil)

	w := performRequest(suite.router, http.MethodGet, suite.path(service.LogKindEvents), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 2)
}

// TestListLogsShiftNotFound tests listing the logs of an unknown shift
func (suite *ShiftLogHandlerTestSuite) TestListLogsShiftNotFound() {
	suite.mockService.EXPECT().
		ListLogs(gomock.Any(), suite.shiftID, service.LogKindNovelties).
		Return(nil, apperrors.ErrShiftNotFound)

	w := performRequest(suite.router, http.MethodGet, suite.path(service.LogKindNovelties), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestShiftLogHandlerTestSuite runs the test suite
func TestShiftLogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftLogHandlerTestSuite))
}
