//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"control-room-backend/internal/database/models"
	"control-room-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftRepositoryTestSuite tests the ShiftRepository and Store transactions
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         *Repositories
	store         *Store
	factories     *testutils.FactorySet
	ctx           context.Context
	holder        *models.User
	group         *models.ShiftGroup
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates a holder and a group for every test
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.holder = suite.factories.User.Create()
	suite.Require().NoError(suite.repos.Users.Create(suite.ctx, suite.holder))
	suite.group = suite.factories.Group.Create()
	suite.Require().NoError(suite.repos.Groups.Create(suite.ctx, suite.group))
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetOpen tests opening a shift and reading it back
func (suite *ShiftRepositoryTestSuite) TestCreateAndGetOpen() {
	shift := suite.factories.Shift.Open(suite.holder.ID, suite.group.ID)
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, shift))

	open, err := suite.repos.Shifts.GetOpen(suite.ctx)

	suite.NoError(err)
	suite.Equal(shift.ID, open.ID)
	suite.Nil(open.EndTime)
	suite.True(open.IsOpen())

	held, err := suite.repos.Shifts.GetOpenByHolder(suite.ctx, suite.holder.ID)
	suite.NoError(err)
	suite.Equal(shift.ID, held.ID)
}

// TestSecondOpenShiftRejected tests the single open shift index
func (suite *ShiftRepositoryTestSuite) TestSecondOpenShiftRejected() {
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, suite.factories.Shift.Open(suite.holder.ID, suite.group.ID)))

	other := suite.factories.User.Create()
	suite.NoError(suite.repos.Users.Create(suite.ctx, other))

	err := suite.repos.Shifts.Create(suite.ctx, suite.factories.Shift.Open(other.ID, suite.group.ID))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestClosedShiftsDoNotBlockOpen tests that closed shifts are outside the open index
func (suite *ShiftRepositoryTestSuite) TestClosedShiftsDoNotBlockOpen() {
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, suite.factories.Shift.Closed(suite.holder.ID, suite.group.ID)))
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, suite.factories.Shift.Closed(suite.holder.ID, suite.group.ID)))

	err := suite.repos.Shifts.Create(suite.ctx, suite.factories.Shift.Open(suite.holder.ID, suite.group.ID))

	suite.NoError(err)
}

// TestGetOpenNone tests reading the open shift when there is none
func (suite *ShiftRepositoryTestSuite) TestGetOpenNone() {
	open, err := suite.repos.Shifts.GetOpen(suite.ctx)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(open)
}

// TestClose tests closing an open shift exactly once
func (suite *ShiftRepositoryTestSuite) TestClose() {
	shift := suite.factories.Shift.Open(suite.holder.ID, suite.group.ID)
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, shift))
	end := shift.StartTime.Add(8 * time.Hour)

	closed, err := suite.repos.Shifts.Close(suite.ctx, shift.ID, suite.holder.ID, end)
	suite.NoError(err)
	suite.True(closed)

	again, err := suite.repos.Shifts.Close(suite.ctx, shift.ID, suite.holder.ID, end.Add(time.Minute))
	suite.NoError(err)
	suite.False(again)

	stored, err := suite.repos.Shifts.GetByID(suite.ctx, shift.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStatusClosed, stored.Status)
	if suite.NotNil(stored.EndTime) {
		suite.True(stored.EndTime.Equal(end))
	}
	if suite.NotNil(stored.OutgoingHolderID) {
		suite.Equal(suite.holder.ID, *stored.OutgoingHolderID)
	}
}

// TestGetClosedMostRecentFirst tests the ordering of closed shifts
func (suite *ShiftRepositoryTestSuite) TestGetClosedMostRecentFirst() {
	older := suite.factories.Shift.Closed(suite.holder.ID, suite.group.ID)
	olderEnd := older.StartTime.Add(-24 * time.Hour)
	older.EndTime = &olderEnd
	older.StartTime = olderEnd.Add(-8 * time.Hour)
	newer := suite.factories.Shift.Closed(suite.holder.ID, suite.group.ID)
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, older))
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, newer))
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, suite.factories.Shift.Open(suite.holder.ID, suite.group.ID)))

	shifts, err := suite.repos.Shifts.GetClosed(suite.ctx)

	suite.NoError(err)
	suite.Len(shifts, 2)
	suite.Equal(newer.ID, shifts[0].ID)
	suite.Equal(older.ID, shifts[1].ID)
}

// TestUpdateGroup tests re-targeting a shift to another group
func (suite *ShiftRepositoryTestSuite) TestUpdateGroup() {
	shift := suite.factories.Shift.Open(suite.holder.ID, suite.group.ID)
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, shift))
	other := suite.factories.Group.Create()
	suite.NoError(suite.repos.Groups.Create(suite.ctx, other))

	suite.NoError(suite.repos.Shifts.UpdateGroup(suite.ctx, shift.ID, other.ID))

	stored, err := suite.repos.Shifts.GetByID(suite.ctx, shift.ID)
	suite.NoError(err)
	suite.Equal(other.ID, stored.ScheduledGroupID)
}

// TestTransactionRollback tests that a failing transaction leaves no rows behind
func (suite *ShiftRepositoryTestSuite) TestTransactionRollback() {
	shift := suite.factories.Shift.Open(suite.holder.ID, suite.group.ID)
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, shift))
	end := time.Now().UTC()

	err := suite.store.Transaction(suite.ctx, func(tx *Repositories) error {
		locked, err := tx.Shifts.GetByIDForUpdate(suite.ctx, shift.ID)
		if err != nil {
			return err
		}
		if _, err := tx.Shifts.Close(suite.ctx, locked.ID, suite.holder.ID, end); err != nil {
			return err
		}
		// Opening a second shift for a holder that does not exist fails the shift FK
		return tx.Shifts.Create(suite.ctx, suite.factories.Shift.Open(uuid.New(), suite.group.ID))
	})
	suite.Error(err)

	stored, err := suite.repos.Shifts.GetByID(suite.ctx, shift.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStatusOpen, stored.Status)
	suite.Nil(stored.EndTime)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Shift{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestTransactionCommit tests that a handover-shaped transaction commits both writes
func (suite *ShiftRepositoryTestSuite) TestTransactionCommit() {
	shift := suite.factories.Shift.Open(suite.holder.ID, suite.group.ID)
	suite.NoError(suite.repos.Shifts.Create(suite.ctx, shift))
	incoming := suite.factories.User.Create()
	suite.NoError(suite.repos.Users.Create(suite.ctx, incoming))
	end := time.Now().UTC().Truncate(time.Second)

	next := suite.factories.Shift.Open(incoming.ID, suite.group.ID)
	next.StartTime = end
	next.OutgoingHolderID = &suite.holder.ID
	err := suite.store.Transaction(suite.ctx, func(tx *Repositories) error {
		if _, err := tx.Shifts.GetByIDForUpdate(suite.ctx, shift.ID); err != nil {
			return err
		}
		if _, err := tx.Shifts.Close(suite.ctx, shift.ID, suite.holder.ID, end); err != nil {
			return err
		}
		return tx.Shifts.Create(suite.ctx, next)
	})
	suite.NoError(err)

	open, err := suite.repos.Shifts.GetOpen(suite.ctx)
	suite.NoError(err)
	suite.Equal(next.ID, open.ID)
	suite.Equal(incoming.ID, open.IncomingHolderID)
}

// TestShiftRepositoryTestSuite runs the test suite
func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}
