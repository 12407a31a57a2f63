package userrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/adapters/out/postgres"
	"github.com/rede-emergencia/euajudo-sub000/internal/adapters/out/postgres/userrepo"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/user"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite provides integration tests for
// UserRepository using PostgreSQL containers, covering the unique username
// constraint and role round-tripping.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres.Connect(connStr)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	account := suite.newUser("maria", user.RoleShelter, user.RoleVolunteer)

	suite.tracker.On("TrackAggregate", account.ID(), account).Once()
	suite.Require().NoError(suite.repository.Add(ctx, account))

	restored, err := suite.repository.GetByUsername(ctx, "maria")
	suite.Require().NoError(err)
	suite.Equal(account.ID(), restored.ID())
	suite.True(restored.HasRole(user.RoleShelter))
	suite.True(restored.HasRole(user.RoleVolunteer))
	suite.NoError(restored.VerifyPassword("correct horse battery"))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateUsername_Conflict() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("joao", user.RoleVolunteer)))

	err := suite.repository.Add(ctx, suite.newUser("joao", user.RoleProvider))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_DeactivationPersisted() {
	ctx := context.Background()
	account := suite.newUser("ana", user.RoleProvider)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, account))

	account.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, account))

	restored, err := suite.repository.Get(ctx, account.ID())
	suite.Require().NoError(err)
	suite.False(restored.Active())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newUser("ghost", user.RoleVolunteer))
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByUsername_NotFound() {
	_, err := suite.repository.GetByUsername(context.Background(), "nobody")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(username string, roles ...user.Role) *user.User {
	account, err := user.NewUser(kernel.NewUUID(), username, "correct horse battery", roles)
	suite.Require().NoError(err)
	return account
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
