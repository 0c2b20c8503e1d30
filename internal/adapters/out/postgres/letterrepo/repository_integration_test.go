package letterrepo_test

import (
	"context"
	"testing"
	"time"

	"pigeonpost/internal/adapters/out/postgres/carrierrepo"
	"pigeonpost/internal/adapters/out/postgres/clientrepo"
	"pigeonpost/internal/adapters/out/postgres/letterrepo"
	"pigeonpost/internal/core/domain/model/carrier"
	"pigeonpost/internal/core/domain/model/client"
	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// LetterRepositoryIntegrationTestSuite verifies letter persistence against
// a real PostgreSQL instance, including the status check constraint and the
// timestamp columns driven by the lifecycle.
type LetterRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *letterrepo.GormLetterRepository
	tracker    *MockAggregateTracker

	senderID    int64
	recipientID int64
	carrierID   int64
}

func (suite *LetterRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&clientrepo.ClientDTO{},
		&letterrepo.LetterDTO{},
	))
}

func (suite *LetterRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE letters, clients, carriers RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Maybe()
	suite.repository = letterrepo.NewGormLetterRepository(suite.db, suite.tracker)

	suite.senderID = suite.insertClient("Ada Lovelace", "ada@example.com")
	suite.recipientID = suite.insertClient("Charles Babbage", "charles@example.com")
	suite.carrierID = suite.insertCarrier("Speedy")
}

func (suite *LetterRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LetterRepositoryIntegrationTestSuite) TestAdd_QueuedLetterWithoutTimestamps() {
	ctx := context.Background()

	saved, err := suite.repository.Add(ctx, suite.newLetter())
	suite.Require().NoError(err)
	suite.Positive(saved.ID())
	suite.Equal(letter.Queued, saved.Status())
	suite.Nil(saved.DispatchedAt())
	suite.Nil(saved.DeliveredAt())
}

func (suite *LetterRepositoryIntegrationTestSuite) TestUpdate_DispatchPersistsTimestamp() {
	ctx := context.Background()

	saved, err := suite.repository.Add(ctx, suite.newLetter())
	suite.Require().NoError(err)

	suite.Require().NoError(saved.ChangeStatus(letter.Dispatched, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, saved))

	loaded, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(letter.Dispatched, loaded.Status())
	suite.Require().NotNil(loaded.DispatchedAt())
	suite.Nil(loaded.DeliveredAt())
}

func (suite *LetterRepositoryIntegrationTestSuite) TestUpdate_RecallClearsTimestampsInDatabase() {
	ctx := context.Background()

	saved, err := suite.repository.Add(ctx, suite.newLetter())
	suite.Require().NoError(err)

	suite.Require().NoError(saved.ChangeStatus(letter.Dispatched, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, saved))

	// Recall must null out the column, not leave the stale stamp behind.
	suite.Require().NoError(saved.ChangeStatus(letter.Queued, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, saved))

	loaded, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(letter.Queued, loaded.Status())
	suite.Nil(loaded.DispatchedAt())
	suite.Nil(loaded.DeliveredAt())
}

func (suite *LetterRepositoryIntegrationTestSuite) TestUpdate_FullLifecycleRoundTrip() {
	ctx := context.Background()

	saved, err := suite.repository.Add(ctx, suite.newLetter())
	suite.Require().NoError(err)

	dispatched := time.Now().UTC().Add(-26 * time.Hour)
	suite.Require().NoError(saved.ChangeStatus(letter.Dispatched, dispatched))
	suite.Require().NoError(suite.repository.Update(ctx, saved))

	delivered := time.Now().UTC()
	suite.Require().NoError(saved.ChangeStatus(letter.Delivered, delivered))
	suite.Require().NoError(suite.repository.Update(ctx, saved))

	loaded, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(letter.Delivered, loaded.Status())

	spent := loaded.DeliveryTimeSpent()
	suite.Require().NotNil(spent)
	suite.EqualValues(26, spent.Hours)
}

func (suite *LetterRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	saved, err := suite.repository.Add(ctx, suite.newLetter())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, saved.ID()))

	_, err = suite.repository.Get(ctx, saved.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LetterRepositoryIntegrationTestSuite) TestCountByCarrier() {
	ctx := context.Background()

	_, err := suite.repository.Add(ctx, suite.newLetter())
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, suite.newLetter())
	suite.Require().NoError(err)

	count, err := suite.repository.CountByCarrier(ctx, suite.carrierID)
	suite.Require().NoError(err)
	suite.EqualValues(2, count)

	count, err = suite.repository.CountByCarrier(ctx, suite.carrierID+100)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *LetterRepositoryIntegrationTestSuite) TestCountByClient_CoversBothRoles() {
	ctx := context.Background()

	_, err := suite.repository.Add(ctx, suite.newLetter())
	suite.Require().NoError(err)

	senderCount, err := suite.repository.CountByClient(ctx, suite.senderID)
	suite.Require().NoError(err)
	suite.EqualValues(1, senderCount)

	recipientCount, err := suite.repository.CountByClient(ctx, suite.recipientID)
	suite.Require().NoError(err)
	suite.EqualValues(1, recipientCount)
}

func (suite *LetterRepositoryIntegrationTestSuite) newLetter() *letter.Letter {
	aggregate, err := letter.NewLetter(
		"Meet me at the clock tower at noon.",
		suite.senderID, suite.recipientID, suite.carrierID,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *LetterRepositoryIntegrationTestSuite) insertClient(name string, email string) int64 {
	aggregate, err := client.NewClient(
		name, email,
		time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC),
		"221B Baker Street",
	)
	suite.Require().NoError(err)

	repo := clientrepo.NewGormClientRepository(suite.db, suite.tracker)
	saved, err := repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return saved.ID()
}

func (suite *LetterRepositoryIntegrationTestSuite) insertCarrier(nickname string) int64 {
	aggregate, err := carrier.NewCarrier(
		nickname, 42.5,
		time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC),
		nil,
	)
	suite.Require().NoError(err)

	repo := carrierrepo.NewGormCarrierRepository(suite.db, suite.tracker)
	saved, err := repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return saved.ID()
}

func TestLetterRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LetterRepositoryIntegrationTestSuite))
}
