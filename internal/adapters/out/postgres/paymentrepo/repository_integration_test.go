package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"lunchbox/internal/adapters/out/postgres/paymentrepo"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

var now = time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC)

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := startPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(paymentrepo.Migrate(db))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) newPayment(orderID kernel.UUID) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, kernel.MustMoney("15.00"), payment.Pix, now)
	suite.Require().NoError(err)
	return p
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAddAndGetByOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	p := suite.newPayment(orderID)
	suite.Require().NoError(p.Update(payment.Details{PixTxID: "E123", Reference: "ref-1"}))

	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(p.ID(), got.ID())
	suite.Equal(payment.Pix, got.Method())
	suite.Equal(payment.Pending, got.Status())
	suite.Equal("E123", got.PixTxID())
	suite.Equal("ref-1", got.Reference())
	suite.Equal(1, got.Version())
	suite.Nil(got.ConfirmedAt())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_SecondPaymentForOrderRejected() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPayment(orderID)))

	err := suite.repository.Add(ctx, suite.newPayment(orderID))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByOrder_NotFound() {
	_, err := suite.repository.GetByOrder(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_ConfirmAndConflict() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPayment(orderID)))

	first, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	second, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)

	_, err = first.Confirm(now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err = second.Refuse("late", now)
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	got, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(payment.Confirmed, got.Status())
	suite.Equal(2, got.Version())
	suite.Require().NotNil(got.ConfirmedAt())
	suite.True(now.Equal(*got.ConfirmedAt()))
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
