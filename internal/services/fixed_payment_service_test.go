package services

import (
	"log/slog"
	"testing"
	"time"

	"lana-api/internal/dto"
	"lana-api/internal/models"
	"lana-api/internal/repositories"
	"lana-api/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// FixedPaymentServiceSuite defines the test suite for FixedPaymentServiceInterface
type FixedPaymentServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	paymentRepo   *repository_mocks.MockFixedPaymentRepositoryInterface
	service       *fixedPaymentService
	testUserID    uuid.UUID
	testPaymentID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *FixedPaymentServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.paymentRepo = repository_mocks.NewMockFixedPaymentRepositoryInterface(s.ctrl)
	s.service = NewFixedPaymentService(s.paymentRepo, slog.Default()).(*fixedPaymentService)

	s.testUserID = uuid.New()
	s.testPaymentID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *FixedPaymentServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestFixedPaymentServiceSuite runs the test suite
func TestFixedPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(FixedPaymentServiceSuite))
}

func (s *FixedPaymentServiceSuite) payment(name string, dueDay int, isActive bool) models.FixedPayment {
	return models.FixedPayment{
		ID:       uuid.New(),
		UserID:   s.testUserID,
		Name:     name,
		Amount:   decimal.NewFromFloat(50.00),
		DueDay:   dueDay,
		IsActive: isActive,
	}
}

func (s *FixedPaymentServiceSuite) TestCreate_DefaultsToActive() {
	s.paymentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(payment *models.FixedPayment) error {
			payment.ID = s.testPaymentID
			return nil
		})

	payment, err := s.service.Create(s.testUserID, &dto.CreateFixedPaymentRequest{
		Name:   "Rent",
		Amount: decimal.NewFromInt(1200),
		DueDay: 1,
	})
	s.NoError(err)
	s.NotNil(payment)
	s.True(payment.IsActive)
}

func (s *FixedPaymentServiceSuite) TestCreate_ExplicitlyInactive() {
	inactive := false
	s.paymentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	payment, err := s.service.Create(s.testUserID, &dto.CreateFixedPaymentRequest{
		Name:     "Gym",
		Amount:   decimal.NewFromInt(30),
		DueDay:   15,
		IsActive: &inactive,
	})
	s.NoError(err)
	s.False(payment.IsActive)
}

func (s *FixedPaymentServiceSuite) TestGet_OwnershipMismatchReadsAsNotFound() {
	other := s.payment("Rent", 1, true)
	other.UserID = uuid.New()
	s.paymentRepo.EXPECT().GetByID(s.testPaymentID).Return(&other, nil)

	payment, err := s.service.Get(s.testUserID, s.testPaymentID)
	s.Error(err)
	s.Nil(payment)
	s.Equal(ErrFixedPaymentNotFound, err)
}

func (s *FixedPaymentServiceSuite) TestListWithStatus() {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.FixedPayment{
		s.payment("Rent", 20, true),      // 10 days out: upcoming
		s.payment("Insurance", 11, true), // tomorrow: warning
		s.payment("Gym", 5, false),       // inactive regardless of dates
	}
	s.paymentRepo.EXPECT().GetByUserID(s.testUserID).Return(payments, nil)

	result, err := s.service.ListWithStatus(s.testUserID, now)
	s.NoError(err)
	s.Len(result, 3)

	s.Equal(models.PaymentStatusUpcoming, result[0].Status)
	s.Equal(10, result[0].DaysUntilDue)
	s.Equal(time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC), result[0].NextDue)

	s.Equal(models.PaymentStatusWarning, result[1].Status)
	s.Equal(1, result[1].DaysUntilDue)

	s.Equal(models.PaymentStatusInactive, result[2].Status)
}

func (s *FixedPaymentServiceSuite) TestListWithStatus_ClampsDueDayToMonthLength() {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	s.paymentRepo.EXPECT().GetByUserID(s.testUserID).
		Return([]models.FixedPayment{s.payment("Insurance", 31, true)}, nil)

	result, err := s.service.ListWithStatus(s.testUserID, now)
	s.NoError(err)
	s.Len(result, 1)
	// June has 30 days, so due day 31 falls on the 30th
	s.Equal(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), result[0].NextDue)
	s.Equal(20, result[0].DaysUntilDue)
}

func (s *FixedPaymentServiceSuite) TestUpcoming_FiltersByHorizon() {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.FixedPayment{
		s.payment("Insurance", 12, true), // 2 days: included
		s.payment("Netflix", 17, true),   // 7 days: included, boundary
		s.payment("Rent", 20, true),      // 10 days: excluded
	}
	s.paymentRepo.EXPECT().GetActiveByUserID(s.testUserID).Return(payments, nil)

	result, err := s.service.Upcoming(s.testUserID, 7, now)
	s.NoError(err)
	s.Len(result, 2)
	s.Equal("Insurance", result[0].Name)
	s.Equal("Netflix", result[1].Name)
}

func (s *FixedPaymentServiceSuite) TestUpdate() {
	payment := s.payment("Rent", 1, true)
	payment.ID = s.testPaymentID
	s.paymentRepo.EXPECT().GetByID(s.testPaymentID).Return(&payment, nil)
	s.paymentRepo.EXPECT().Update(gomock.Any()).Return(nil)

	newDueDay := 5
	inactive := false
	updated, err := s.service.Update(s.testUserID, s.testPaymentID, &dto.UpdateFixedPaymentRequest{
		DueDay:   &newDueDay,
		IsActive: &inactive,
	})
	s.NoError(err)
	s.Equal(5, updated.DueDay)
	s.False(updated.IsActive)
	s.Equal("Rent", updated.Name)
}

func (s *FixedPaymentServiceSuite) TestDelete_NotFound() {
	s.paymentRepo.EXPECT().GetByID(s.testPaymentID).Return(nil, repositories.ErrFixedPaymentNotFound)

	err := s.service.Delete(s.testUserID, s.testPaymentID)
	s.Equal(ErrFixedPaymentNotFound, err)
}
