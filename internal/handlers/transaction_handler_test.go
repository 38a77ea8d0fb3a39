package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lana-api/internal/models"
	"lana-api/internal/repositories"
	"lana-api/internal/repositories/repository_mocks"
	"lana-api/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	handler         *TransactionHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.transactionRepo, s.metrics)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerSuite) newContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *TransactionHandlerSuite) fakeTransaction(txType string) *models.Transaction {
	return &models.Transaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)),
		Type:        txType,
		Category:    gofakeit.RandomString([]string{"food", "transport", "rent", "salary"}),
		Date:        time.Now(),
		Description: gofakeit.Sentence(3),
	}
}

func (s *TransactionHandlerSuite) TestCreateTransaction() {
	s.transactionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(transaction *models.Transaction) error {
			s.Equal(s.userID, transaction.UserID)
			s.Equal(models.TransactionTypeExpense, transaction.Type)
			// Sign is normalized before the repository sees the row
			s.True(transaction.Amount.IsNegative())
			transaction.ID = uuid.New()
			return nil
		}).
		Times(1)
	s.metrics.EXPECT().
		IncrementCounter("transaction_recorded", map[string]string{"type": models.TransactionTypeExpense}).
		Times(1)

	c, rec := s.newContext(http.MethodPost, "/transactions", map[string]interface{}{
		"amount":           "45.50",
		"description":      gofakeit.Sentence(3),
		"category":         "food",
		"transaction_type": "expense",
		"date":             time.Now().Format(time.RFC3339),
	})

	err := s.handler.CreateTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response models.Transaction
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotEqual(uuid.Nil, response.ID)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_ZeroAmount() {
	c, rec := s.newContext(http.MethodPost, "/transactions", map[string]interface{}{
		"amount":           "0",
		"description":      "zero amount",
		"category":         "food",
		"transaction_type": "expense",
		"date":             time.Now().Format(time.RFC3339),
	})

	err := s.handler.CreateTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("TRANSACTION_002", errorResp.Error.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_InvalidType() {
	// transaction_type validator rejects anything but income/expense
	c, rec := s.newContext(http.MethodPost, "/transactions", map[string]interface{}{
		"amount":           "45.50",
		"description":      "invalid type",
		"category":         "food",
		"transaction_type": "transfer",
		"date":             time.Now().Format(time.RFC3339),
	})

	err := s.handler.CreateTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_MissingAuth() {
	payload, _ := json.Marshal(map[string]interface{}{
		"amount":           "45.50",
		"description":      "no auth",
		"category":         "food",
		"transaction_type": "expense",
		"date":             time.Now().Format(time.RFC3339),
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBuffer(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.CreateTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_DefaultLimit() {
	transactions := []models.Transaction{*s.fakeTransaction(models.TransactionTypeExpense)}

	s.transactionRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(s.userID, filters.UserID)
			s.Equal(defaultTransactionPageLimit, filters.Limit)
			return transactions, 1, nil
		}).
		Times(1)

	c, rec := s.newContext(http.MethodGet, "/transactions", nil)

	err := s.handler.ListTransactions(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(float64(1), response["total"])
	s.Equal(float64(defaultTransactionPageLimit), response["limit"])
}

func (s *TransactionHandlerSuite) TestListTransactions_WithFilters() {
	s.transactionRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal("food", filters.Category)
			s.Equal(models.TransactionTypeExpense, filters.Type)
			s.Equal(7, filters.Month)
			s.Equal(2025, filters.Year)
			return []models.Transaction{}, 0, nil
		}).
		Times(1)

	c, rec := s.newContext(http.MethodGet, "/transactions?category=food&transaction_type=expense&month=7&year=2025", nil)

	err := s.handler.ListTransactions(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_MonthWithoutYear() {
	c, rec := s.newContext(http.MethodGet, "/transactions?month=7", nil)

	err := s.handler.ListTransactions(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("VALIDATION_007", errorResp.Error.Code)
}

func (s *TransactionHandlerSuite) TestGetTransaction() {
	transaction := s.fakeTransaction(models.TransactionTypeIncome)

	s.transactionRepo.EXPECT().
		GetByID(transaction.ID).
		Return(transaction, nil).
		Times(1)

	c, rec := s.newContext(http.MethodGet, "/transactions/"+transaction.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(transaction.ID.String())

	err := s.handler.GetTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestGetTransaction_OtherUser() {
	transaction := s.fakeTransaction(models.TransactionTypeExpense)
	transaction.UserID = uuid.New()

	s.transactionRepo.EXPECT().
		GetByID(transaction.ID).
		Return(transaction, nil).
		Times(1)

	c, rec := s.newContext(http.MethodGet, "/transactions/"+transaction.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(transaction.ID.String())

	err := s.handler.GetTransaction(c)
	s.NoError(err)
	// Other users' transactions look like they don't exist
	s.Equal(http.StatusNotFound, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("TRANSACTION_001", errorResp.Error.Code)
}

func (s *TransactionHandlerSuite) TestGetTransaction_InvalidID() {
	c, rec := s.newContext(http.MethodGet, "/transactions/not-a-uuid", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := s.handler.GetTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("VALIDATION_003", errorResp.Error.Code)
}

func (s *TransactionHandlerSuite) TestUpdateTransaction() {
	transaction := s.fakeTransaction(models.TransactionTypeExpense)

	s.transactionRepo.EXPECT().
		GetByID(transaction.ID).
		Return(transaction, nil).
		Times(1)
	s.transactionRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Transaction) error {
			// A changed amount keeps the expense sign convention
			s.True(updated.Amount.Equal(decimal.RequireFromString("-25")))
			return nil
		}).
		Times(1)

	c, rec := s.newContext(http.MethodPut, "/transactions/"+transaction.ID.String(), map[string]interface{}{
		"amount": "25",
	})
	c.SetParamNames("id")
	c.SetParamValues(transaction.ID.String())

	err := s.handler.UpdateTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestDeleteTransaction() {
	transaction := s.fakeTransaction(models.TransactionTypeExpense)

	s.transactionRepo.EXPECT().
		GetByID(transaction.ID).
		Return(transaction, nil).
		Times(1)
	s.transactionRepo.EXPECT().
		Delete(transaction.ID).
		Return(nil).
		Times(1)

	c, rec := s.newContext(http.MethodDelete, "/transactions/"+transaction.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(transaction.ID.String())

	err := s.handler.DeleteTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerSuite) TestDeleteTransaction_NotFound() {
	transactionID := uuid.New()

	s.transactionRepo.EXPECT().
		GetByID(transactionID).
		Return(nil, repositories.ErrTransactionNotFound).
		Times(1)

	c, rec := s.newContext(http.MethodDelete, "/transactions/"+transactionID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(transactionID.String())

	err := s.handler.DeleteTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TransactionHandlerSuite) TestListCategories() {
	categories := []string{"food", "salary", "transport"}

	s.transactionRepo.EXPECT().
		ListCategories(s.userID).
		Return(categories, nil).
		Times(1)

	c, rec := s.newContext(http.MethodGet, "/transactions/categories", nil)

	err := s.handler.ListCategories(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response []string
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(categories, response)
}
