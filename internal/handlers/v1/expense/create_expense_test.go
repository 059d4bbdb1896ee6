package expense

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// -- parseCreateExpenseInput unit tests --

func TestParseCreateExpenseInput_ValidInput(t *testing.T) {
	input := &CreateExpenseInput{Body: CreateExpenseBody{
		UserID:   "user-1",
		Amount:   12.5,
		Category: "Food",
		Date:     "2024-05-10",
		Note:     "Lunch",
	}}

	parsed, err := parseCreateExpenseInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.True(t, parsed.Amount.Equal(decimal.RequireFromString("12.5")), dump(parsed))
	assert.Equal(t, "Food", parsed.Category)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), parsed.Date)
	assert.Equal(t, "Lunch", parsed.Note)
}

func TestParseCreateExpenseInput_RFC3339Date(t *testing.T) {
	input := &CreateExpenseInput{Body: CreateExpenseBody{
		UserID: "user-1",
		Date:   "2024-05-10T18:45:00Z",
	}}

	parsed, err := parseCreateExpenseInput(input)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), parsed.Date)
}

// -- HTTP tests (full Huma stack via humatest) --

func TestHTTP_CreateExpense_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("CreateExpense", mock.Anything, mock.MatchedBy(func(e service.NewExpense) bool {
		return e.UserID == "user-1" &&
			e.Amount.Equal(decimal.RequireFromString("12.50")) &&
			e.Category == "Food" &&
			e.Date.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)) &&
			e.Note == "Lunch"
	})).Return(sampleExpense(), nil)

	resp := newTestAPI(t, NewCreateExpenseHandler(mockSvc)).Post("/v1/expenses", CreateExpenseBody{
		UserID:   "user-1",
		Amount:   12.50,
		Category: "Food",
		Date:     "2024-05-10",
		Note:     "Lunch",
	})

	assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body CreateExpenseResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Expense created successfully", body.Message)
	assert.Equal(t, Expense{
		UserID:    "user-1",
		ExpenseID: "exp-1",
		Amount:    12.5,
		Category:  "Food",
		Date:      "2024-05-10",
		Note:      "Lunch",
		CreatedAt: "2024-05-10T13:04:05Z",
	}, body.Expense, dump(body))
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_MissingUserID(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, NewCreateExpenseHandler(mockSvc)).Post("/v1/expenses", CreateExpenseBody{
		Amount:   10,
		Category: "Food",
		Date:     "2024-05-10",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "userId is required", errorMessage(t, resp))
	mockSvc.AssertNotCalled(t, "CreateExpense")
}

func TestHTTP_CreateExpense_MissingDate(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, NewCreateExpenseHandler(mockSvc)).Post("/v1/expenses", CreateExpenseBody{
		UserID:   "user-1",
		Amount:   10,
		Category: "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "date is required", errorMessage(t, resp))
	mockSvc.AssertNotCalled(t, "CreateExpense")
}

func TestHTTP_CreateExpense_InvalidDate(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, NewCreateExpenseHandler(mockSvc)).Post("/v1/expenses", CreateExpenseBody{
		UserID:   "user-1",
		Amount:   10,
		Category: "Food",
		Date:     "10/05/2024",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, errorMessage(t, resp), "invalid date")
	mockSvc.AssertNotCalled(t, "CreateExpense")
}

func TestHTTP_CreateExpense_ValidationFromService(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("CreateExpense", mock.Anything, mock.Anything).
		Return(nil, &service.ValidationError{Message: `invalid category "Snacks"`})

	resp := newTestAPI(t, NewCreateExpenseHandler(mockSvc)).Post("/v1/expenses", CreateExpenseBody{
		UserID:   "user-1",
		Amount:   10,
		Category: "Snacks",
		Date:     "2024-05-10",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, `invalid category "Snacks"`, errorMessage(t, resp))
}

func TestHTTP_CreateExpense_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("CreateExpense", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	resp := newTestAPI(t, NewCreateExpenseHandler(mockSvc)).Post("/v1/expenses", CreateExpenseBody{
		UserID:   "user-1",
		Amount:   10,
		Category: "Food",
		Date:     "2024-05-10",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Internal Server Error", errorMessage(t, resp))
}

func TestHTTP_CreateExpense_MalformedJSON(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, NewCreateExpenseHandler(mockSvc)).Post("/v1/expenses",
		"Content-Type: application/json",
		strings.NewReader(`{"userId":"user-1","amount":`))

	assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
	mockSvc.AssertNotCalled(t, "CreateExpense")
}
