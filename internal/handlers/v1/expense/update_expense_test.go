package expense

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

func TestParseUpdateExpenseInput_OnlySuppliedFields(t *testing.T) {
	amount := 20.257
	date := "2024-05-11"

	patch, err := parseUpdateExpenseInput(&UpdateExpenseInput{
		ExpenseID: "exp-1",
		Body:      UpdateExpenseBody{UserID: "user-1", Amount: &amount, Date: &date},
	})

	assert.NoError(t, err)
	if assert.NotNil(t, patch.Amount) {
		assert.True(t, patch.Amount.Equal(decimal.NewFromFloat(20.257)))
	}
	if assert.NotNil(t, patch.Date) {
		assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), *patch.Date)
	}
	assert.Nil(t, patch.Category)
	assert.Nil(t, patch.Note)
}

func TestHTTP_UpdateExpense_Success(t *testing.T) {
	updated := sampleExpense()
	updated.Category = "Transport"

	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, "user-1", "exp-1", mock.MatchedBy(func(p service.ExpensePatch) bool {
		return p.Category != nil && *p.Category == "Transport" && p.Amount == nil && p.Date == nil && p.Note == nil
	})).Return(updated, nil)

	category := "Transport"
	resp := newTestAPI(t, NewUpdateExpenseHandler(mockSvc)).Put("/v1/expenses/exp-1", UpdateExpenseBody{
		UserID:   "user-1",
		Category: &category,
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body UpdateExpenseResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Expense updated successfully", body.Message)
	assert.Equal(t, "Transport", body.Expense.Category, dump(body))
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_EmptyNoteIsAField(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, "user-1", "exp-1", mock.MatchedBy(func(p service.ExpensePatch) bool {
		return p.Note != nil && *p.Note == ""
	})).Return(sampleExpense(), nil)

	resp := newTestAPI(t, NewUpdateExpenseHandler(mockSvc)).Put("/v1/expenses/exp-1", map[string]any{
		"userId": "user-1",
		"note":   "",
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_MissingUserID(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, NewUpdateExpenseHandler(mockSvc)).Put("/v1/expenses/exp-1", UpdateExpenseBody{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "userId and expenseId are required", errorMessage(t, resp))
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}

func TestHTTP_UpdateExpense_NoFields(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, "user-1", "exp-1", service.ExpensePatch{}).
		Return(nil, service.ErrNoFieldsToUpdate)

	resp := newTestAPI(t, NewUpdateExpenseHandler(mockSvc)).Put("/v1/expenses/exp-1", UpdateExpenseBody{UserID: "user-1"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "No fields provided to update", errorMessage(t, resp))
}

func TestHTTP_UpdateExpense_NotFound(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, "user-1", "missing", mock.Anything).Return(nil, service.ErrNotFound)

	note := "x"
	resp := newTestAPI(t, NewUpdateExpenseHandler(mockSvc)).Put("/v1/expenses/missing", UpdateExpenseBody{
		UserID: "user-1",
		Note:   &note,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Expense not found", errorMessage(t, resp))
}

func TestHTTP_UpdateExpense_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, "user-1", "exp-1", mock.Anything).Return(nil, errors.New("deadlock"))

	note := "x"
	resp := newTestAPI(t, NewUpdateExpenseHandler(mockSvc)).Put("/v1/expenses/exp-1", UpdateExpenseBody{
		UserID: "user-1",
		Note:   &note,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Failed to update expense", errorMessage(t, resp))
}
