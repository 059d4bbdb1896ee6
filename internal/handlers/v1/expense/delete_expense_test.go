package expense

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHTTP_DeleteExpense_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("DeleteExpense", mock.Anything, "user-1", "exp-1").Return(nil)

	resp := newTestAPI(t, NewDeleteExpenseHandler(mockSvc)).Delete("/v1/expenses/exp-1?userId=user-1")

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body DeleteExpenseResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Expense deleted successfully", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteExpense_MissingUserID(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, NewDeleteExpenseHandler(mockSvc)).Delete("/v1/expenses/exp-1")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "userId and expenseId are required", errorMessage(t, resp))
	mockSvc.AssertNotCalled(t, "DeleteExpense")
}

func TestHTTP_DeleteExpense_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("DeleteExpense", mock.Anything, "user-1", "exp-1").Return(errors.New("broken pipe"))

	resp := newTestAPI(t, NewDeleteExpenseHandler(mockSvc)).Delete("/v1/expenses/exp-1?userId=user-1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Failed to delete expense", errorMessage(t, resp))
}
