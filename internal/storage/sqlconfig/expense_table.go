package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/metrics"
)

const expensesTable = "expenses"

var _ IExpenseTable = (*ExpensesTable)(nil)

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

func NewExpensesTable(db *sql.DB) *ExpensesTable {
	return &ExpensesTable{exec: bob.NewDB(db)}
}

// Insert writes a new expense and returns the stored row.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (_ *Expense, err error) {
	defer metrics.ObserveStore(expensesTable, "insert")(&err)

	q := psql.Insert(
		im.Into(expensesTable, "user_id", "expense_id", "amount", "category", "expense_date", "note", "created_at"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.ExpenseID),
			psql.Arg(create.Amount),
			psql.Arg(create.Category),
			psql.Arg(create.Date),
			psql.Arg(create.Note),
			psql.Arg(create.CreatedAt),
		),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
	if err != nil {
		return nil, errors.Wrap(err, "expenses.insert")
	}
	return row, nil
}

// ListByUser returns the user's expenses, newest date first.
func (t *ExpensesTable) ListByUser(ctx context.Context, userID string, filter *ExpenseFilter) (_ []*Expense, err error) {
	defer metrics.ObserveStore(expensesTable, "list")(&err)

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("*"),
		sm.From(expensesTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if filter != nil {
		if !filter.Dates.From.IsZero() {
			queryMods = append(queryMods, sm.Where(psql.Quote("expense_date").GTE(psql.Arg(filter.Dates.From))))
		}
		if !filter.Dates.To.IsZero() {
			queryMods = append(queryMods, sm.Where(psql.Quote("expense_date").LT(psql.Arg(filter.Dates.To))))
		}
		if filter.Category != "" {
			queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(filter.Category))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("expense_date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("expense_id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Expense]())
	if err != nil {
		return nil, errors.Wrap(err, "expenses.list")
	}
	return rows, nil
}

// Update sets only the supplied columns and returns the row as stored
// afterwards. ErrNotFound is returned when the user has no such expense.
func (t *ExpensesTable) Update(ctx context.Context, userID, expenseID string, update *ExpenseUpdate) (_ *Expense, err error) {
	defer metrics.ObserveStore(expensesTable, "update")(&err)

	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(expensesTable)}
	if update.Amount != nil {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(*update.Amount))
	}
	if update.Category != nil {
		queryMods = append(queryMods, um.SetCol("category").ToArg(*update.Category))
	}
	if update.Date != nil {
		queryMods = append(queryMods, um.SetCol("expense_date").ToArg(*update.Date))
	}
	if update.Note != nil {
		queryMods = append(queryMods, um.SetCol("note").ToArg(*update.Note))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("expense_id").EQ(psql.Arg(expenseID))),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "expenses.update")
	}
	return row, nil
}

// Delete removes the expense if it exists. Deleting a missing row is not an error.
func (t *ExpensesTable) Delete(ctx context.Context, userID, expenseID string) (err error) {
	defer metrics.ObserveStore(expensesTable, "delete")(&err)

	q := psql.Delete(
		dm.From(expensesTable),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("expense_id").EQ(psql.Arg(expenseID))),
	)
	if _, err = bob.Exec(ctx, t.exec, q); err != nil {
		return errors.Wrap(err, "expenses.delete")
	}
	return nil
}
