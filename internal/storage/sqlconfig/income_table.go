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

const incomesTable = "incomes"

var _ IIncomeTable = (*IncomesTable)(nil)

// IncomesTable provides access to the incomes table.
type IncomesTable struct {
	exec bob.Executor
}

func NewIncomesTable(db *sql.DB) *IncomesTable {
	return &IncomesTable{exec: bob.NewDB(db)}
}

func (t *IncomesTable) Insert(ctx context.Context, create *IncomeCreate) (_ *Income, err error) {
	defer metrics.ObserveStore(incomesTable, "insert")(&err)

	q := psql.Insert(
		im.Into(incomesTable, "user_id", "income_id", "amount", "source", "income_date", "created_at"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.IncomeID),
			psql.Arg(create.Amount),
			psql.Arg(create.Source),
			psql.Arg(create.Date),
			psql.Arg(create.CreatedAt),
		),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Income]())
	if err != nil {
		return nil, errors.Wrap(err, "incomes.insert")
	}
	return row, nil
}

func (t *IncomesTable) ListByUser(ctx context.Context, userID string, filter *IncomeFilter) (_ []*Income, err error) {
	defer metrics.ObserveStore(incomesTable, "list")(&err)

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("*"),
		sm.From(incomesTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if filter != nil {
		if !filter.Dates.From.IsZero() {
			queryMods = append(queryMods, sm.Where(psql.Quote("income_date").GTE(psql.Arg(filter.Dates.From))))
		}
		if !filter.Dates.To.IsZero() {
			queryMods = append(queryMods, sm.Where(psql.Quote("income_date").LT(psql.Arg(filter.Dates.To))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("income_date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("income_id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Income]())
	if err != nil {
		return nil, errors.Wrap(err, "incomes.list")
	}
	return rows, nil
}

func (t *IncomesTable) Update(ctx context.Context, userID, incomeID string, update *IncomeUpdate) (_ *Income, err error) {
	defer metrics.ObserveStore(incomesTable, "update")(&err)

	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(incomesTable)}
	if update.Amount != nil {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(*update.Amount))
	}
	if update.Source != nil {
		queryMods = append(queryMods, um.SetCol("source").ToArg(*update.Source))
	}
	if update.Date != nil {
		queryMods = append(queryMods, um.SetCol("income_date").ToArg(*update.Date))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("income_id").EQ(psql.Arg(incomeID))),
		um.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Income]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "incomes.update")
	}
	return row, nil
}

func (t *IncomesTable) Delete(ctx context.Context, userID, incomeID string) (err error) {
	defer metrics.ObserveStore(incomesTable, "delete")(&err)

	q := psql.Delete(
		dm.From(incomesTable),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("income_id").EQ(psql.Arg(incomeID))),
	)
	if _, err = bob.Exec(ctx, t.exec, q); err != nil {
		return errors.Wrap(err, "incomes.delete")
	}
	return nil
}
