/* Copyright 2026 Freerware
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package voucher

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"go.uber.org/multierr"
)

const (
	defaultCodeTable    = "discount_vouchercode"
	defaultVoucherTable = "discount_voucher"
	dialectPostgres     = "postgres"
	aliasCode           = "c"
	aliasVoucher        = "v"
	colID               = "id"
	colCode             = "code"
	colVoucherID        = "voucher_id"
	colName             = "name"
)

// ErrBuildingQueryFailed represents the error that is returned when a SQL
// statement cannot be built.
var ErrBuildingQueryFailed = errors.New("voucher: building query failed")

// SQLStore represents a code store backed by a SQL database.
type SQLStore struct {
	dialect      goqu.DialectWrapper
	codeTable    string
	voucherTable string
}

// SQLStoreOption applies an option to the provided SQL store.
type SQLStoreOption func(*SQLStore)

var (
	// SQLStoreCodeTable specifies the table voucher codes are stored in.
	SQLStoreCodeTable = func(table string) SQLStoreOption {
		return func(s *SQLStore) {
			s.codeTable = table
		}
	}

	// SQLStoreVoucherTable specifies the table vouchers are stored in.
	SQLStoreVoucherTable = func(table string) SQLStoreOption {
		return func(s *SQLStore) {
			s.voucherTable = table
		}
	}

	// SQLStoreDialect specifies the goqu dialect statements are built with.
	SQLStoreDialect = func(dialect string) SQLStoreOption {
		return func(s *SQLStore) {
			s.dialect = goqu.Dialect(dialect)
		}
	}
)

// NewSQLStore constructs a SQL code store with the provided options.
func NewSQLStore(opts ...SQLStoreOption) *SQLStore {
	s := &SQLStore{
		dialect:      goqu.Dialect(dialectPostgres),
		codeTable:    defaultCodeTable,
		voucherTable: defaultVoucherTable,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func keyValues(keys []Key) []interface{} {
	values := make([]interface{}, len(keys))
	for i, k := range keys {
		values[i] = int64(k)
	}
	return values
}

func (s *SQLStore) col(alias, column string) goqu.Expression {
	return goqu.T(alias).Col(column)
}

// FindByKeys loads the voucher codes with the provided keys, joining their
// owning vouchers in the same statement. The loaded codes stay locked until
// the transaction ends, so concurrent deletes of the same codes serialize.
func (s *SQLStore) FindByKeys(
	ctx context.Context, sCtx StoreContext, keys ...Key) (codes []*Code, err error) {
	if len(keys) == 0 {
		return
	}

	ds := s.dialect.
		From(goqu.T(s.codeTable).As(aliasCode)).
		InnerJoin(
			goqu.T(s.voucherTable).As(aliasVoucher),
			goqu.On(goqu.T(aliasCode).Col(colVoucherID).Eq(goqu.T(aliasVoucher).Col(colID))),
		).
		Select(
			s.col(aliasCode, colID),
			s.col(aliasCode, colCode),
			s.col(aliasCode, colVoucherID),
			s.col(aliasVoucher, colName),
		).
		Where(goqu.T(aliasCode).Col(colID).In(keyValues(keys)...)).
		Order(goqu.T(aliasCode).Col(colID).Asc()).
		ForUpdate(exp.Wait, goqu.T(aliasCode)).
		Prepared(true)
	query, args, err := ds.ToSQL()
	if err != nil {
		err = multierr.Combine(ErrBuildingQueryFailed, err)
		return
	}

	rows, err := sCtx.Tx.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}
	defer func() {
		err = multierr.Combine(err, rows.Close())
	}()

	for rows.Next() {
		c := &Code{Voucher: &Voucher{}}
		if err = rows.Scan(&c.ID, &c.Code, &c.VoucherID, &c.Voucher.Name); err != nil {
			return nil, err
		}
		c.Voucher.ID = c.VoucherID
		codes = append(codes, c)
	}
	err = rows.Err()
	return
}

// DeleteByKeys removes the voucher codes with the provided keys with a
// single statement.
func (s *SQLStore) DeleteByKeys(
	ctx context.Context, sCtx StoreContext, keys ...Key) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	query, args, err := s.dialect.
		Delete(s.codeTable).
		Where(goqu.C(colID).In(keyValues(keys)...)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, multierr.Combine(ErrBuildingQueryFailed, err)
	}

	result, err := sCtx.Tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
