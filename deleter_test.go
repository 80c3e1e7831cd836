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

package voucher_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/freerware/voucher"
	"github.com/freerware/voucher/internal/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

type DeleterTestSuite struct {
	suite.Suite

	// system under test.
	sut *voucher.Deleter

	// mocks.
	db    *sql.DB
	_db   sqlmock.Sqlmock
	scope tally.TestScope

	// metrics scope names.
	deleteScopeName          string
	deleteSuccessScopeName   string
	rollbackScopeName        string
	rollbackSuccessScopeName string
	rollbackFailureScopeName string
	retryAttemptScopeName    string

	// suite state.
	retryCount   int
	deletedCount int
}

func TestDeleterTestSuite(t *testing.T) {
	suite.Run(t, new(DeleterTestSuite))
}

func (s *DeleterTestSuite) scopeName(name string) string {
	return fmt.Sprintf("test.bulk_delete.%s+record_type=VoucherCode", name)
}

func (s *DeleterTestSuite) SetupTest() {
	// initialize metric names.
	s.deleteScopeName = s.scopeName("delete")
	s.deleteSuccessScopeName = s.scopeName("delete.success")
	s.rollbackScopeName = s.scopeName("rollback")
	s.rollbackSuccessScopeName = s.scopeName("rollback.success")
	s.rollbackFailureScopeName = s.scopeName("rollback.failure")
	s.retryAttemptScopeName = s.scopeName("retry.attempt")

	var err error
	s.db, s._db, err = sqlmock.New()
	s.Require().NoError(err)

	// construct SUT.
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	l, _ := c.Build()
	s.scope = tally.NewTestScope("test", map[string]string{})
	s.retryCount = 2
	s.deletedCount = -1
	s.sut, err = voucher.NewDeleter(s.db,
		voucher.WithZapLogger(l),
		voucher.WithTallyMetricScope(s.scope),
		voucher.RetryAttempts(s.retryCount),
		voucher.RetryDelay(time.Millisecond),
		voucher.AfterDeletesActions(func(ctx voucher.ActionContext) {
			s.deletedCount = ctx.DeletedCount
		}),
	)
	s.Require().NoError(err)
}

func (s *DeleterTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *DeleterTestSuite) codeRows() *sqlmock.Rows {
	return sqlmock.NewRows(codeColumns).
		AddRow(1, "SUMMER-1", 10, "Summer").
		AddRow(2, "SUMMER-2", 10, "Summer").
		AddRow(3, "WINTER-1", 20, "Winter")
}

func (s *DeleterTestSuite) TestNewDeleter_NoDB() {
	// action.
	sut, err := voucher.NewDeleter(nil)

	// assert.
	s.Nil(sut)
	s.ErrorIs(err, voucher.ErrNoDB)
}

func (s *DeleterTestSuite) TestDelete() {
	tests := []struct {
		name         string
		keys         []voucher.Key
		expectations func()
		result       voucher.DeletionResult
		err          string
		assertions   func()
	}{
		{
			name:         "NoKeys",
			keys:         []voucher.Key{},
			expectations: func() {},
			assertions: func() {
				s.Empty(s.scope.Snapshot().Timers())
				s.Equal(-1, s.deletedCount)
			},
		},
		{
			name: "Success",
			keys: []voucher.Key{1, 2, 3},
			expectations: func() {
				s._db.ExpectBegin()
				s._db.ExpectQuery(selectCodesPattern).WillReturnRows(s.codeRows())
				s._db.ExpectExec(deleteCodesPattern).WillReturnResult(sqlmock.NewResult(0, 3))
				s._db.ExpectCommit()
			},
			result: voucher.DeletionResult{
				Count: 3,
				Snapshots: []voucher.Snapshot{
					{ID: 1, Code: "SUMMER-1", Voucher: voucher.Voucher{ID: 10, Name: "Summer"}},
					{ID: 2, Code: "SUMMER-2", Voucher: voucher.Voucher{ID: 10, Name: "Summer"}},
					{ID: 3, Code: "WINTER-1", Voucher: voucher.Voucher{ID: 20, Name: "Winter"}},
				},
			},
			assertions: func() {
				s.Contains(s.scope.Snapshot().Counters(), s.deleteSuccessScopeName)
				s.Contains(s.scope.Snapshot().Timers(), s.deleteScopeName)
				s.NotContains(s.scope.Snapshot().Timers(), s.rollbackScopeName)
				s.Equal(3, s.deletedCount)
			},
		},
		{
			name: "Success_MissingKeysIgnored",
			keys: []voucher.Key{1, 99},
			expectations: func() {
				s._db.ExpectBegin()
				s._db.ExpectQuery(selectCodesPattern).WillReturnRows(
					sqlmock.NewRows(codeColumns).AddRow(1, "SUMMER-1", 10, "Summer"))
				s._db.ExpectExec(deleteCodesPattern).WillReturnResult(sqlmock.NewResult(0, 1))
				s._db.ExpectCommit()
			},
			result: voucher.DeletionResult{
				Count: 1,
				Snapshots: []voucher.Snapshot{
					{ID: 1, Code: "SUMMER-1", Voucher: voucher.Voucher{ID: 10, Name: "Summer"}},
				},
			},
			assertions: func() {
				s.Equal(1, s.deletedCount)
			},
		},
		{
			name: "NoMatchingCodes",
			keys: []voucher.Key{98, 99},
			expectations: func() {
				s._db.ExpectBegin()
				s._db.ExpectQuery(selectCodesPattern).WillReturnRows(sqlmock.NewRows(codeColumns))
				s._db.ExpectCommit()
			},
			result: voucher.DeletionResult{},
			assertions: func() {
				s.Contains(s.scope.Snapshot().Counters(), s.deleteSuccessScopeName)
				s.Equal(0, s.deletedCount)
			},
		},
		{
			name: "TransactionBeginError",
			keys: []voucher.Key{1},
			expectations: func() {
				for i := 0; i < s.retryCount; i++ {
					s._db.ExpectBegin().WillReturnError(errors.New("whoa"))
				}
			},
			err: "voucher: bulk delete transaction failed; whoa",
			assertions: func() {
				s.Contains(s.scope.Snapshot().Counters(), s.rollbackSuccessScopeName)
				s.Contains(s.scope.Snapshot().Counters(), s.retryAttemptScopeName)
				s.NotContains(s.scope.Snapshot().Counters(), s.deleteSuccessScopeName)
			},
		},
		{
			name: "QueryError",
			keys: []voucher.Key{1},
			expectations: func() {
				for i := 0; i < s.retryCount; i++ {
					s._db.ExpectBegin()
					s._db.ExpectQuery(selectCodesPattern).WillReturnError(errors.New("whoa"))
					s._db.ExpectRollback()
				}
			},
			err: "voucher: bulk delete transaction failed; whoa",
			assertions: func() {
				s.Contains(s.scope.Snapshot().Counters(), s.rollbackSuccessScopeName)
				s.Contains(s.scope.Snapshot().Timers(), s.rollbackScopeName)
				s.Equal(-1, s.deletedCount)
			},
		},
		{
			name: "DeleteError",
			keys: []voucher.Key{1, 2, 3},
			expectations: func() {
				for i := 0; i < s.retryCount; i++ {
					s._db.ExpectBegin()
					s._db.ExpectQuery(selectCodesPattern).WillReturnRows(s.codeRows())
					s._db.ExpectExec(deleteCodesPattern).WillReturnError(errors.New("whoa"))
					s._db.ExpectRollback()
				}
			},
			err: "voucher: bulk delete transaction failed; whoa",
			assertions: func() {
				s.Contains(s.scope.Snapshot().Counters(), s.rollbackSuccessScopeName)
				s.Equal(-1, s.deletedCount)
			},
		},
		{
			name: "DeleteAndRollbackError",
			keys: []voucher.Key{1, 2, 3},
			expectations: func() {
				for i := 0; i < s.retryCount; i++ {
					s._db.ExpectBegin()
					s._db.ExpectQuery(selectCodesPattern).WillReturnRows(s.codeRows())
					s._db.ExpectExec(deleteCodesPattern).WillReturnError(errors.New("ouch"))
					s._db.ExpectRollback().WillReturnError(errors.New("whoa"))
				}
			},
			err: "voucher: bulk delete transaction failed; ouch; whoa",
			assertions: func() {
				s.Contains(s.scope.Snapshot().Counters(), s.rollbackFailureScopeName)
				s.NotContains(s.scope.Snapshot().Counters(), s.rollbackSuccessScopeName)
			},
		},
		{
			name: "CommitError_NotRetried",
			keys: []voucher.Key{1, 2, 3},
			expectations: func() {
				s._db.ExpectBegin()
				s._db.ExpectQuery(selectCodesPattern).WillReturnRows(s.codeRows())
				s._db.ExpectExec(deleteCodesPattern).WillReturnResult(sqlmock.NewResult(0, 3))
				s._db.ExpectCommit().WillReturnError(errors.New("whoa"))
			},
			err: "voucher: bulk delete transaction failed; whoa",
			assertions: func() {
				s.Contains(s.scope.Snapshot().Counters(), s.rollbackSuccessScopeName)
				s.NotContains(s.scope.Snapshot().Counters(), s.retryAttemptScopeName)
				s.NotContains(s.scope.Snapshot().Counters(), s.deleteSuccessScopeName)
				s.Equal(-1, s.deletedCount)
			},
		},
		{
			name: "Success_RetrySucceeds",
			keys: []voucher.Key{1, 2, 3},
			expectations: func() {
				s._db.ExpectBegin()
				s._db.ExpectQuery(selectCodesPattern).WillReturnRows(s.codeRows())
				s._db.ExpectExec(deleteCodesPattern).WillReturnError(errors.New("whoa"))
				s._db.ExpectRollback()
				s._db.ExpectBegin()
				s._db.ExpectQuery(selectCodesPattern).WillReturnRows(s.codeRows())
				s._db.ExpectExec(deleteCodesPattern).WillReturnResult(sqlmock.NewResult(0, 3))
				s._db.ExpectCommit()
			},
			result: voucher.DeletionResult{
				Count: 3,
				Snapshots: []voucher.Snapshot{
					{ID: 1, Code: "SUMMER-1", Voucher: voucher.Voucher{ID: 10, Name: "Summer"}},
					{ID: 2, Code: "SUMMER-2", Voucher: voucher.Voucher{ID: 10, Name: "Summer"}},
					{ID: 3, Code: "WINTER-1", Voucher: voucher.Voucher{ID: 20, Name: "Winter"}},
				},
			},
			assertions: func() {
				s.Contains(s.scope.Snapshot().Counters(), s.retryAttemptScopeName)
				s.Contains(s.scope.Snapshot().Counters(), s.rollbackSuccessScopeName)
				s.Contains(s.scope.Snapshot().Counters(), s.deleteSuccessScopeName)
				s.Equal(3, s.deletedCount)
			},
		},
	}
	for _, test := range tests {
		s.Run(test.name, func() {
			// setup.
			s.TearDownTest()
			s.SetupTest()

			// arrange.
			test.expectations()

			// action.
			result, err := s.sut.Delete(context.Background(), test.keys)

			// assert.
			if test.err != "" {
				s.Require().EqualError(err, test.err)
				s.ErrorIs(err, voucher.ErrTransactionFailed)
				s.Zero(result.Count)
				s.Empty(result.Snapshots)
			} else {
				s.Require().NoError(err)
				s.Equal(test.result, result)
			}
			s.Require().NoError(s._db.ExpectationsWereMet())
			test.assertions()
		})
	}
}

func (s *DeleterTestSuite) TestDelete_PanicRollsBack() {
	// arrange.
	mc := gomock.NewController(s.T())
	store := mock.NewCodeStore(mc)
	sut, err := voucher.NewDeleter(s.db,
		voucher.WithStore(store),
		voucher.WithTallyMetricScope(s.scope),
		voucher.RetryAttempts(1),
	)
	s.Require().NoError(err)
	ctx := context.Background()
	s._db.ExpectBegin()
	s._db.ExpectRollback()
	store.EXPECT().
		FindByKeys(ctx, gomock.Any(), voucher.Key(1)).
		DoAndReturn(func(context.Context, voucher.StoreContext, ...voucher.Key) ([]*voucher.Code, error) {
			panic("whoa")
		})

	// action + assert.
	s.Require().Panics(func() { sut.Delete(ctx, []voucher.Key{1}) })
	s.Require().NoError(s._db.ExpectationsWereMet())
	s.Contains(s.scope.Snapshot().Counters(), s.rollbackSuccessScopeName)
}

func (s *DeleterTestSuite) TestDelete_SnapshotsOutliveStoreMutation() {
	// arrange.
	mc := gomock.NewController(s.T())
	store := mock.NewCodeStore(mc)
	sut, err := voucher.NewDeleter(s.db, voucher.WithStore(store), voucher.RetryAttempts(1))
	s.Require().NoError(err)
	ctx := context.Background()
	codes := []*voucher.Code{
		{ID: 1, Code: "SUMMER-1", VoucherID: 10, Voucher: &voucher.Voucher{ID: 10, Name: "Summer"}},
	}
	s._db.ExpectBegin()
	s._db.ExpectCommit()
	store.EXPECT().FindByKeys(ctx, gomock.Any(), voucher.Key(1)).Return(codes, nil)
	store.EXPECT().
		DeleteByKeys(ctx, gomock.Any(), voucher.Key(1)).
		DoAndReturn(func(context.Context, voucher.StoreContext, ...voucher.Key) (int64, error) {
			// stores may clear the identity of deleted records.
			for _, c := range codes {
				c.ID = 0
				c.Voucher = nil
			}
			return 1, nil
		})

	// action.
	result, err := sut.Delete(ctx, []voucher.Key{1})

	// assert.
	s.Require().NoError(err)
	s.Require().NoError(s._db.ExpectationsWereMet())
	s.Equal([]voucher.Snapshot{
		{ID: 1, Code: "SUMMER-1", Voucher: voucher.Voucher{ID: 10, Name: "Summer"}},
	}, result.Snapshots)
}
