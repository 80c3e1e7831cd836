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
	"database/sql"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/uber-go/tally/v4"
	"go.uber.org/multierr"
)

// Metric scope name definitions.
const (
	deleteSuccess     = "delete.success"
	deleteTimer       = "delete"
	rollbackSuccess   = "rollback.success"
	rollbackFailure   = "rollback.failure"
	rollbackTimer     = "rollback"
	retryAttempt      = "retry.attempt"
	validationFailure = "validation.failure"
	dispatchSuccess   = "dispatch.success"
	dispatchFailure   = "dispatch.failure"
	dispatchTimer     = "dispatch"
)

// DeletionResult represents the outcome of a committed bulk delete.
type DeletionResult struct {
	// Count is the number of voucher codes that existed and were deleted.
	Count int
	// Snapshots holds the identity of every deleted voucher code, in the
	// order they were loaded.
	Snapshots []Snapshot
}

// Deleter deletes voucher codes within a single database transaction.
type Deleter struct {
	db           *sql.DB
	store        CodeStore
	logger       Logger
	scope        tally.Scope
	actions      actions
	retryOptions []retry.Option
}

// NewDeleter constructs a deleter for the provided database. Voucher codes
// are loaded and deleted through the configured code store, which defaults
// to a SQL store.
func NewDeleter(db *sql.DB, opts ...Option) (*Deleter, error) {
	if db == nil {
		return nil, ErrNoDB
	}
	o := newOptions(opts)
	if o.Store == nil {
		o.Store = NewSQLStore()
	}
	d := &Deleter{
		db:      db,
		store:   o.Store,
		logger:  o.Logger,
		scope:   o.Scope,
		actions: o.Actions,
	}
	d.retryOptions = []retry.Option{
		retry.Attempts(uint(o.RetryAttempts)),
		retry.Delay(o.RetryDelay),
		retry.MaxJitter(o.RetryMaximumJitter),
		retry.DelayType(o.RetryType.convert()),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			d.logger.Warn(
				"attempted retry",
				"attempt", int(attempt+1),
				"error", err,
			)
			d.scope.Counter(retryAttempt).Inc(1)
		}),
	}
	return d, nil
}

func (d *Deleter) actionContext(keyCount, deletedCount int) ActionContext {
	return ActionContext{
		Logger:       d.logger,
		Scope:        d.scope,
		KeyCount:     keyCount,
		DeletedCount: deletedCount,
	}
}

func (d *Deleter) rollback(tx *sql.Tx) (err error) {

	//setup timer.
	stop := d.scope.Timer(rollbackTimer).Start().Stop

	//capture metrics.
	defer func() {
		stop()
		if err != nil {
			d.scope.Counter(rollbackFailure).Inc(1)
		} else {
			d.scope.Counter(rollbackSuccess).Inc(1)
		}
	}()
	err = tx.Rollback()
	return
}

// transact executes fn within a transaction. The transaction is committed
// when fn succeeds, and rolled back when fn fails or panics. Commit failures
// are never retried.
func (d *Deleter) transact(
	ctx context.Context, aCtx ActionContext, fn func(StoreContext) error) (err error) {

	//start transaction.
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		// consider a failure to begin transaction as successful rollback,
		// since none of the desired changes are applied.
		d.scope.Counter(rollbackSuccess).Inc(1)
		d.logger.Error(err.Error())
		return
	}

	//rollback if there is a panic.
	defer func() {
		if r := recover(); r != nil {
			d.actions.execute(ActionTypeBeforeRollback, aCtx)
			if errRb := d.rollback(tx); errRb == nil {
				d.actions.execute(ActionTypeAfterRollback, aCtx)
			}
			d.logger.Error("panic: unable to delete voucher codes", "panic", fmt.Sprintf("%v", r))
			panic(r)
		}
	}()

	if err = fn(StoreContext{Tx: tx}); err != nil {
		d.actions.execute(ActionTypeBeforeRollback, aCtx)
		var errRb error
		if errRb = d.rollback(tx); errRb == nil {
			d.actions.execute(ActionTypeAfterRollback, aCtx)
		}
		err = multierr.Combine(err, errRb)
		d.logger.Error(err.Error())
		return
	}

	if err = tx.Commit(); err != nil {
		// consider error during transaction commit as successful rollback,
		// since the rollback is implicitly done.
		d.actions.execute(ActionTypeAfterRollback, aCtx)
		d.scope.Counter(rollbackSuccess).Inc(1)
		d.logger.Error(err.Error())
		// the server may have applied the commit regardless, so another
		// attempt could observe the codes as already gone.
		err = retry.Unrecoverable(err)
		return
	}
	return
}

func (d *Deleter) delete(ctx context.Context, keys []Key) (result DeletionResult, err error) {
	aCtx := d.actionContext(len(keys), 0)
	err = d.transact(ctx, aCtx, func(sCtx StoreContext) error {
		codes, err := d.store.FindByKeys(ctx, sCtx, keys...)
		if err != nil {
			return err
		}
		if len(codes) == 0 {
			return nil
		}

		// identity must be captured before the codes are deleted.
		snapshots := make([]Snapshot, len(codes))
		for i, c := range codes {
			snapshots[i] = SnapshotOf(c)
		}

		d.actions.execute(ActionTypeBeforeDeletes, aCtx)
		if _, err = d.store.DeleteByKeys(ctx, sCtx, keys...); err != nil {
			return err
		}
		result = DeletionResult{Count: len(snapshots), Snapshots: snapshots}
		return nil
	})
	if err != nil {
		result = DeletionResult{}
	}
	return
}

// Delete removes the voucher codes with the provided keys in a single
// transaction. Keys without a matching voucher code are ignored. When an
// error is returned no voucher codes have been removed.
func (d *Deleter) Delete(ctx context.Context, keys []Key) (result DeletionResult, err error) {
	if len(keys) == 0 {
		return
	}

	//setup timer.
	stop := d.scope.Timer(deleteTimer).Start().Stop
	defer stop()

	opts := append([]retry.Option{retry.Context(ctx)}, d.retryOptions...)
	err = retry.Do(func() (errAttempt error) {
		result, errAttempt = d.delete(ctx, keys)
		return
	}, opts...)
	if err != nil {
		err = multierr.Combine(ErrTransactionFailed, err)
		return
	}

	d.scope.Counter(deleteSuccess).Inc(1)
	d.actions.execute(ActionTypeAfterDeletes, d.actionContext(len(keys), result.Count))
	return
}
