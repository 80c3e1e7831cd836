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

	"github.com/uber-go/tally/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Result represents the outcome of a bulk delete.
type Result struct {
	// Count is the number of voucher codes deleted.
	Count int `json:"count"`
	// Errors holds the validation errors that prevented the deletion.
	Errors []ValidationError `json:"errors"`
}

// BulkDeleter deletes batches of voucher codes by their identifiers and
// notifies subscribers of the deletion.
type BulkDeleter struct {
	validator  *Validator
	deleter    *Deleter
	dispatcher *Dispatcher
	scope      tally.Scope
	tracer     trace.Tracer
}

// NewBulkDeleter constructs a bulk deleter for the provided database.
func NewBulkDeleter(db *sql.DB, opts ...Option) (*BulkDeleter, error) {
	deleter, err := NewDeleter(db, opts...)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &BulkDeleter{
		validator:  NewValidator(opts...),
		deleter:    deleter,
		dispatcher: NewDispatcher(opts...),
		scope:      o.Scope,
		tracer:     o.Tracer,
	}, nil
}

// Delete removes the voucher codes with the provided identifiers and, once
// the removal is committed, submits the resulting events to the provided
// registry. A nil registry skips event submission.
//
// Identifiers that do not resolve to voucher codes are reported through
// Result.Errors, in which case nothing is deleted. An error is returned only
// when the deletion transaction fails.
func (b *BulkDeleter) Delete(
	ctx context.Context, registry EventRegistry, ids ...string) (Result, error) {
	ctx, span := b.tracer.Start(ctx, "voucher.BulkDelete",
		trace.WithAttributes(attribute.Int("voucher.id_count", len(ids))))
	defer span.End()

	keys, verr := b.validator.Validate(ids)
	if verr != nil {
		b.scope.Counter(validationFailure).Inc(1)
		span.SetAttributes(attribute.Int("voucher.invalid_count", len(verr.VoucherCodes)))
		return Result{Count: 0, Errors: []ValidationError{*verr}}, nil
	}

	result, err := b.deleter.Delete(ctx, keys)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "bulk delete transaction failed")
		return Result{}, err
	}
	span.SetAttributes(attribute.Int("voucher.deleted_count", result.Count))

	b.dispatcher.Dispatch(ctx, registry, result.Snapshots)
	return Result{Count: result.Count, Errors: []ValidationError{}}, nil
}
