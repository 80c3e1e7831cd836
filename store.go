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
)

// StoreContext represents the executional context for a code store.
type StoreContext struct {
	// Tx is the transaction that every statement must be issued on.
	Tx *sql.Tx
}

// CodeStore represents a loader and deleter of voucher codes.
type CodeStore interface {

	// FindByKeys loads the voucher codes with the provided keys, along with
	// their owning vouchers. Keys without a matching voucher code are
	// ignored.
	FindByKeys(ctx context.Context, sCtx StoreContext, keys ...Key) ([]*Code, error)

	// DeleteByKeys removes the voucher codes with the provided keys and
	// reports how many were removed.
	DeleteByKeys(ctx context.Context, sCtx StoreContext, keys ...Key) (int64, error)
}
