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
	"github.com/uber-go/tally/v4"
)

// Action represents an operation performed during a particular lifecycle
// event of a bulk delete.
type Action func(ActionContext)

// ActionType represents the type of bulk delete action.
type ActionType int

// The various types of actions that are executed throughout the lifecycle
// of a bulk delete.
const (
	// ActionTypeBeforeDeletes indicates an action type that occurs before
	// voucher codes are deleted in the data store.
	ActionTypeBeforeDeletes ActionType = iota
	// ActionTypeAfterDeletes indicates an action type that occurs after
	// voucher codes are deleted and the deletion is committed.
	ActionTypeAfterDeletes
	// ActionTypeBeforeRollback indicates an action type that occurs before
	// rollback.
	ActionTypeBeforeRollback
	// ActionTypeAfterRollback indicates an action type that occurs after
	// rollback.
	ActionTypeAfterRollback
	// ActionTypeBeforeDispatch indicates an action type that occurs before
	// events are submitted to subscribers.
	ActionTypeBeforeDispatch
	// ActionTypeAfterDispatch indicates an action type that occurs after
	// events are submitted to subscribers.
	ActionTypeAfterDispatch
)

// ActionContext represents the executional context for an action.
type ActionContext struct {
	// Logger is the configured logger.
	Logger Logger
	// Scope is the configured metrics scope.
	Scope tally.Scope
	// KeyCount represents the number of distinct keys requested for deletion.
	KeyCount int
	// DeletedCount represents the number of voucher codes deleted.
	DeletedCount int
	// EventCount represents the number of events submitted.
	EventCount int
}

type actions map[ActionType][]Action

func (a actions) execute(t ActionType, ctx ActionContext) {
	for _, action := range a[t] {
		action(ctx)
	}
}
