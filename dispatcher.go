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
	"fmt"

	"github.com/uber-go/tally/v4"
)

// Dispatcher emits the events describing a committed bulk delete.
type Dispatcher struct {
	logger  Logger
	scope   tally.Scope
	actions actions
}

// NewDispatcher constructs a dispatcher with the provided options.
func NewDispatcher(opts ...Option) *Dispatcher {
	o := newOptions(opts)
	return &Dispatcher{
		logger:  o.Logger,
		scope:   o.Scope,
		actions: o.Actions,
	}
}

// Dispatch submits one voucher updated event per distinct voucher and one
// voucher code deleted event per snapshot to the provided registry. It must
// only be called once the deletion is committed. Submission failures are
// logged and never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, registry EventRegistry, snapshots []Snapshot) {
	if registry == nil || len(snapshots) == 0 {
		return
	}

	aCtx := ActionContext{Logger: d.logger, Scope: d.scope, DeletedCount: len(snapshots)}
	d.actions.execute(ActionTypeBeforeDispatch, aCtx)

	//setup timer.
	stop := d.scope.Timer(dispatchTimer).Start().Stop
	defer stop()

	// one event per voucher, carrying the last of its deleted codes.
	var vouchers []Voucher
	codes := make(map[int64]string)
	for _, s := range snapshots {
		if _, ok := codes[s.Voucher.ID]; !ok {
			vouchers = append(vouchers, s.Voucher)
		}
		codes[s.Voucher.ID] = s.Code
	}

	if updateSubscribers, ok := d.subscribers(registry, EventTypeVoucherUpdated); ok {
		for _, v := range vouchers {
			d.submit(ctx, registry, Event{
				Type:    EventTypeVoucherUpdated,
				Payload: VoucherUpdatedPayload{Voucher: v, Code: codes[v.ID]},
			}, updateSubscribers)
			aCtx.EventCount++
		}
	}

	if deleteSubscribers, ok := d.subscribers(registry, EventTypeVoucherCodeDeleted); ok {
		for _, s := range snapshots {
			d.submit(ctx, registry, Event{
				Type:    EventTypeVoucherCodeDeleted,
				Payload: VoucherCodeDeletedPayload{VoucherCode: s},
			}, deleteSubscribers)
			aCtx.EventCount++
		}
	}

	d.actions.execute(ActionTypeAfterDispatch, aCtx)
}

// subscribers resolves the subscribers of the provided event type. When the
// registry panics, events of that type are skipped.
func (d *Dispatcher) subscribers(
	registry EventRegistry, t EventType) (subscribers []Subscriber, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.scope.Counter(dispatchFailure).Inc(1)
			d.logger.Error("panic: unable to resolve subscribers",
				"eventType", t.String(),
				"panic", fmt.Sprintf("%v", r))
		}
	}()

	return registry.SubscribersFor(t), true
}

func (d *Dispatcher) submit(
	ctx context.Context, registry EventRegistry, e Event, subscribers []Subscriber) {
	defer func() {
		if r := recover(); r != nil {
			d.scope.Counter(dispatchFailure).Inc(1)
			d.logger.Error("panic: unable to submit event",
				"eventType", e.Type.String(),
				"panic", fmt.Sprintf("%v", r))
		}
	}()

	if err := registry.Submit(ctx, e, subscribers); err != nil {
		d.scope.Counter(dispatchFailure).Inc(1)
		d.logger.Error("unable to submit event",
			"eventType", e.Type.String(),
			"subscriberCount", len(subscribers),
			"error", err)
		return
	}
	d.scope.Counter(dispatchSuccess).Inc(1)
}
