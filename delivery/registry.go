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

// Package delivery provides the subscription registry bulk deletes submit
// their events to, along with the transports events are delivered over.
package delivery

import (
	"context"
	"sync"
	"time"

	"github.com/freerware/voucher"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Delivery represents an encoded event addressed to a single subscriber.
type Delivery struct {
	ID         string
	EventID    string
	EventType  voucher.EventType
	Subscriber voucher.Subscriber
	Body       []byte
}

// Publisher represents a transport that delivers events to subscribers.
type Publisher interface {

	// Publish sends the provided delivery to its subscriber.
	Publish(context.Context, Delivery) error
}

// Envelope represents the encoded form of an event.
type Envelope struct {
	ID         string            `json:"id"`
	Type       voucher.EventType `json:"type"`
	OccurredAt time.Time         `json:"occurred_at"`
	Payload    any               `json:"payload"`
}

// Registry represents the set of subscribers and the publisher events are
// delivered through.
type Registry struct {
	mutex       sync.RWMutex
	subscribers []voucher.Subscriber
	publisher   Publisher
	logger      *zap.Logger
	now         func() time.Time
}

// RegistryOption applies an option to the provided registry.
type RegistryOption func(*Registry)

var (
	// RegistryLogger specifies the option to provide a logger for the registry.
	RegistryLogger = func(l *zap.Logger) RegistryOption {
		return func(r *Registry) {
			r.logger = l
		}
	}

	// RegistryClock specifies the option to provide the clock used to stamp
	// events.
	RegistryClock = func(now func() time.Time) RegistryOption {
		return func(r *Registry) {
			r.now = now
		}
	}

	// RegistrySubscribers specifies the option to provide the initial
	// subscribers of the registry.
	RegistrySubscribers = func(s ...voucher.Subscriber) RegistryOption {
		return func(r *Registry) {
			r.subscribers = append(r.subscribers, s...)
		}
	}
)

// NewRegistry constructs a registry that delivers events through the
// provided publisher.
func NewRegistry(publisher Publisher, opts ...RegistryOption) *Registry {
	r := &Registry{
		publisher: publisher,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Subscribe registers the provided subscriber.
func (r *Registry) Subscribe(s voucher.Subscriber) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.subscribers = append(r.subscribers, s)
}

// SubscribersFor provides the subscribers of the provided event type.
func (r *Registry) SubscribersFor(t voucher.EventType) []voucher.Subscriber {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var subscribers []voucher.Subscriber
	for _, s := range r.subscribers {
		if s.Subscribes(t) {
			subscribers = append(subscribers, s)
		}
	}
	return subscribers
}

// Submit encodes the provided event and publishes it once for each of the
// provided subscribers. Every subscriber is attempted; the failures are
// combined into the returned error.
func (r *Registry) Submit(ctx context.Context, e voucher.Event, subscribers []voucher.Subscriber) (err error) {
	if len(subscribers) == 0 {
		return
	}

	eventID, err := uuid.NewV7()
	if err != nil {
		return
	}
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(Envelope{
		ID:         eventID.String(),
		Type:       e.Type,
		OccurredAt: r.now().UTC(),
		Payload:    e.Payload,
	})
	if err != nil {
		return
	}

	for _, s := range subscribers {
		d := Delivery{
			ID:         uuid.NewString(),
			EventID:    eventID.String(),
			EventType:  e.Type,
			Subscriber: s,
			Body:       body,
		}
		if errPub := r.publisher.Publish(ctx, d); errPub != nil {
			r.logger.Warn("unable to publish event",
				zap.String("eventType", e.Type.String()),
				zap.String("subscriberID", s.ID),
				zap.Error(errPub))
			err = multierr.Append(err, errPub)
			continue
		}
		r.logger.Debug("published event",
			zap.String("eventType", e.Type.String()),
			zap.String("subscriberID", s.ID),
			zap.String("deliveryID", d.ID))
	}
	return
}

var _ voucher.EventRegistry = (*Registry)(nil)
