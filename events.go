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

import "context"

// EventType represents the type of an event emitted by a bulk delete.
type EventType string

const (
	// EventTypeVoucherUpdated indicates that the codes of a voucher changed.
	EventTypeVoucherUpdated EventType = "voucher_updated"
	// EventTypeVoucherCodeDeleted indicates that a voucher code was deleted.
	EventTypeVoucherCodeDeleted EventType = "voucher_code_deleted"
)

// String provides the string representation of the event type.
func (t EventType) String() string {
	return string(t)
}

// Event represents a notification submitted to subscribers.
type Event struct {
	Type    EventType
	Payload any
}

// VoucherUpdatedPayload represents the payload of a voucher updated event.
type VoucherUpdatedPayload struct {
	Voucher Voucher `json:"voucher"`
	// Code is one of the deleted codes of the voucher.
	Code string `json:"code"`
}

// VoucherCodeDeletedPayload represents the payload of a voucher code
// deleted event.
type VoucherCodeDeletedPayload struct {
	VoucherCode Snapshot `json:"voucher_code"`
}

// Subscriber represents a party registered to receive events.
type Subscriber struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Target string      `yaml:"target"`
	Events []EventType `yaml:"events"`
}

// Subscribes indicates whether the subscriber receives events of the
// provided type.
func (s Subscriber) Subscribes(t EventType) bool {
	for _, e := range s.Events {
		if e == t {
			return true
		}
	}
	return false
}

// EventRegistry represents the registry of subscribers and the submitter of
// events to them.
type EventRegistry interface {

	// SubscribersFor provides the subscribers of the provided event type.
	SubscribersFor(EventType) []Subscriber

	// Submit hands the provided event over for delivery to the provided
	// subscribers.
	Submit(context.Context, Event, []Subscriber) error
}
