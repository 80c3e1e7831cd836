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

package delivery

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Kafka message header names.
const (
	headerEventType    = "event_type"
	headerEventID      = "event_id"
	headerDeliveryID   = "delivery_id"
	headerSubscriberID = "subscriber_id"
)

// MessageWriter represents a writer of Kafka messages, such as *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher represents a publisher that produces one Kafka message per
// delivery, on the topic named by the subscriber's target.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher constructs a Kafka publisher for the provided writer.
func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// NewKafkaWriter constructs a writer for the provided brokers. The topic is
// left unset since every message names its own.
func NewKafkaWriter(brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}
}

// Publish produces the provided delivery. Messages are keyed by event so
// that every delivery of an event lands on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, d Delivery) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: d.Subscriber.Target,
		Key:   []byte(d.EventID),
		Value: d.Body,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(d.EventType)},
			{Key: headerEventID, Value: []byte(d.EventID)},
			{Key: headerDeliveryID, Value: []byte(d.ID)},
			{Key: headerSubscriberID, Value: []byte(d.Subscriber.ID)},
		},
	})
}

var _ MessageWriter = (*kafka.Writer)(nil)
