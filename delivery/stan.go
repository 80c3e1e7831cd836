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

	stan "github.com/nats-io/stan.go"
)

// STANConn represents a NATS Streaming connection, such as stan.Conn.
type STANConn interface {
	Publish(subject string, data []byte) error
}

// STANPublisher represents a publisher that publishes deliveries to the NATS
// Streaming subject named by the subscriber's target.
type STANPublisher struct {
	conn STANConn
}

// NewSTANPublisher constructs a NATS Streaming publisher for the provided
// connection.
func NewSTANPublisher(conn STANConn) *STANPublisher {
	return &STANPublisher{conn: conn}
}

// Publish synchronously publishes the provided delivery.
func (p *STANPublisher) Publish(ctx context.Context, d Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.conn.Publish(d.Subscriber.Target, d.Body)
}

var _ STANConn = (stan.Conn)(nil)
