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
	"sync"
)

// MemoryPublisher represents a publisher that keeps deliveries in memory.
type MemoryPublisher struct {
	mutex      sync.Mutex
	deliveries []Delivery
}

// NewMemoryPublisher constructs an empty in-memory publisher.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// Publish records the provided delivery.
func (p *MemoryPublisher) Publish(ctx context.Context, d Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.deliveries = append(p.deliveries, d)
	return nil
}

// Deliveries provides a copy of the recorded deliveries.
func (p *MemoryPublisher) Deliveries() []Delivery {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return append([]Delivery(nil), p.deliveries...)
}
