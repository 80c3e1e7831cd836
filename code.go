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

import "strconv"

// Key represents the primary key of a voucher code.
type Key int64

// String provides the string representation of the key.
func (k Key) String() string {
	return strconv.FormatInt(int64(k), 10)
}

// Voucher represents the owner of zero or more voucher codes.
type Voucher struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Code represents a voucher code as loaded from the data store.
type Code struct {
	ID        Key
	Code      string
	VoucherID int64
	Voucher   *Voucher
}

// Snapshot represents an immutable copy of a voucher code's identity,
// captured before the voucher code is deleted.
type Snapshot struct {
	ID      Key     `json:"id"`
	Code    string  `json:"code"`
	Voucher Voucher `json:"voucher"`
}

// SnapshotOf captures the identity of the provided voucher code.
func SnapshotOf(c *Code) Snapshot {
	s := Snapshot{ID: c.ID, Code: c.Code, Voucher: Voucher{ID: c.VoucherID}}
	if c.Voucher != nil {
		s.Voucher = *c.Voucher
	}
	return s
}
