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
	"strconv"
)

// Validator resolves a batch of identifiers into voucher code keys.
type Validator struct {
	decoder    IdentifierDecoder
	recordType string
	logger     Logger
}

// NewValidator constructs a validator with the provided options.
func NewValidator(opts ...Option) *Validator {
	o := newOptions(opts)
	return &Validator{
		decoder:    o.Decoder,
		recordType: o.RecordType,
		logger:     o.Logger,
	}
}

// Validate resolves the provided identifiers into a set of keys, in the
// order they were first seen. When any identifier fails to resolve, no keys
// are returned and the validation error lists every offending identifier.
func (v *Validator) Validate(ids []string) ([]Key, *ValidationError) {
	var invalid []string
	keys := make([]Key, 0, len(ids))
	seen := make(map[Key]struct{}, len(ids))
	for _, id := range ids {
		key, ok := v.resolve(id)
		if !ok {
			invalid = append(invalid, id)
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	if len(invalid) > 0 {
		v.logger.Warn("invalid identifiers",
			"recordType", v.recordType,
			"invalidCount", len(invalid))
		return nil, invalidIdentifiers(v.recordType, invalid)
	}
	return keys, nil
}

func (v *Validator) resolve(id string) (Key, bool) {
	typeTag, pk, err := v.decoder.Decode(id)
	if err != nil || typeTag != v.recordType {
		return 0, false
	}
	key, err := strconv.ParseInt(pk, 10, 64)
	if err != nil {
		return 0, false
	}
	return Key(key), true
}
