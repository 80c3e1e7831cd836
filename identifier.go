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
	"encoding/base64"
	"errors"
	"strings"
)

// ErrMalformedIdentifier represents the error that is returned when an
// identifier cannot be decoded into a type tag and primary key.
var ErrMalformedIdentifier = errors.New("voucher: malformed identifier")

// IdentifierDecoder represents a decoder of opaque identifiers.
type IdentifierDecoder interface {

	// Decode splits the provided identifier into its type tag and
	// primary key.
	Decode(id string) (typeTag, key string, err error)
}

// IdentifierDecoderFunc adapts an ordinary function to an IdentifierDecoder.
type IdentifierDecoderFunc func(id string) (string, string, error)

// Decode calls f(id).
func (f IdentifierDecoderFunc) Decode(id string) (string, string, error) {
	return f(id)
}

// GlobalIDDecoder decodes global identifiers of the form
// base64("<TypeTag>:<key>").
type GlobalIDDecoder struct{}

// Decode splits the provided global identifier into its type tag and
// primary key.
func (GlobalIDDecoder) Decode(id string) (typeTag, key string, err error) {
	raw, err := base64.StdEncoding.DecodeString(id)
	if err != nil {
		// tolerate identifiers that were stripped of their padding.
		if raw, err = base64.RawStdEncoding.DecodeString(id); err != nil {
			return "", "", ErrMalformedIdentifier
		}
	}
	typeTag, key, ok := strings.Cut(string(raw), ":")
	if !ok || typeTag == "" || key == "" {
		return "", "", ErrMalformedIdentifier
	}
	return typeTag, key, nil
}

// EncodeGlobalID produces the global identifier for the provided type tag
// and primary key.
func EncodeGlobalID(typeTag, key string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeTag + ":" + key))
}
