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
	"errors"
	"fmt"
	"strings"
)

var (

	// ErrTransactionFailed represents the error that is returned when the
	// deletion transaction could not be completed. No voucher codes are
	// deleted when this error is returned.
	ErrTransactionFailed = errors.New("voucher: bulk delete transaction failed")

	// ErrNoDB represents the error that occurs when attempting to create a
	// deleter without a database.
	ErrNoDB = errors.New("voucher: must provide a database")
)

// ErrorCode represents the kind of a validation error.
type ErrorCode string

const (
	// ErrorCodeInvalid indicates that one or more identifiers do not resolve
	// to the expected record type.
	ErrorCodeInvalid ErrorCode = "INVALID"
)

// ValidationError represents the aggregated validation failure for a
// single bulk delete request.
type ValidationError struct {
	Path         string    `json:"path"`
	Code         ErrorCode `json:"code"`
	Message      string    `json:"message"`
	VoucherCodes []string  `json:"voucher_codes"`
}

// Error provides the string representation of the validation error.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s [%s]", e.Path, e.Message, strings.Join(e.VoucherCodes, ", "))
}

func invalidIdentifiers(recordType string, ids []string) *ValidationError {
	return &ValidationError{
		Path:         "ids",
		Code:         ErrorCodeInvalid,
		Message:      fmt.Sprintf("Invalid %s ID.", recordType),
		VoucherCodes: ids,
	}
}
