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

package main

import (
	"io"
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/uber-go/tally/v4"
	tstatsd "github.com/uber-go/tally/v4/statsd"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newScope builds the root metrics scope. Metrics are reported to statsd
// when an address is configured and discarded otherwise.
func newScope(c Config) (tally.Scope, io.Closer, error) {
	if c.Metrics.StatsdAddress == "" {
		return tally.NoopScope, nopCloser{}, nil
	}
	statter, err := statsd.NewClientWithConfig(&statsd.ClientConfig{
		Address:       c.Metrics.StatsdAddress,
		Prefix:        c.Metrics.Prefix,
		UseBuffered:   true,
		FlushInterval: 150 * time.Millisecond,
		FlushBytes:    512,
	})
	if err != nil {
		return nil, nil, err
	}
	reporter := tstatsd.NewReporter(statter, tstatsd.Options{
		SampleRate: 1.0,
	})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags:     map[string]string{},
		Reporter: reporter,
	}, c.Metrics.Interval)
	return scope, closer, nil
}
