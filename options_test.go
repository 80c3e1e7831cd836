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

package voucher_test

import (
	"testing"
	"time"

	"github.com/freerware/voucher"
	"github.com/freerware/voucher/internal/adapters"
	"github.com/freerware/voucher/internal/mock"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally/v4"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

type OptionsTestSuite struct {
	suite.Suite

	// system under test.
	sut *voucher.Options
}

func TestOptionsTestSuite(t *testing.T) {
	suite.Run(t, new(OptionsTestSuite))
}

func (s *OptionsTestSuite) SetupTest() {
	s.sut = &voucher.Options{}
}

func (s *OptionsTestSuite) TestWithZapLogger() {
	// action.
	voucher.WithZapLogger(zap.NewNop())(s.sut)

	// assert.
	s.IsType(&adapters.ZapLogger{}, s.sut.Logger)
}

func (s *OptionsTestSuite) TestWithLogrusLogger() {
	// action.
	voucher.WithLogrusLogger(logrus.New())(s.sut)

	// assert.
	s.IsType(&adapters.LogrusLogger{}, s.sut.Logger)
}

func (s *OptionsTestSuite) TestWithTallyMetricScope() {
	// arrange.
	ts := tally.NewTestScope("test", map[string]string{})

	// action.
	voucher.WithTallyMetricScope(ts)(s.sut)

	// assert.
	s.Equal(ts, s.sut.Scope)
}

func (s *OptionsTestSuite) TestWithTracer() {
	// arrange.
	t := noop.NewTracerProvider().Tracer("test")

	// action.
	voucher.WithTracer(t)(s.sut)

	// assert.
	s.Equal(t, s.sut.Tracer)
}

func (s *OptionsTestSuite) TestWithRecordType() {
	// action.
	voucher.WithRecordType("Code")(s.sut)

	// assert.
	s.Equal("Code", s.sut.RecordType)
}

func (s *OptionsTestSuite) TestWithDecoder() {
	// action.
	voucher.WithDecoder(voucher.GlobalIDDecoder{})(s.sut)

	// assert.
	s.Equal(voucher.GlobalIDDecoder{}, s.sut.Decoder)
}

func (s *OptionsTestSuite) TestWithStore() {
	// arrange.
	store := mock.NewCodeStore(gomock.NewController(s.T()))

	// action.
	voucher.WithStore(store)(s.sut)

	// assert.
	s.Equal(store, s.sut.Store)
}

func (s *OptionsTestSuite) TestActions() {
	// arrange.
	a := func(voucher.ActionContext) {}
	opts := map[voucher.ActionType]func(...voucher.Action) voucher.Option{
		voucher.ActionTypeBeforeDeletes:  voucher.BeforeDeletesActions,
		voucher.ActionTypeAfterDeletes:   voucher.AfterDeletesActions,
		voucher.ActionTypeBeforeRollback: voucher.BeforeRollbackActions,
		voucher.ActionTypeAfterRollback:  voucher.AfterRollbackActions,
		voucher.ActionTypeBeforeDispatch: voucher.BeforeDispatchActions,
		voucher.ActionTypeAfterDispatch:  voucher.AfterDispatchActions,
	}

	for actionType, opt := range opts {
		// action.
		opt(a, a)(s.sut)

		// assert.
		s.Len(s.sut.Actions[actionType], 2, actionType)
	}
}

func (s *OptionsTestSuite) TestDefaultLoggingActions() {
	// action.
	voucher.DefaultLoggingActions()(s.sut)

	// assert.
	s.Len(s.sut.Actions, 6)
	for actionType, actions := range s.sut.Actions {
		s.Len(actions, 1, actionType)
	}
}

func (s *OptionsTestSuite) TestDisableDefaultLoggingActions() {
	// action.
	voucher.DisableDefaultLoggingActions()(s.sut)

	// assert.
	s.True(s.sut.DisableDefaultLoggingActions)
}

func (s *OptionsTestSuite) TestRetryAttempts() {
	// action.
	voucher.RetryAttempts(5)(s.sut)

	// assert.
	s.Equal(5, s.sut.RetryAttempts)
}

func (s *OptionsTestSuite) TestRetryAttempts_AtLeastOne() {
	// action.
	voucher.RetryAttempts(-2)(s.sut)

	// assert.
	s.Equal(1, s.sut.RetryAttempts)
}

func (s *OptionsTestSuite) TestRetryDelay() {
	// action.
	voucher.RetryDelay(time.Second)(s.sut)

	// assert.
	s.Equal(time.Second, s.sut.RetryDelay)
}

func (s *OptionsTestSuite) TestRetryMaximumJitter() {
	// action.
	voucher.RetryMaximumJitter(time.Second)(s.sut)

	// assert.
	s.Equal(time.Second, s.sut.RetryMaximumJitter)
}

func (s *OptionsTestSuite) TestRetryType() {
	// action.
	voucher.RetryType(voucher.RetryDelayTypeBackOff)(s.sut)

	// assert.
	s.Equal(voucher.RetryDelayTypeBackOff, s.sut.RetryType)
}
