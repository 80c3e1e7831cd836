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
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/freerware/voucher/internal/adapters"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const (
	// DefaultRecordType is the type tag voucher code identifiers must carry.
	DefaultRecordType = "VoucherCode"

	tracerName = "github.com/freerware/voucher"
)

// Options represents the configuration options for the bulk delete
// components.
type Options struct {
	Logger                       Logger
	Scope                        tally.Scope
	Tracer                       trace.Tracer
	Actions                      map[ActionType][]Action
	DisableDefaultLoggingActions bool
	RetryAttempts                int
	RetryDelay                   time.Duration
	RetryMaximumJitter           time.Duration
	RetryType                    RetryDelayType
	RecordType                   string
	Decoder                      IdentifierDecoder
	Store                        CodeStore
}

// Option applies an option to the provided configuration.
type Option func(*Options)

func newOptions(opts []Option) Options {
	// set defaults.
	o := Options{
		Logger:             adapters.NewNopLogger(),
		Scope:              tally.NoopScope,
		Tracer:             noop.NewTracerProvider().Tracer(tracerName),
		Actions:            make(map[ActionType][]Action),
		RetryAttempts:      3,
		RetryType:          RetryDelayTypeFixed,
		RetryDelay:         50 * time.Millisecond,
		RetryMaximumJitter: 50 * time.Millisecond,
		RecordType:         DefaultRecordType,
		Decoder:            GlobalIDDecoder{},
	}
	// apply options.
	for _, opt := range opts {
		opt(&o)
	}
	if !o.DisableDefaultLoggingActions {
		DefaultLoggingActions()(&o)
	}
	// prepare metrics scope.
	o.Scope = o.Scope.SubScope("bulk_delete").Tagged(map[string]string{
		"record_type": o.RecordType,
	})
	return o
}

// RetryDelayType represents the type of retry delay to perform.
type RetryDelayType int

func (t RetryDelayType) convert() retry.DelayTypeFunc {
	types := map[RetryDelayType]retry.DelayTypeFunc{
		RetryDelayTypeFixed:   retry.FixedDelay,
		RetryDelayTypeBackOff: retry.BackOffDelay,
		RetryDelayTypeRandom:  retry.RandomDelay,
	}
	if converted, ok := types[t]; ok {
		return converted
	}
	return retry.FixedDelay
}

const (
	// RetryDelayTypeFixed represents a retry type that maintains a constant
	// delay between retry iterations.
	RetryDelayTypeFixed RetryDelayType = iota
	// RetryDelayTypeBackOff represents a retry type that increases delay
	// between retry iterations.
	RetryDelayTypeBackOff
	// RetryDelayTypeRandom represents a retry type that utilizes a random
	// delay between retry iterations.
	RetryDelayTypeRandom
)

var (
	// WithZapLogger specifies the option to provide a Zap logger.
	WithZapLogger = func(l *zap.Logger) Option {
		return WithLogger(adapters.NewZapLogger(l))
	}

	// WithLogrusLogger specifies the option to provide a Logrus logger.
	WithLogrusLogger = func(l *logrus.Logger) Option {
		return WithLogger(adapters.NewLogrusLogger(l))
	}

	// WithLogger specifies the option to provide a custom logger.
	WithLogger = func(l Logger) Option {
		return func(o *Options) {
			o.Logger = l
		}
	}

	// WithTallyMetricScope specifies the option to provide a tally metric scope.
	WithTallyMetricScope = func(s tally.Scope) Option {
		return func(o *Options) {
			o.Scope = s
		}
	}

	// WithTracer specifies the option to provide an OpenTelemetry tracer.
	WithTracer = func(t trace.Tracer) Option {
		return func(o *Options) {
			o.Tracer = t
		}
	}

	// WithRecordType specifies the type tag that identifiers must carry in
	// order to be considered valid.
	WithRecordType = func(recordType string) Option {
		return func(o *Options) {
			o.RecordType = recordType
		}
	}

	// WithDecoder specifies the decoder used to resolve identifiers.
	WithDecoder = func(d IdentifierDecoder) Option {
		return func(o *Options) {
			o.Decoder = d
		}
	}

	// WithStore specifies the code store used to load and delete voucher codes.
	WithStore = func(s CodeStore) Option {
		return func(o *Options) {
			o.Store = s
		}
	}

	// setActions appends the provided actions as the provided action type.
	setActions = func(t ActionType, a ...Action) Option {
		return func(o *Options) {
			if o.Actions == nil {
				o.Actions = make(map[ActionType][]Action)
			}
			o.Actions[t] = append(o.Actions[t], a...)
		}
	}

	// BeforeDeletesActions specifies the option to provide actions to execute
	// before voucher codes are deleted in the data store.
	BeforeDeletesActions = func(a ...Action) Option {
		return setActions(ActionTypeBeforeDeletes, a...)
	}

	// AfterDeletesActions specifies the option to provide actions to execute
	// after the deletion of voucher codes is committed.
	AfterDeletesActions = func(a ...Action) Option {
		return setActions(ActionTypeAfterDeletes, a...)
	}

	// BeforeRollbackActions specifies the option to provide actions to execute
	// before a rollback is performed.
	BeforeRollbackActions = func(a ...Action) Option {
		return setActions(ActionTypeBeforeRollback, a...)
	}

	// AfterRollbackActions specifies the option to provide actions to execute
	// after a rollback is performed.
	AfterRollbackActions = func(a ...Action) Option {
		return setActions(ActionTypeAfterRollback, a...)
	}

	// BeforeDispatchActions specifies the option to provide actions to execute
	// before events are submitted.
	BeforeDispatchActions = func(a ...Action) Option {
		return setActions(ActionTypeBeforeDispatch, a...)
	}

	// AfterDispatchActions specifies the option to provide actions to execute
	// after events are submitted.
	AfterDispatchActions = func(a ...Action) Option {
		return setActions(ActionTypeAfterDispatch, a...)
	}

	// DefaultLoggingActions specifies all of the default logging actions.
	DefaultLoggingActions = func() Option {
		beforeDeletesLogAction := func(ctx ActionContext) {
			ctx.Logger.Debug("attempting to delete voucher codes", "keyCount", ctx.KeyCount)
		}
		afterDeletesLogAction := func(ctx ActionContext) {
			ctx.Logger.Info("successfully deleted voucher codes",
				"keyCount", ctx.KeyCount,
				"deleteCount", ctx.DeletedCount)
		}
		beforeRollbackLogAction := func(ctx ActionContext) {
			ctx.Logger.Debug("attempting to roll back bulk delete")
		}
		afterRollbackLogAction := func(ctx ActionContext) {
			ctx.Logger.Info("successfully rolled back bulk delete")
		}
		beforeDispatchLogAction := func(ctx ActionContext) {
			ctx.Logger.Debug("attempting to dispatch events", "deleteCount", ctx.DeletedCount)
		}
		afterDispatchLogAction := func(ctx ActionContext) {
			ctx.Logger.Debug("successfully dispatched events", "eventCount", ctx.EventCount)
		}
		return func(o *Options) {
			subOpts := []Option{
				setActions(ActionTypeBeforeDeletes, beforeDeletesLogAction),
				setActions(ActionTypeAfterDeletes, afterDeletesLogAction),
				setActions(ActionTypeBeforeRollback, beforeRollbackLogAction),
				setActions(ActionTypeAfterRollback, afterRollbackLogAction),
				setActions(ActionTypeBeforeDispatch, beforeDispatchLogAction),
				setActions(ActionTypeAfterDispatch, afterDispatchLogAction),
			}
			for _, opt := range subOpts {
				opt(o)
			}
		}
	}

	// DisableDefaultLoggingActions disables the default logging actions.
	DisableDefaultLoggingActions = func() Option {
		return func(o *Options) {
			o.DisableDefaultLoggingActions = true
		}
	}

	// RetryAttempts defines the number of attempts to perform for the
	// deletion transaction. Values below one are treated as one.
	RetryAttempts = func(attempts int) Option {
		if attempts < 1 {
			attempts = 1
		}
		return func(o *Options) {
			o.RetryAttempts = attempts
		}
	}

	// RetryDelay defines the delay to utilize during retries.
	RetryDelay = func(delay time.Duration) Option {
		return func(o *Options) {
			o.RetryDelay = delay
		}
	}

	// RetryMaximumJitter defines the maximum jitter to utilize during
	// retries that utilize random delay times.
	RetryMaximumJitter = func(jitter time.Duration) Option {
		return func(o *Options) {
			o.RetryMaximumJitter = jitter
		}
	}

	// RetryType defines the type of retry to perform.
	RetryType = func(retryType RetryDelayType) Option {
		return func(o *Options) {
			o.RetryType = retryType
		}
	}
)
