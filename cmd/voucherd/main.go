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
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freerware/voucher"
	"github.com/freerware/voucher/delivery"
	"github.com/freerware/voucher/internal/httpapi"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	stan "github.com/nats-io/stan.go"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func newLogger(c Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level
	return zc.Build()
}

// newPublisher builds the configured transport. The returned function
// releases the transport's resources.
func newPublisher(c Config) (delivery.Publisher, func() error, error) {
	switch c.Delivery.Transport {
	case transportKafka:
		w := delivery.NewKafkaWriter(c.Delivery.Kafka.Brokers...)
		return delivery.NewKafkaPublisher(w), w.Close, nil
	case transportSTAN:
		conn, err := stan.Connect(
			c.Delivery.STAN.ClusterID,
			c.Delivery.STAN.ClientID,
			stan.NatsURL(c.Delivery.STAN.URL),
		)
		if err != nil {
			return nil, nil, err
		}
		return delivery.NewSTANPublisher(conn), conn.Close, nil
	default:
		return delivery.NewMemoryPublisher(), func() error { return nil }, nil
	}
}

func run(logger *zap.Logger, c Config) error {
	scope, closer, err := newScope(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	db, err := sql.Open("pgx", c.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	publisher, closePublisher, err := newPublisher(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Warn("unable to close publisher", zap.Error(err))
		}
	}()
	registry := delivery.NewRegistry(publisher,
		delivery.RegistryLogger(logger),
		delivery.RegistrySubscribers(c.Subscribers...),
	)

	store := voucher.NewSQLStore(
		voucher.SQLStoreCodeTable(c.Database.CodeTable),
		voucher.SQLStoreVoucherTable(c.Database.VoucherTable),
	)
	deleter, err := voucher.NewBulkDeleter(db,
		voucher.WithZapLogger(logger),
		voucher.WithTallyMetricScope(scope),
		voucher.WithTracer(otel.Tracer("github.com/freerware/voucher")),
		voucher.WithRecordType(c.Voucher.RecordType),
		voucher.WithStore(store),
		voucher.RetryAttempts(c.Voucher.RetryAttempts),
		voucher.RetryDelay(c.Voucher.RetryDelay),
	)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              c.HTTP.Address,
		Handler:           httpapi.NewServer(deleter, registry, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("address", c.HTTP.Address))
		errs <- server.ListenAndServe()
	}()

	select {
	case err = <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func main() {
	path := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	c, err := LoadConfig(*path, os.LookupEnv)
	if err != nil {
		panic(err)
	}
	logger, err := newLogger(c)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(logger, c); err != nil {
		logger.Fatal("voucherd exited", zap.Error(err))
	}
}
