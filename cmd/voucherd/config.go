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
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/freerware/voucher"
	"gopkg.in/yaml.v3"
)

// Supported delivery transports.
const (
	transportMemory = "memory"
	transportKafka  = "kafka"
	transportSTAN   = "stan"
)

var errNoDSN = errors.New("database dsn must be provided")

// Config represents the configuration of the voucherd service.
type Config struct {
	HTTP struct {
		Address string `yaml:"address"`
	} `yaml:"http"`
	Logging struct {
		Development bool   `yaml:"development"`
		Level       string `yaml:"level"`
	} `yaml:"logging"`
	Database struct {
		DSN          string `yaml:"dsn"`
		CodeTable    string `yaml:"code_table"`
		VoucherTable string `yaml:"voucher_table"`
	} `yaml:"database"`
	Voucher struct {
		RecordType    string        `yaml:"record_type"`
		RetryAttempts int           `yaml:"retry_attempts"`
		RetryDelay    time.Duration `yaml:"retry_delay"`
	} `yaml:"voucher"`
	Metrics struct {
		StatsdAddress string        `yaml:"statsd_address"`
		Prefix        string        `yaml:"prefix"`
		Interval      time.Duration `yaml:"interval"`
	} `yaml:"metrics"`
	Delivery struct {
		Transport string `yaml:"transport"`
		Kafka     struct {
			Brokers []string `yaml:"brokers"`
		} `yaml:"kafka"`
		STAN struct {
			ClusterID string `yaml:"cluster_id"`
			ClientID  string `yaml:"client_id"`
			URL       string `yaml:"url"`
		} `yaml:"stan"`
	} `yaml:"delivery"`
	Subscribers []voucher.Subscriber `yaml:"subscribers"`
}

func defaultConfig() Config {
	var c Config
	c.HTTP.Address = ":8080"
	c.Logging.Level = "info"
	c.Database.CodeTable = "discount_vouchercode"
	c.Database.VoucherTable = "discount_voucher"
	c.Voucher.RecordType = voucher.DefaultRecordType
	c.Voucher.RetryAttempts = 3
	c.Voucher.RetryDelay = 50 * time.Millisecond
	c.Metrics.Prefix = "voucherd"
	c.Metrics.Interval = time.Second
	c.Delivery.Transport = transportMemory
	c.Delivery.STAN.ClusterID = "test-cluster"
	c.Delivery.STAN.ClientID = "voucherd"
	c.Delivery.STAN.URL = "nats://localhost:4222"
	return c
}

// LoadConfig reads the configuration at the provided path, if any, and then
// applies environment overrides.
func LoadConfig(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	c := defaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return c, err
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := c.applyEnv(lookupEnv); err != nil {
		return c, err
	}
	return c, c.validate()
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv("VOUCHERD_HTTP_ADDRESS"); ok {
		c.HTTP.Address = v
	}
	if v, ok := lookupEnv("VOUCHERD_DATABASE_DSN"); ok {
		c.Database.DSN = v
	}
	if v, ok := lookupEnv("VOUCHERD_STATSD_ADDRESS"); ok {
		c.Metrics.StatsdAddress = v
	}
	if v, ok := lookupEnv("VOUCHERD_DELIVERY_TRANSPORT"); ok {
		c.Delivery.Transport = v
	}
	if v, ok := lookupEnv("VOUCHERD_RETRY_ATTEMPTS"); ok {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VOUCHERD_RETRY_ATTEMPTS: %w", err)
		}
		c.Voucher.RetryAttempts = attempts
	}
	return nil
}

func (c *Config) validate() error {
	if c.Database.DSN == "" {
		return errNoDSN
	}
	switch c.Delivery.Transport {
	case transportMemory, transportSTAN:
	case transportKafka:
		if len(c.Delivery.Kafka.Brokers) == 0 {
			return errors.New("kafka transport requires at least one broker")
		}
	default:
		return fmt.Errorf("unsupported delivery transport %q", c.Delivery.Transport)
	}
	return nil
}
