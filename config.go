// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package wallkit

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// Config holds configuration for a Database.
type Config struct {
	// Directory is where the store keeps its files.
	// Empty means a purely in-memory store whose contents die with the process.
	Directory string

	// SequenceBandwidth is how many ids each id sequence leases at a time.
	// Larger values mean fewer writes to the sequence keys.
	// Default: 100
	SequenceBandwidth uint64

	// DeliveryPoolSize is the number of workers of delivery pipelines
	// created by the Database.
	// Default: 4
	DeliveryPoolSize int

	// DeliveryAttempts is how many times a pipeline tries each send.
	// Default: 3
	DeliveryAttempts int

	// DeliveryRetryDelay is the wait before the first retry of a send.
	// It doubles after every further failure.
	// Default: 10ms
	DeliveryRetryDelay time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDirectory sets the storage directory. An empty directory selects
// in-memory storage.
func WithDirectory(dir string) ConfigOption {
	return func(c *Config) {
		c.Directory = dir
	}
}

// WithSequenceBandwidth sets the id lease size.
func WithSequenceBandwidth(bandwidth uint64) ConfigOption {
	return func(c *Config) {
		c.SequenceBandwidth = bandwidth
	}
}

// WithDeliveryPoolSize sets the delivery worker count.
func WithDeliveryPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.DeliveryPoolSize = size
	}
}

// WithDeliveryRetry sets how often and how patiently sends are retried.
func WithDeliveryRetry(attempts int, delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.DeliveryAttempts = attempts
		c.DeliveryRetryDelay = delay
	}
}

// DefaultConfig returns a Config for an in-memory store.
func DefaultConfig() *Config {
	return &Config{
		Directory:          "",
		SequenceBandwidth:  100,
		DeliveryPoolSize:   4,
		DeliveryAttempts:   3,
		DeliveryRetryDelay: 10 * time.Millisecond,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//   cfg := NewConfig(
//       WithDirectory("/var/lib/wallkit"),
//       WithDeliveryPoolSize(8),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// InMemory reports whether the configuration selects in-memory storage.
func (c *Config) InMemory() bool {
	return c.Directory == ""
}

// Normalize ensures the configuration is in a canonical form.
// Surrounding whitespace is trimmed from Directory and the path is cleaned.
func (c *Config) Normalize() {
	c.Directory = strings.TrimSpace(c.Directory)
	if c.Directory != "" {
		c.Directory = filepath.Clean(c.Directory)
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.SequenceBandwidth < 1 {
		return errors.New("wallkit config: SequenceBandwidth must be at least 1")
	}
	if c.DeliveryPoolSize < 1 {
		return errors.New("wallkit config: DeliveryPoolSize must be at least 1")
	}
	if c.DeliveryAttempts < 1 {
		return errors.New("wallkit config: DeliveryAttempts must be at least 1")
	}
	if c.DeliveryRetryDelay < 0 {
		return errors.New("wallkit config: DeliveryRetryDelay must not be negative")
	}
	return nil
}
