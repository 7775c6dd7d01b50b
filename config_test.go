package wallkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.InMemory())
	assert.Equal(t, uint64(100), cfg.SequenceBandwidth)
	assert.Equal(t, 4, cfg.DeliveryPoolSize)
	assert.Equal(t, 3, cfg.DeliveryAttempts)
	assert.Equal(t, 10*time.Millisecond, cfg.DeliveryRetryDelay)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithDirectory("  /tmp/wallkit/../wallkit/db/ "),
		WithSequenceBandwidth(10),
		WithDeliveryPoolSize(2),
		WithDeliveryRetry(5, time.Second),
	)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/wallkit/db", cfg.Directory)
	assert.False(t, cfg.InMemory())
	assert.Equal(t, uint64(10), cfg.SequenceBandwidth)
	assert.Equal(t, 2, cfg.DeliveryPoolSize)
	assert.Equal(t, 5, cfg.DeliveryAttempts)
	assert.Equal(t, time.Second, cfg.DeliveryRetryDelay)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ConfigOption
		wantErr string
	}{
		{"defaults", nil, ""},
		{"blank directory is in-memory", []ConfigOption{WithDirectory("   ")}, ""},
		{"zero bandwidth", []ConfigOption{WithSequenceBandwidth(0)}, "SequenceBandwidth"},
		{"zero pool", []ConfigOption{WithDeliveryPoolSize(0)}, "DeliveryPoolSize"},
		{"negative pool", []ConfigOption{WithDeliveryPoolSize(-3)}, "DeliveryPoolSize"},
		{"zero attempts", []ConfigOption{WithDeliveryRetry(0, time.Millisecond)}, "DeliveryAttempts"},
		{"negative delay", []ConfigOption{WithDeliveryRetry(2, -time.Second)}, "DeliveryRetryDelay"},
		{"single attempt without delay", []ConfigOption{WithDeliveryRetry(1, 0)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
