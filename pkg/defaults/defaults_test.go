package defaults

import (
	"strings"
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"PublishTimeout", PublishTimeout, 1 * time.Second, 30 * time.Second},
		{"RunTimeout", RunTimeout, 5 * time.Second, 5 * time.Minute},
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, ServerReadTimeout},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
		{"PublishInterval", PublishInterval, 10 * time.Second, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) exceeds maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestTopNamespaces(t *testing.T) {
	if len(TopNamespaces) == 0 {
		t.Fatal("expected at least one top namespace")
	}
	for _, ns := range TopNamespaces {
		if ns == "" {
			t.Error("top namespace should not be empty")
		}
		if strings.HasSuffix(ns, NamespaceSeparator) {
			t.Errorf("top namespace %q should not end with separator", ns)
		}
	}
}
