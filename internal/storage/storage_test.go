package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"examdocs/internal/config"
)

func TestBundleKey(t *testing.T) {
	assert.Equal(t, "bundles/abc.zip", BundleKey("abc"))
}

func TestNewMinIO_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"missing endpoint", config.MinIOConfig{AccessKey: "a", SecretKey: "b", Bucket: "c"}, "endpoint is required"},
		{"missing credentials", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "c"}, "credentials are required"},
		{"missing bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(ctx, tt.cfg)
			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
