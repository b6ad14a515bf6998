package storage_test

import (
	"testing"

	"dataset-reconciler/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:       "localhost:9000",
			AccessKey:      "minioadmin",
			SecretKey:      "minioadmin",
			UseSSL:         false,
			Bucket:         "snapshots",
			TimeoutSeconds: 5,
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://storage.example.com",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			UseSSL:    true,
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
