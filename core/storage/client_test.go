package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"ics-diff/core/storage"
	"ics-diff/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "calendars", "team.ics", mock.AnythingOfType("minio.GetObjectOptions")).
			Return(io.NopCloser(strings.NewReader("BEGIN:VCALENDAR")), nil)

		data, err := storage.ReadObject(ctx, m, "calendars", "team.ics")
		require.NoError(t, err)
		assert.Equal(t, "BEGIN:VCALENDAR", string(data))
		m.AssertExpectations(t)
	})

	t.Run("GetError", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "calendars", "missing.ics", minio.GetObjectOptions{}).
			Return(nil, errors.New("no such key"))

		_, err := storage.ReadObject(ctx, m, "calendars", "missing.ics")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "calendars/missing.ics")
		assert.Contains(t, err.Error(), "no such key")
	})
}
