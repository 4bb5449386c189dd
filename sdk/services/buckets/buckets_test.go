// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package buckets_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/buckets"
)

// fakeVault satisfies config.VaultHTTP and records the last request so
// tests can assert on what would have gone over the wire.
type fakeVault struct {
	status int
	body   []byte

	calls  int
	method string
	url    string
	sent   []byte
}

func (f *fakeVault) BuildURL(params map[string]string, segments ...string) string {
	base := "https://vault.test/rest"
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		base += "/" + segment
	}
	first := true
	for k, v := range params {
		if v == "" {
			continue
		}
		if first {
			base += "?"
			first = false
		} else {
			base += "&"
		}
		base += k + "=" + v
	}
	return base
}

func (f *fakeVault) Do(_ context.Context, method, url string, _ http.Header, data []byte) ([]byte, int, error) {
	f.calls++
	f.method = method
	f.url = url
	f.sent = data
	return f.body, f.status, nil
}

const notFoundBody = `{"status":404,"message":"not found","name":"NotFoundError"}`

func TestCreate(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(`{"token":"bucket-1","files":[]}`)}
	s := buckets.NewBucketsServiceWithHTTP(fake)

	bucket, err := s.Create(context.Background())
	require.NoError(t, err)
	require.Equal(t, "bucket-1", bucket.Token)
	require.Empty(t, bucket.Files)

	require.Equal(t, http.MethodGet, fake.method)
	require.Equal(t, "https://vault.test/rest/bucket/create", fake.url)
}

func TestGet_TokenTravelsInBody(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(`{
		"token": "bucket-1",
		"files": [{"token":"f1","url":"https://vault.test/f/a/1.bin","views":0}],
		"albums": [{"token":"a1","name":"holiday","bucket":"bucket-1"}]
	}`)}
	s := buckets.NewBucketsServiceWithHTTP(fake)

	bucket, err := s.Get(context.Background(), buckets.GetRequest{Token: "bucket-1"})
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, fake.method)
	require.Equal(t, "https://vault.test/rest/bucket/get", fake.url)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(fake.sent, &payload))
	require.Equal(t, map[string]string{"bucket_token": "bucket-1"}, payload)

	require.Len(t, bucket.Files, 1)
	require.Len(t, bucket.Albums, 1)
	require.Equal(t, "holiday", bucket.Albums[0].Name)
}

func TestGet_EmptyToken(t *testing.T) {
	fake := &fakeVault{}
	s := buckets.NewBucketsServiceWithHTTP(fake)

	_, err := s.Get(context.Background(), buckets.GetRequest{})

	var valErr *api.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Zero(t, fake.calls)
}

func TestDelete(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(`true`)}
	s := buckets.NewBucketsServiceWithHTTP(fake)

	deleted, err := s.Delete(context.Background(), buckets.DeleteRequest{Token: "bucket-1"})
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, http.MethodDelete, fake.method)
	require.Equal(t, "https://vault.test/rest/bucket/bucket-1", fake.url)
}

func TestDelete_EmptyToken(t *testing.T) {
	fake := &fakeVault{}
	s := buckets.NewBucketsServiceWithHTTP(fake)

	_, err := s.Delete(context.Background(), buckets.DeleteRequest{})

	var valErr *api.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Zero(t, fake.calls)
}

func TestBuckets_NotFoundEnvelopeOnEveryOperation(t *testing.T) {
	ops := map[string]func(*buckets.BucketsService) error{
		"create": func(s *buckets.BucketsService) error {
			_, err := s.Create(context.Background())
			return err
		},
		"get": func(s *buckets.BucketsService) error {
			_, err := s.Get(context.Background(), buckets.GetRequest{Token: "tok"})
			return err
		},
		"delete": func(s *buckets.BucketsService) error {
			_, err := s.Delete(context.Background(), buckets.DeleteRequest{Token: "tok"})
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			s := buckets.NewBucketsServiceWithHTTP(&fakeVault{status: 404, body: []byte(notFoundBody)})

			var apiErr *api.APIError
			require.True(t, errors.As(op(s), &apiErr))
			require.Equal(t, 404, apiErr.StatusCode)
			require.Equal(t, "not found", apiErr.Message)
		})
	}
}
