// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package albums_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/albums"
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

const albumBody = `{
	"token": "album-1",
	"bucketToken": "bucket-1",
	"name": "holiday",
	"files": [{"token":"f1","url":"https://vault.test/f/a/1.jpg","views":0}]
}`

func TestCreate(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(albumBody)}
	s := albums.NewAlbumsServiceWithHTTP(fake)

	album, err := s.Create(context.Background(), albums.CreateRequest{
		BucketToken: "bucket-1",
		Name:        "holiday",
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, fake.method)
	require.Equal(t, "https://vault.test/rest/album/bucket-1", fake.url)
	require.JSONEq(t, `{"name":"holiday"}`, string(fake.sent))

	require.Equal(t, "album-1", album.Token)
	require.Equal(t, "bucket-1", album.BucketToken)
	require.Len(t, album.Files, 1)
}

func TestCreate_Validation(t *testing.T) {
	fake := &fakeVault{}
	s := albums.NewAlbumsServiceWithHTTP(fake)

	_, err := s.Create(context.Background(), albums.CreateRequest{Name: "holiday"})
	var valErr *api.ValidationError
	require.True(t, errors.As(err, &valErr))

	_, err = s.Create(context.Background(), albums.CreateRequest{BucketToken: "bucket-1"})
	require.True(t, errors.As(err, &valErr))

	require.Zero(t, fake.calls)
}

func TestGet(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(albumBody)}
	s := albums.NewAlbumsServiceWithHTTP(fake)

	album, err := s.Get(context.Background(), albums.GetRequest{Token: "album-1"})
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, fake.method)
	require.Equal(t, "https://vault.test/rest/album/album-1", fake.url)
	require.Equal(t, "holiday", album.Name)
}

func TestAssociate(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(albumBody)}
	s := albums.NewAlbumsServiceWithHTTP(fake)

	_, err := s.Associate(context.Background(), albums.AssociateRequest{
		AlbumToken: "album-1",
		FileTokens: []string{"f1", "f2"},
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, fake.method)
	require.Equal(t, "https://vault.test/rest/album/album-1/associate", fake.url)

	var payload map[string][]string
	require.NoError(t, json.Unmarshal(fake.sent, &payload))
	require.Equal(t, map[string][]string{"fileTokens": {"f1", "f2"}}, payload)
}

func TestAssociate_EmptyTokenSet(t *testing.T) {
	fake := &fakeVault{}
	s := albums.NewAlbumsServiceWithHTTP(fake)

	_, err := s.Associate(context.Background(), albums.AssociateRequest{AlbumToken: "album-1"})

	var valErr *api.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Zero(t, fake.calls, "empty sets are rejected before any request")
}

func TestDisassociate(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(albumBody)}
	s := albums.NewAlbumsServiceWithHTTP(fake)

	_, err := s.Disassociate(context.Background(), albums.DisassociateRequest{
		AlbumToken: "album-1",
		FileTokens: []string{"f1"},
	})
	require.NoError(t, err)
	require.Equal(t, "https://vault.test/rest/album/album-1/disassociate", fake.url)
	require.JSONEq(t, `{"fileTokens":["f1"]}`, string(fake.sent))
}

func TestDisassociate_EmptyTokenSet(t *testing.T) {
	fake := &fakeVault{}
	s := albums.NewAlbumsServiceWithHTTP(fake)

	_, err := s.Disassociate(context.Background(), albums.DisassociateRequest{AlbumToken: "album-1"})

	var valErr *api.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Zero(t, fake.calls)
}

func TestDelete_FlagAlwaysExplicit(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(`{"success":true,"description":"album deleted"}`)}
	s := albums.NewAlbumsServiceWithHTTP(fake)

	resp, err := s.Delete(context.Background(), albums.DeleteRequest{Token: "album-1"})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "https://vault.test/rest/album/album-1?deleteFiles=false", fake.url)

	_, err = s.Delete(context.Background(), albums.DeleteRequest{Token: "album-1", DeleteFiles: true})
	require.NoError(t, err)
	require.Equal(t, "https://vault.test/rest/album/album-1?deleteFiles=true", fake.url)
}

func TestAlbums_NotFoundEnvelopeOnEveryOperation(t *testing.T) {
	ops := map[string]func(*albums.AlbumsService) error{
		"create": func(s *albums.AlbumsService) error {
			_, err := s.Create(context.Background(), albums.CreateRequest{BucketToken: "b", Name: "n"})
			return err
		},
		"get": func(s *albums.AlbumsService) error {
			_, err := s.Get(context.Background(), albums.GetRequest{Token: "tok"})
			return err
		},
		"associate": func(s *albums.AlbumsService) error {
			_, err := s.Associate(context.Background(), albums.AssociateRequest{AlbumToken: "tok", FileTokens: []string{"f"}})
			return err
		},
		"disassociate": func(s *albums.AlbumsService) error {
			_, err := s.Disassociate(context.Background(), albums.DisassociateRequest{AlbumToken: "tok", FileTokens: []string{"f"}})
			return err
		},
		"delete": func(s *albums.AlbumsService) error {
			_, err := s.Delete(context.Background(), albums.DeleteRequest{Token: "tok"})
			return err
		},
		"share": func(s *albums.AlbumsService) error {
			_, err := s.Share(context.Background(), albums.ShareRequest{Token: "tok"})
			return err
		},
		"revoke": func(s *albums.AlbumsService) error {
			_, err := s.Revoke(context.Background(), albums.RevokeRequest{Token: "tok"})
			return err
		},
		"download": func(s *albums.AlbumsService) error {
			_, err := s.Download(context.Background(), albums.DownloadRequest{Token: "tok"})
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			s := albums.NewAlbumsServiceWithHTTP(&fakeVault{status: 404, body: []byte(notFoundBody)})

			var apiErr *api.APIError
			require.True(t, errors.As(op(s), &apiErr))
			require.Equal(t, 404, apiErr.StatusCode)
			require.Equal(t, "not found", apiErr.Message)
		})
	}
}
