// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/files"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestModify_EmptyToken(t *testing.T) {
	fake := &fakeVault{}
	s := files.NewFilesServiceWithHTTP(fake)

	_, err := s.Modify(context.Background(), files.ModificationRequest{
		Password: strptr("x"),
	})

	var valErr *api.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Zero(t, fake.calls)
}

func TestModify_NoChangesRequested(t *testing.T) {
	fake := &fakeVault{}
	s := files.NewFilesServiceWithHTTP(fake)

	_, err := s.Modify(context.Background(), files.ModificationRequest{Token: "tok"})

	var valErr *api.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Zero(t, fake.calls)
}

func TestModify_PayloadCarriesExactlyTheSetFields(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(`{"token":"tok","url":"u","views":0}`)}
	s := files.NewFilesServiceWithHTTP(fake)

	_, err := s.Modify(context.Background(), files.ModificationRequest{
		Token:        "tok",
		Password:     strptr("new-secret"),
		HideFilename: boolptr(true),
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPatch, fake.method)
	require.Equal(t, "https://vault.test/rest/tok", fake.url, "token travels in the path, never the body")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(fake.sent, &payload))
	require.Len(t, payload, 2, "unset fields must be omitted, not sent as null")
	require.Equal(t, "new-secret", payload["password"])
	require.Equal(t, true, payload["hideFilename"])
}

func TestModify_AllFields(t *testing.T) {
	fake := &fakeVault{status: 200, body: []byte(`{"token":"tok","url":"u","views":0}`)}
	s := files.NewFilesServiceWithHTTP(fake)

	_, err := s.Modify(context.Background(), files.ModificationRequest{
		Token:            "tok",
		Password:         strptr("after"),
		PreviousPassword: strptr("before"),
		CustomExpiry:     &files.Expiry{Amount: 1, Unit: files.Hours},
		HideFilename:     boolptr(false),
	})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(fake.sent, &payload))
	require.Len(t, payload, 4)
	require.Equal(t, "after", payload["password"])
	require.Equal(t, "before", payload["previousPassword"])
	require.Equal(t, "1h", payload["customExpiry"], "expiry serializes as the compact string")
	require.Equal(t, false, payload["hideFilename"], "explicit false is still a change")
}

func TestModify_InvalidExpiry(t *testing.T) {
	fake := &fakeVault{}
	s := files.NewFilesServiceWithHTTP(fake)

	_, err := s.Modify(context.Background(), files.ModificationRequest{
		Token:        "tok",
		CustomExpiry: &files.Expiry{Amount: 3, Unit: "y"},
	})

	var valErr *api.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Zero(t, fake.calls)
}

func TestModify_ServerRejectsPasswordChange(t *testing.T) {
	// The previous/new password pairing is checked by the vault, not
	// locally; its message must come through verbatim.
	fake := &fakeVault{status: 400, body: []byte(
		`{"status":400,"message":"previousPassword is required to change the password","name":"BadRequest"}`)}
	s := files.NewFilesServiceWithHTTP(fake)

	_, err := s.Modify(context.Background(), files.ModificationRequest{
		Token:    "tok",
		Password: strptr("new"),
	})

	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "previousPassword is required to change the password", apiErr.Message)
}
