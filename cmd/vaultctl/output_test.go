// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderShort(t *testing.T) {
	out := renderShort([]byte(`{"token":"abc","views":2,"options":{"protected":true}}`))

	require.Equal(t, "options: {\"protected\":true}\ntoken: abc\nviews: 2\n", out)
}

func TestRenderShortNonObject(t *testing.T) {
	// non-objects come back as-is
	require.Equal(t, "true\n", renderShort([]byte("true")))
}
