// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package httpd

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func basicHeader(creds string) string {
	return "GET /x HTTP/1.1\r\nAuthorization: Basic " +
		base64.StdEncoding.EncodeToString([]byte(creds)) + "\r\n\r\n"
}

func TestAuthenticate(t *testing.T) {
	database := map[string]string{"alice": "secret", "bob": "hunter:2"}

	tests := []struct {
		name     string
		raw      string
		wantUser string
		wantPass string
		wantOK   bool
	}{
		{"matching credentials", basicHeader("alice:secret"), "alice", "secret", true},
		{"wrong password", basicHeader("alice:nope"), "alice", "nope", false},
		{"unknown user", basicHeader("mallory:secret"), "", "", false},
		{"password containing colon", basicHeader("bob:hunter:2"), "bob", "hunter:2", true},
		{"no header", "GET /x HTTP/1.1\r\n\r\n", "", "", false},
		{"garbage base64", "GET /x HTTP/1.1\r\nAuthorization: Basic !!!\r\n\r\n", "", "", false},
		{"missing separator", basicHeader("aliceonly"), "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, pass, ok := authenticate(tt.raw, database)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantUser, user)
			assert.Equal(t, tt.wantPass, pass)
		})
	}
}
