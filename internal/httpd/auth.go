// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package httpd

import (
	"encoding/base64"
	"strings"
)

const authPrefix = "Authorization: Basic "

// authenticate scans the raw request for a basic-auth header and
// checks the credentials against the database. It reports whether the
// password matched along with the credentials presented.
func authenticate(raw string, database map[string]string) (user, pass string, ok bool) {
	for _, line := range splitLines(raw) {
		if !strings.HasPrefix(line, authPrefix) {
			continue
		}

		encoded := strings.TrimPrefix(line, authPrefix)
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			continue
		}

		user, pass, found := strings.Cut(string(decoded), ":")
		if !found {
			continue
		}
		expected, known := database[user]
		if !known {
			continue
		}
		return user, pass, pass == expected
	}
	return "", "", false
}
