package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

func TestParseRequest_BearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		expect        func(t *testing.T, token string, err error)
	}{
		{
			name:          "success",
			authorization: "Bearer abc.def.ghi",
			expect: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "abc.def.ghi", token)
			},
		},
		{
			name:          "lowercase_scheme",
			authorization: "bearer abc",
			expect: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "abc", token)
			},
		},
		{
			name:          "other_scheme",
			authorization: "Basic abc",
			expect: func(t *testing.T, _ string, err error) {
				assert.ErrorIs(t, err, pkghttp.ErrParsingError)
			},
		},
		{
			name:          "empty_credentials",
			authorization: "Bearer   ",
			expect: func(t *testing.T, _ string, err error) {
				assert.ErrorIs(t, err, pkghttp.ErrParsingError)
			},
		},
		{
			name: "no_header",
			expect: func(t *testing.T, _ string, err error) {
				assert.ErrorIs(t, err, pkghttp.ErrParsingError)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.authorization != "" {
				r.Header.Set("Authorization", tc.authorization)
			}

			token, err := pkghttp.ParseRequest(r, pkghttp.BearerToken(), nil)
			tc.expect(t, token, err)
		})
	}
}

func TestParseRequest_ChainsErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"token":"abc"}`))
	r.AddCookie(&http.Cookie{Name: "JWT_TOKEN", Value: "session"})

	credential, err := pkghttp.ParseRequest(r, pkghttp.CookieValue[string]("JWT_TOKEN"), nil)
	assert.NoError(t, err)
	assert.Equal(t, "session", credential)

	_, err = pkghttp.ParseRequest(r, pkghttp.Header[int]("X-Missing"), err)
	assert.ErrorIs(t, err, pkghttp.ErrParsingError)

	_, err = pkghttp.ParseRequest(r, pkghttp.JSONBody[map[string]string](), err)
	assert.ErrorIs(t, err, pkghttp.ErrParsingError, "previous error is returned without reading the body")
}
