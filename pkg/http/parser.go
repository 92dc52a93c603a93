package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	gostrings "strings"

	"github.com/klwxsrx/go-session-gate/pkg/strings"
)

const bearerScheme = "Bearer"

type (
	// DataExtractor reads a single typed value from the request, failures wrap ErrParsingError.
	DataExtractor[T any] func(dataProvider) (T, error)

	supportedParsingTypes interface {
		strings.SupportedValueParsingTypes | strings.SupportedPointerParsingTypes
	}

	dataProvider interface {
		Header() http.Header
		Cookies() []*http.Cookie
		Body() io.ReadCloser
	}

	requestDataProvider struct {
		*http.Request
	}
)

// ParseRequest skips extraction when lastErr is set, so several values can be parsed in a row.
func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

func Header[T supportedParsingTypes](key string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		header := p.Header().Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValue[T](header)
	}
}

// BearerToken reads the credentials of an "Authorization: Bearer <token>" header.
func BearerToken() DataExtractor[string] {
	return func(p dataProvider) (string, error) {
		scheme, credentials, ok := gostrings.Cut(p.Header().Get("Authorization"), " ")
		credentials = gostrings.TrimSpace(credentials)
		if !ok || !gostrings.EqualFold(scheme, bearerScheme) || credentials == "" {
			return "", fmt.Errorf("%w: bearer token not found", ErrParsingError)
		}

		return credentials, nil
	}
}

func CookieValue[T supportedParsingTypes](name string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		for _, cookie := range p.Cookies() {
			if cookie.Name == name && cookie.Value != "" {
				return parseTypedValue[T](cookie.Value)
			}
		}

		var result T
		return result, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		err := json.NewDecoder(p.Body()).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) Header() http.Header {
	return p.Request.Header
}

func (p requestDataProvider) Body() io.ReadCloser {
	return p.Request.Body
}

func parseTypedValue[T supportedParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrParsingError, err)
	}

	return v, nil
}
