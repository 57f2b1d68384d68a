/*
Copyright The AssetKit Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package getter provides the transfer layer used to fetch remote assets.
package getter

import (
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// options are generic parameters to be provided to the getter during
// instantiation. Getters may or may not ignore these parameters as they are
// passed in.
type options struct {
	url                   string
	acceptHeader          string
	username              string
	password              string
	passCredentialsAll    bool
	userAgent             string
	insecureSkipVerifyTLS bool
	timeout               time.Duration
	transport             *http.Transport
}

// Option allows specifying various settings configurable by the user for
// overriding the defaults used when performing Get operations with the
// Getter.
type Option func(*options)

// WithURL informs the getter the server name that will be used when fetching
// objects. Credentials are only sent to this host unless
// WithPassCredentialsAll is set.
func WithURL(url string) Option {
	return func(opts *options) {
		opts.url = url
	}
}

// WithAcceptHeader sets the request's Accept header.
func WithAcceptHeader(header string) Option {
	return func(opts *options) {
		opts.acceptHeader = header
	}
}

// WithBasicAuth sets the request's Authorization header to use the provided
// credentials.
func WithBasicAuth(username, password string) Option {
	return func(opts *options) {
		opts.username = username
		opts.password = password
	}
}

// WithPassCredentialsAll sends credentials to hosts other than the one named
// by WithURL.
func WithPassCredentialsAll(pass bool) Option {
	return func(opts *options) {
		opts.passCredentialsAll = pass
	}
}

// WithUserAgent sets the request's User-Agent header to use the provided
// agent name.
func WithUserAgent(userAgent string) Option {
	return func(opts *options) {
		opts.userAgent = userAgent
	}
}

// WithInsecureSkipVerifyTLS determines if a TLS Certificate will be checked.
func WithInsecureSkipVerifyTLS(insecureSkipVerifyTLS bool) Option {
	return func(opts *options) {
		opts.insecureSkipVerifyTLS = insecureSkipVerifyTLS
	}
}

// WithTimeout sets the timeout for requests.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

// WithTransport sets the http.Transport to allow overwriting the HTTPGetter
// default.
func WithTransport(transport *http.Transport) Option {
	return func(opts *options) {
		opts.transport = transport
	}
}

// Response is the result of a successful Get: the remote content as a
// stream, plus a total-size hint. Size is -1 when the remote did not report
// a length. Callers own Body and must close it.
type Response struct {
	Body io.ReadCloser
	Size int64
}

// Getter is an interface to support GET to the specified URL.
//
// A non-success transport or status outcome is reported as an error, never
// as a partial Response.
type Getter interface {
	Get(url string, options ...Option) (*Response, error)
}

// Constructor is the function for every getter which creates a specific
// instance according to the configuration.
type Constructor func(options ...Option) (Getter, error)

// Provider represents any getter and the schemes that it supports.
//
// For example, an HTTP provider may provide one getter that handles both
// 'http' and 'https' schemes.
type Provider struct {
	Schemes []string
	New     Constructor
}

// Provides returns true if the given scheme is supported by this Provider.
func (p Provider) Provides(scheme string) bool {
	for _, s := range p.Schemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// Providers is a collection of Provider objects.
type Providers []Provider

// ByScheme returns a Getter that handles the given scheme.
//
// If no provider handles this scheme, an error is returned.
func (p Providers) ByScheme(scheme string) (Getter, error) {
	for _, pp := range p {
		if pp.Provides(scheme) {
			return pp.New()
		}
	}
	return nil, errors.Errorf("scheme %q not supported", scheme)
}

// DefaultHTTPTimeout is the default request timeout in seconds. It
// references curl's default connection timeout.
const DefaultHTTPTimeout = 120

var defaultOptions = []Option{WithTimeout(time.Second * DefaultHTTPTimeout)}

// Getters returns the set of built-in providers.
func Getters(extraOpts ...Option) Providers {
	return Providers{
		Provider{
			Schemes: []string{"http", "https"},
			New: func(options ...Option) (Getter, error) {
				options = append(options, defaultOptions...)
				options = append(options, extraOpts...)
				return NewHTTPGetter(options...)
			},
		},
	}
}
