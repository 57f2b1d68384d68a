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

package getter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGetter(t *testing.T) {
	content := []byte("asset bytes")
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		gotAccept = r.Header.Get("Accept")
		w.Write(content)
	}))
	defer srv.Close()

	g, err := NewHTTPGetter(
		WithUserAgent("assetkit-test"),
		WithAcceptHeader("application/octet-stream"),
		WithTimeout(5*time.Second),
	)
	require.NoError(t, err)

	resp, err := g.Get(srv.URL)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, content, body)
	assert.Equal(t, int64(len(content)), resp.Size)

	// Close waits for the handler, so the captured headers are settled.
	srv.Close()
	assert.Equal(t, "assetkit-test", gotUA)
	assert.Equal(t, "application/octet-stream", gotAccept)
}

func TestHTTPGetterNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	g, err := NewHTTPGetter()
	require.NoError(t, err)

	_, err = g.Get(srv.URL + "/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch")
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPGetterBasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "username" || pass != "password" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	g, err := NewHTTPGetter(
		WithBasicAuth("username", "password"),
		WithURL(srv.URL),
	)
	require.NoError(t, err)

	resp, err := g.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestHTTPGetterCredentialsNotLeakedToOtherHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	// Credentials are bound to a different host, so they must not be sent.
	g, err := NewHTTPGetter(
		WithBasicAuth("username", "password"),
		WithURL("https://other.example.com"),
	)
	require.NoError(t, err)

	resp, err := g.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestByScheme(t *testing.T) {
	p := Getters()

	for _, scheme := range []string{"http", "https"} {
		if _, err := p.ByScheme(scheme); err != nil {
			t.Errorf("provider did not handle scheme %q", scheme)
		}
	}

	_, err := p.ByScheme("ftp")
	assert.Error(t, err)
}
