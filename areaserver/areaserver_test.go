package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, server *httptest.Server, path string) (int, string) {
	t.Helper()

	response, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	return response.StatusCode, string(body)
}

func TestRectangleAreaHandler(t *testing.T) {

	server := httptest.NewServer(registerRoutes())
	defer server.Close()

	status, body := get(t, server, "/area/rectangle?width=2&height=4")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "The area of the rectangle is 8", body)
}

func TestCircleAreaHandler(t *testing.T) {

	server := httptest.NewServer(registerRoutes())
	defer server.Close()

	// A unit circle avoids float formatting noise: the area is exactly Pi.
	status, body := get(t, server, "/area/circle?radius=1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "The area of the circle is 3.14", body)
}

func TestMissingQueryParameters(t *testing.T) {

	server := httptest.NewServer(registerRoutes())
	defer server.Close()

	status, _ := get(t, server, "/area/rectangle?width=2")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, server, "/area/circle")
	assert.Equal(t, http.StatusBadRequest, status)
}
