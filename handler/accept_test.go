package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAcceptsJSON(t *testing.T) {
	tests := []struct {
		accept []string
		want   bool
	}{
		{nil, false},
		{[]string{""}, false},
		{[]string{"  "}, false},
		{[]string{"application/json"}, true},
		{[]string{"APPLICATION/JSON"}, true},
		{[]string{"text/html,application/xhtml+xml,*/*;q=0.8"}, true},
		{[]string{"application/*;q=0.1"}, true},
		{[]string{"text/html, application/json;q=0.9"}, true},
		{[]string{"*/*;q=0"}, false},
		{[]string{"application/json;q=0"}, false},
		{[]string{"application/json;q=bogus"}, false},
		{[]string{"text/html"}, false},
		{[]string{"application/problem+json"}, false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/api/posts", nil)
		for _, v := range tt.accept {
			req.Header.Add(echo.HeaderAccept, v)
		}
		assert.Equal(t, tt.want, acceptsJSON(req), "%q", tt.accept)
	}
}
