package handler

import (
	"net/http"
	"strings"

	"github.com/elnormous/contenttype"
	"github.com/labstack/echo/v4"
)

var jsonMediaTypes = []contenttype.MediaType{contenttype.NewMediaType(echo.MIMEApplicationJSON)}

// AcceptJSON rejects with 406 any request whose Accept header does not admit
// application/json. A missing header admits nothing.
func AcceptJSON(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !acceptsJSON(c.Request()) {
			return echo.NewHTTPError(http.StatusNotAcceptable)
		}
		return next(c)
	}
}

func acceptsJSON(r *http.Request) bool {
	if strings.TrimSpace(strings.Join(r.Header.Values(echo.HeaderAccept), "")) == "" {
		return false
	}
	_, _, err := contenttype.GetAcceptableMediaType(r, jsonMediaTypes)
	return err == nil
}
