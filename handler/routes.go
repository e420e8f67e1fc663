package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register mounts the post API on e. Every /api route requires the client
// to accept JSON; unknown /api paths fall through to a plain 404.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")
	api.GET("/posts", h.GetPosts, AcceptJSON).Name = RoutePosts
	api.POST("/posts", h.NewPost, AcceptJSON)
	api.GET("/posts/:id", h.GetByID, AcceptJSON)
	api.GET("/posts/:id/rendered", h.GetRendered, AcceptJSON)
	api.PUT("/edit/:id", h.EditPost, AcceptJSON)
}

// ErrorHandler writes errors as plain text. Server errors are logged as
// errors, client errors only at debug level.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = http.StatusText(code)
		if m, ok := he.Message.(string); ok && m != "" {
			message = m
		}
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	} else {
		c.Logger().Debug(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.String(code, message)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
