package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"posts/domain"
)

// RoutePosts names the post collection route; it is the Location of every
// created or edited post.
const RoutePosts = "posts"

type postRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// GetPosts lists posts, filtered by title_like and body_like when both are given.
func (h *Handler) GetPosts(c echo.Context) error {
	posts, err := h.Posts.List(c.Request().Context(), domain.PostFilter{
		TitleLike: c.QueryParam("title_like"),
		BodyLike:  c.QueryParam("body_like"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *Handler) NewPost(c echo.Context) error {
	req, err := bindPost(c)
	if err != nil {
		return err
	}

	post, err := h.Posts.Create(c.Request().Context(), *req.Title, *req.Body)
	if err != nil {
		return err
	}
	c.Logger().Infof("created post %d", post.ID)

	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(RoutePosts))
	return c.JSON(http.StatusCreated, post)
}

// EditPost replaces title and body of an existing post. It answers 201 like
// NewPost does.
func (h *Handler) EditPost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}
	req, err := bindPost(c)
	if err != nil {
		return err
	}

	post, err := h.Posts.Update(c.Request().Context(), id, *req.Title, *req.Body)
	if errors.Is(err, domain.ErrPostNotFound) {
		return c.String(http.StatusNotFound, "Not Found")
	}
	if err != nil {
		return err
	}
	c.Logger().Infof("updated post %d", post.ID)

	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(RoutePosts))
	return c.JSON(http.StatusCreated, post)
}

func (h *Handler) GetByID(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	post, err := h.Posts.Get(c.Request().Context(), id)
	if errors.Is(err, domain.ErrPostNotFound) {
		return c.String(http.StatusNotFound, "Not Found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// GetRendered returns the post body rendered from Markdown to sanitized HTML.
func (h *Handler) GetRendered(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	post, err := h.Posts.Get(c.Request().Context(), id)
	if errors.Is(err, domain.ErrPostNotFound) {
		return c.String(http.StatusNotFound, "Not Found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, renderPost(post, postRenderOptions))
}

func postID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid post id").SetInternal(err)
	}
	return id, nil
}

// bindPost decodes a {title, body} JSON object. Both fields must be present;
// empty strings are accepted as they are. Anything after the object is refused.
func bindPost(c echo.Context) (*postRequest, error) {
	req := new(postRequest)
	dec := json.NewDecoder(c.Request().Body)
	if err := dec.Decode(req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body").SetInternal(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body: trailing data")
	}
	if req.Title == nil || req.Body == nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "title and body are required")
	}
	return req, nil
}
