package handler

import (
	"testing"

	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"posts/domain"
)

func TestRenderPost(t *testing.T) {
	post := &domain.Post{ID: 3, Title: "<i>Hi</i>", Body: "Visit [home](https://example.com)\n\n<script>x()</script>"}

	got := renderPost(post, postRenderOptions)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "Hi", got.Title)
	assert.Contains(t, got.HTML, `href="https://example.com"`)
	assert.NotContains(t, got.HTML, "<script>")
}

func TestRenderPostUsesGivenOptions(t *testing.T) {
	post := &domain.Post{ID: 1, Title: "t", Body: "a ~~gone~~ word"}
	plain := renderOptions{
		extensions: parser.NoExtensions,
		html:       html.RendererOptions{Flags: html.CommonFlags},
		title:      bluemonday.StrictPolicy(),
		body:       bluemonday.UGCPolicy(),
	}

	assert.Contains(t, renderPost(post, postRenderOptions).HTML, "<del>gone</del>")
	assert.NotContains(t, renderPost(post, plain).HTML, "<del>")
}
