package handler

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"

	"posts/domain"
)

// renderOptions controls how a post body becomes HTML.
type renderOptions struct {
	extensions parser.Extensions
	html       html.RendererOptions
	title      *bluemonday.Policy
	body       *bluemonday.Policy
}

var postRenderOptions = renderOptions{
	extensions: parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock,
	html:       html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank},
	title:      bluemonday.StrictPolicy(),
	body:       bluemonday.UGCPolicy(),
}

// markdownHTML renders md without sanitizing it.
func (o renderOptions) markdownHTML(md string) []byte {
	doc := parser.NewWithExtensions(o.extensions).Parse([]byte(md))
	return markdown.Render(doc, html.NewRenderer(o.html))
}

func renderPost(p *domain.Post, o renderOptions) domain.RenderedPost {
	return domain.RenderedPost{
		ID:    p.ID,
		Title: o.title.Sanitize(p.Title),
		HTML:  string(o.body.SanitizeBytes(o.markdownHTML(p.Body))),
	}
}
