package domain

import "errors"

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostFilter narrows a post listing. Both fields must be set for either to apply.
type PostFilter struct {
	TitleLike string
	BodyLike  string
}

func (f PostFilter) Active() bool {
	return f.TitleLike != "" && f.BodyLike != ""
}

// RenderedPost is a post prepared for display.
type RenderedPost struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}
