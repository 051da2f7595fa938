package review

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

// MaxCommentLength bounds review comments in bytes.
const MaxCommentLength = 1000

// Rating is a guest score from 1 (worst) to 5 (best).
type Rating int

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return 0, ErrInvalidRating
	}
	return Rating(v), nil
}

func (r Rating) Value() int { return int(r) }

// Comment is the trimmed review text. Reviews always carry one.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	switch {
	case t == "":
		return Comment{}, ErrEmptyComment
	case len(t) > MaxCommentLength:
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
