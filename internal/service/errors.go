package service

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrTooManyRequests = errors.New("too many requests")
	ErrMisconfigured   = errors.New("auth config invalid")
)

// Error is a failure with a message safe to show to API clients.
// errors.Is matches it against its kind.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

var (
	ErrUserNotFound        = newError(ErrInvalidInput, "User not found")
	ErrMissingRefreshToken = newError(ErrUnauthorized, "No refresh token found")
	ErrInvalidRefreshToken = newError(ErrUnauthorized, "Invalid refresh token")
	ErrInvalidAccessToken  = newError(ErrUnauthorized, "Unauthorized")
	ErrPostNotFound        = newError(ErrNotFound, "Post not found")
	ErrCommunityNotFound   = newError(ErrNotFound, "Community not found")
	ErrCommentNotFound     = newError(ErrNotFound, "Comment not found or not authorized")
	ErrLoginRateLimited    = newError(ErrTooManyRequests, "Too many login attempts")
	ErrEmptyPostTitle      = newError(ErrInvalidInput, "title should not be empty")
	ErrEmptyPostContent    = newError(ErrInvalidInput, "content should not be empty")
	ErrEmptyCommentContent = newError(ErrInvalidInput, "content should not be empty")
	ErrInvalidCommunityID  = newError(ErrInvalidInput, "communityId must be a positive number")
	ErrInvalidPostID       = newError(ErrInvalidInput, "postId must be a positive number")
)
