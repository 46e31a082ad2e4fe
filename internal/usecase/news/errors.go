package news

import "errors"

// ErrArticleNotFound indicates that the requested article does not exist.
var ErrArticleNotFound = errors.New("article not found")
