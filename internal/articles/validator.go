package articles

import "strings"

type CreateArticleRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ValidateCreateArticle checks the request fields and returns nil when valid.
// Title and Content must be non-empty; Tags carries no constraint.
func ValidateCreateArticle(req CreateArticleRequest) *Error {
	var failures []string

	if req.Title == "" {
		failures = append(failures, "'Title' must not be empty.")
	}
	if req.Content == "" {
		failures = append(failures, "'Content' must not be empty.")
	}

	if len(failures) == 0 {
		return nil
	}

	return validationError(strings.Join(failures, " "))
}
