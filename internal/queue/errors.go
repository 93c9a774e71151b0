package queue

import "errors"

// ErrMissingCredentials indicates the backend URL or API key is empty.
var ErrMissingCredentials = errors.New("backend url and api key are required")
