package domain

import "errors"

// ErrCacheMiss indicates no cached entry was found.
var ErrCacheMiss = errors.New("cache miss")

// ErrEmptyContent indicates the caller supplied empty content.
var ErrEmptyContent = errors.New("content cannot be empty")

// ErrContentTooLarge indicates the content exceeds the configured size limit.
var ErrContentTooLarge = errors.New("content exceeds maximum length")

// ErrNoSuggestionProvider indicates no AI suggestion provider is configured.
var ErrNoSuggestionProvider = errors.New("no suggestion provider configured")
