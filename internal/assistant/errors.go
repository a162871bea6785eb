package assistant

import "errors"

var ErrNoUser = errors.New("user is required")
