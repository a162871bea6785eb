package voice

import "errors"

// ErrUnsupported is returned by adapters that cannot capture or play speech
// in the current environment.
var ErrUnsupported = errors.New("speech is not supported in this environment")
