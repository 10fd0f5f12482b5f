package source

import "errors"

var ErrContentNotAvailable = errors.New("input content not available")
