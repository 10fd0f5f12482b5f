package mathtex

import "errors"

var ErrParseFailed = errors.New("mathtex parse error")
