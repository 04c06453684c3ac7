// SPDX-License-Identifier: MIT

package bosons

import "errors"

// ErrParse indicates a product string that does not follow "c0c1a2".
var ErrParse = errors.New("bosons: cannot parse product")
