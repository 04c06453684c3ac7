// SPDX-License-Identifier: MIT

package mixed

import "errors"

// ErrParse indicates a mixed product string that does not follow "S…:B…:F…:".
var ErrParse = errors.New("mixed: cannot parse product")

const panicNegativeCount = "mixed: subsystem counts must be >= 0"
