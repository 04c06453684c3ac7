// SPDX-License-Identifier: MIT

package serialize

import "errors"

var (
	// ErrMalformedDocument indicates YAML that does not decode into a document.
	ErrMalformedDocument = errors.New("serialize: malformed document")

	// ErrUnsupportedFormat indicates a document of an unknown format version.
	ErrUnsupportedFormat = errors.New("serialize: unsupported format version")
)

const panicLoggerNil = "serialize: WithLogger: logger must not be nil"
