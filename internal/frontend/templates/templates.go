// Package templates holds the embedded HTML templates of the frontend.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
