package assets

import (
	"embed"

	"github.com/benbjohnson/hashfs"
)

//go:embed *.css
var FS embed.FS

var HashFS = hashfs.NewFS(FS)
