package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed pages static
var content embed.FS

// PagesFS returns the page file system.
func PagesFS() fs.FS {
	sub, err := fs.Sub(content, "pages")
	if err != nil {
		log.Fatalf("failed to create pages sub-filesystem: %v", err)
	}
	return sub
}

// StaticFS returns the static asset file system.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		log.Fatalf("failed to create static sub-filesystem: %v", err)
	}
	return sub
}
