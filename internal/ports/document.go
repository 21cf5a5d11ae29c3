package ports

import (
	"time"

	"github.com/antchfx/xmlquery"
)

// LoadedDocument is a parsed XML document plus the file facts the
// parser reports in its metadata. The tree is shared with the loader's
// cache and must be treated as read-only.
type LoadedDocument struct {
	Doc     *xmlquery.Node
	Size    int64
	ModTime time.Time
}

type DocumentPort interface {
	Load(path string) (LoadedDocument, error)
}
