package adapters

import (
	"os"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/antchfx/xmlquery"

	"arxml-viewer/internal/ports"
)

// DocumentAdapter loads ARXML files into document trees. Results are
// cached per path keyed by modification time, so probing a file with
// the validator and then parsing it reads the XML once. Cached trees
// are handed out to multiple callers and must not be mutated.
type DocumentAdapter struct {
	mu    sync.Mutex
	cache map[string]documentCacheEntry
}

func NewDocumentAdapter() *DocumentAdapter {
	return &DocumentAdapter{cache: map[string]documentCacheEntry{}}
}

type documentCacheEntry struct {
	modTime time.Time
	size    int64
	doc     *xmlquery.Node
}

func (a *DocumentAdapter) Load(path string) (ports.LoadedDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ports.LoadedDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read arxml file").
			WithCause(err)
	}

	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return loadedFromEntry(entry), nil
	}
	a.mu.Unlock()

	file, err := os.Open(path)
	if err != nil {
		return ports.LoadedDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read arxml file").
			WithCause(err)
	}
	defer file.Close()

	doc, err := xmlquery.Parse(file)
	if err != nil {
		return ports.LoadedDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse xml document").
			WithCause(err)
	}

	entry := documentCacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		doc:     doc,
	}
	a.mu.Lock()
	a.cache[path] = entry
	a.mu.Unlock()
	return loadedFromEntry(entry), nil
}

func loadedFromEntry(entry documentCacheEntry) ports.LoadedDocument {
	return ports.LoadedDocument{
		Doc:     entry.doc,
		Size:    entry.size,
		ModTime: entry.modTime,
	}
}

var _ ports.DocumentPort = (*DocumentAdapter)(nil)
