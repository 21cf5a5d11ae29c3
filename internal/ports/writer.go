package ports

import "arxml-viewer/internal/types"

type ModelWriterPort interface {
	WriteJSON(path string, export types.ModelExport) error
	WriteYAML(path string, export types.ModelExport) error
}
