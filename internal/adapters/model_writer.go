package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"arxml-viewer/internal/ports"
	"arxml-viewer/internal/types"
)

// ModelWriterAdapter serializes a parsed model snapshot for downstream
// tooling.
type ModelWriterAdapter struct{}

func NewModelWriterAdapter() ModelWriterAdapter {
	return ModelWriterAdapter{}
}

func (a ModelWriterAdapter) WriteJSON(path string, export types.ModelExport) error {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal model export").
			WithCause(err)
	}
	return a.write(path, append(data, '\n'))
}

func (a ModelWriterAdapter) WriteYAML(path string, export types.ModelExport) error {
	data, err := yaml.Marshal(export)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal model export").
			WithCause(err)
	}
	return a.write(path, data)
}

func (a ModelWriterAdapter) write(path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create output directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write model export").
			WithCause(err)
	}
	return nil
}

var _ ports.ModelWriterPort = ModelWriterAdapter{}
