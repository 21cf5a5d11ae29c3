package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"arxml-viewer/internal/core"
)

// Inspect parses one document and returns the full model. The
// validator pre-checks only log warnings: a document that fails them
// still goes to the parser, which is the sole authority on whether the
// file is readable.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document path is required")
	}

	if !s.Validator.IsValidXML(path) {
		log.Ctx(ctx).Warn().Str("file", path).Msg("document failed the well-formedness probe")
	} else if !s.Validator.IsAutosarXML(path) {
		log.Ctx(ctx).Warn().Str("file", path).Msg("document does not look like AUTOSAR")
	}

	parser := core.NewParser(s.Documents, core.DefaultParserOptions())
	parsed, err := parser.ParseFile(ctx, path)
	if err != nil {
		return InspectResult{}, err
	}
	assert.NotEmpty(ctx, parsed.Metadata.FilePath, "parse metadata must carry the file path")

	return InspectResult{
		Packages:    parsed.Packages,
		Connections: parser.ParsedConnections(),
		Metadata:    parsed.Metadata,
	}, nil
}
