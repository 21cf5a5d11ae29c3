package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Info returns the well-formedness probe record for one file. Probe
// failures are part of the record, not errors.
func (s Service) Info(ctx context.Context, req InfoRequest) (InfoResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return InfoResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document path is required")
	}
	info := s.Validator.Info(path)
	log.Ctx(ctx).Debug().
		Str("file", path).
		Bool("valid", info.Valid).
		Msg("document probe completed")
	return InfoResult{Info: info}, nil
}
