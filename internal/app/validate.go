package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultValidateJobs = 4

// Validate probes every requested file concurrently and reports per
// file. Probe failures land in the report, never in the returned
// error; the only error path is context cancellation.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	if len(req.Paths) == 0 {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one document path is required")
	}
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = defaultValidateJobs
	}

	// Reports keep the request order regardless of completion order.
	reports := make([]FileReport, len(req.Paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, path := range req.Paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			reports[i] = s.validateOne(strings.TrimSpace(path))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return ValidateResult{}, err
	}

	failed := 0
	for _, report := range reports {
		if !report.Valid || (req.RequireAutosar && !report.Autosar) {
			failed++
		}
	}
	log.Ctx(ctx).Debug().
		Int("files", len(reports)).
		Int("failed", failed).
		Msg("validation completed")
	return ValidateResult{Reports: reports, Failed: failed}, nil
}

func (s Service) validateOne(path string) FileReport {
	report := FileReport{Path: path}
	if path == "" {
		report.Error = "empty document path"
		return report
	}
	info := s.Validator.Info(path)
	report.Valid = info.Valid
	report.RootElement = info.RootElement
	report.ElementCount = info.ElementCount
	report.Error = info.Error
	if info.Valid {
		report.Autosar = s.Validator.IsAutosarXML(path)
	}
	return report
}
