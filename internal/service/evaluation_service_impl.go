package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/exposure"
	"github.com/alexanderramin/traworker/internal/importer"
)

type evaluationService struct {
	precision int
	observer  UseCaseObserver
}

// NewEvaluationService returns a service rounding every estimate to
// precision decimal places.
func NewEvaluationService(precision int, observers ...UseCaseObserver) EvaluationService {
	return &evaluationService{
		precision: precision,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *evaluationService) Evaluate(ctx context.Context, sc domain.Scenario, table exposure.Table) (result *exposure.Result, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"substance": sc.SubstanceName,
		"proc":      string(sc.Process),
	}
	defer func() {
		if result != nil {
			fields["key"] = result.Key
			fields["row_found"] = result.RowFound
			na, invalid := countSentinels(result)
			fields["not_applicable"] = na
			fields["invalid_input"] = invalid
			fields["acceptable"] = result.RCRs.Acceptable()
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "evaluate-scenario",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return exposure.Evaluate(sc, table, exposure.WithPrecision(s.precision))
}

func (s *evaluationService) EvaluateFile(ctx context.Context, sf *importer.ScenarioFile, table exposure.Table) (*exposure.Result, error) {
	if errs := importer.ValidateScenario(sf); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	sc, err := importer.Convert(sf)
	if err != nil {
		return nil, fmt.Errorf("converting scenario: %w", err)
	}
	return s.Evaluate(ctx, sc, table)
}

func (s *evaluationService) EvaluatePaths(ctx context.Context, paths []string, table exposure.Table) ([]*exposure.Result, error) {
	results := make([]*exposure.Result, 0, len(paths))
	for _, path := range paths {
		sf, err := importer.LoadScenarioFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading scenario file: %w", err)
		}
		result, err := s.EvaluateFile(ctx, sf, table)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		results = append(results, result)
	}
	return results, nil
}
