package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvwave/imrphenomd"
	"github.com/katalvlaran/lvwave/taylorf2"
	"github.com/katalvlaran/lvwave/waveform"
)

// buildModel constructs the configured waveform model.
func buildModel(cfg config, log *zap.Logger) (waveform.Model, error) {
	switch cfg.Model {
	case modelIMRPhenomD:
		m, err := imrphenomd.New(cfg.TotalMass, cfg.MassRatio, cfg.Chi1, cfg.Chi2, cfg.Distance,
			imrphenomd.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return m, nil
	case modelTaylorF2:
		m, err := taylorf2.New(cfg.TotalMass, cfg.MassRatio, cfg.Chi1, cfg.Chi2, cfg.Distance,
			taylorf2.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Model, errUnknownModel)
	}
}
