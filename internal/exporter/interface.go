package exporter

import (
	"stowsort/internal/config"
	"stowsort/internal/model"
)

// Exporter is the unified interface for all output formats
type Exporter interface {
	Name() string
	Export(res *model.Result, cfg *config.Config) error
}
