package main

import (
	"math/rand"
	"time"

	"github.com/jonathan/resume-studio/internal/ats"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/export"
)

// newAnalyzer builds the scorer from config. A fixed seed makes the jitter
// reproducible; deterministic mode disables it entirely.
func newAnalyzer(cfg *config.Config) *ats.Analyzer {
	analyzerCfg := ats.DefaultConfig()
	if cfg.Deterministic {
		analyzerCfg.Jitter = ats.NoJitter
	} else if cfg.JitterSeed != 0 {
		rng := rand.New(rand.NewSource(cfg.JitterSeed))
		analyzerCfg.Jitter = func() float64 { return rng.Float64()*10 - 5 }
	}
	return ats.NewAnalyzer(analyzerCfg)
}

// newExporter builds the export pipeline over a headless-browser rasterizer.
func newExporter(cfg *config.Config) *export.Exporter {
	raster := export.NewChromeRasterizer(export.ChromeConfig{
		ChromePath: cfg.ChromePath,
		Scale:      cfg.ExportScale,
		Timeout:    time.Duration(cfg.RenderTimeout) * time.Second,
		Verbose:    cfg.Verbose,
	})
	return export.NewExporter(raster)
}
