// Package doctor runs environment diagnostics for the generator.
package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// Service checks that the configured directories and templates are usable.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Templates      ports.TemplateSource
	ActiveCommands func() int
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded version %s", cfg.ConfigFormatVersion)))

	checks = append(checks, dirCheck("Commands directory", cfg.Commands.CommandsDir))
	checks = append(checks, dirCheck("Output directory", cfg.Commands.OutputDir))

	if s.Templates != nil {
		if templates, err := s.Templates.List(ctx); err != nil {
			checks = append(checks, warn("Templates", err.Error()))
		} else if len(templates) == 0 {
			checks = append(checks, warn("Templates", fmt.Sprintf("none found in %s", cfg.Templates.TemplatesDir)))
		} else {
			checks = append(checks, ok("Templates", fmt.Sprintf("%d available", len(templates))))
		}
	}

	if s.ActiveCommands != nil {
		checks = append(checks, ok("Active commands", fmt.Sprintf("%d tracked", s.ActiveCommands())))
	}

	return domain.HealthReport{Checks: checks}, nil
}

// dirCheck verifies the directory can be created and written to by
// placing and removing a probe file.
func dirCheck(name, dir string) domain.HealthCheck {
	if dir == "" {
		return warn(name, "not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail(name, fmt.Sprintf("cannot create %s: %v", dir, err))
	}
	probe := filepath.Join(dir, ".docgen-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o600); err != nil {
		return fail(name, fmt.Sprintf("not writable: %v", err))
	}
	_ = os.Remove(probe)
	return ok(name, dir)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
