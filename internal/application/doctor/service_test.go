package doctor

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubTemplates struct {
	templates []domain.Template
	err       error
}

func (s stubTemplates) List(context.Context) ([]domain.Template, error) {
	return s.templates, s.err
}

func (s stubTemplates) Get(context.Context, string) (domain.Template, error) {
	return domain.Template{}, errors.New("not implemented")
}

func checkByName(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q missing from report %+v", name, report)
	return domain.HealthCheck{}
}

func TestRunHealthyEnvironment(t *testing.T) {
	dir := t.TempDir()
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{
			ConfigFormatVersion: "1",
			Commands: domain.CommandSettings{
				CommandsDir: filepath.Join(dir, "commands"),
				OutputDir:   filepath.Join(dir, "output"),
			},
		}},
		Templates:      stubTemplates{templates: []domain.Template{{Name: "readme"}}},
		ActiveCommands: func() int { return 2 },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, name := range []string{"Config file", "Commands directory", "Output directory", "Templates", "Active commands"} {
		if check := checkByName(t, report, name); check.Status != domain.HealthOK {
			t.Fatalf("check %q status = %s (%s)", name, check.Status, check.Details)
		}
	}
}

func TestRunReportsConfigLoadFailure(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{err: errors.New("corrupt")},
	}

	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("Run() error = nil for failing config load")
	}
	if check := checkByName(t, report, "Config file"); check.Status != domain.HealthError {
		t.Fatalf("config check status = %s", check.Status)
	}
}

func TestRunWarnsOnEmptyTemplateDirectory(t *testing.T) {
	dir := t.TempDir()
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{
			Commands: domain.CommandSettings{
				CommandsDir: filepath.Join(dir, "commands"),
				OutputDir:   filepath.Join(dir, "output"),
			},
		}},
		Templates: stubTemplates{},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if check := checkByName(t, report, "Templates"); check.Status != domain.HealthWarn {
		t.Fatalf("templates check status = %s", check.Status)
	}
}

func TestRunWarnsWhenDirectoriesUnconfigured(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if check := checkByName(t, report, "Commands directory"); check.Status != domain.HealthWarn {
		t.Fatalf("commands directory check status = %s", check.Status)
	}
}
