// Package loader materializes a Project from its home folder.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"lastproject/internal/projects/models"
	"lastproject/pkg/platform/sentinel"
	"lastproject/pkg/platform/variables"
)

// Loader reads project-config.json style files.
type Loader struct {
	logger   *slog.Logger
	readFile func(string) ([]byte, error)
}

type Option func(*Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func New(opts ...Option) *Loader {
	l := &Loader{
		logger:   slog.Default(),
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// projectFile mirrors the JSON written next to a project's metadata.
type projectFile struct {
	Description        string `json:"description"`
	Company            string `json:"company"`
	Department         string `json:"department"`
	MetadataBaseFolder string `json:"metadataBaseFolder"`
	UnitTestsBasePath  string `json:"unitTestsBasePath"`
	DataSetsCSVFolder  string `json:"dataSetsCsvFolder"`
	ParentProjectName  string `json:"parentProjectName"`
	Config             struct {
		Variables []models.DescribedVariable `json:"variables"`
	} `json:"config"`
}

// Load resolves the project home against vars and reads its config file.
// A home without a config file yields a project with default folders.
func (l *Loader) Load(ctx context.Context, cfg *models.ProjectConfig, vars *variables.Space) (*models.Project, error) {
	if vars == nil {
		vars = variables.New()
	}
	home := strings.TrimSpace(vars.Resolve(cfg.Home))
	if home == "" {
		return nil, fmt.Errorf("project %q: empty home folder: %w", cfg.Name, sentinel.ErrInvalidState)
	}
	configFile := cfg.ConfigFile(home)
	project := models.NewProject(cfg.Name, home, configFile)

	data, err := l.readFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.DebugContext(ctx, "project config file missing, using defaults",
				"project", cfg.Name,
				"config_file", configFile,
			)
			return project, nil
		}
		return nil, fmt.Errorf("read project config %s: %w", configFile, err)
	}

	var pf projectFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("decode project config %s: %w", configFile, err)
	}

	project.Description = pf.Description
	project.Company = pf.Company
	project.Department = pf.Department
	project.ParentProjectName = pf.ParentProjectName
	if pf.MetadataBaseFolder != "" {
		project.MetadataBaseFolder = pf.MetadataBaseFolder
	}
	if pf.UnitTestsBasePath != "" {
		project.UnitTestsBasePath = pf.UnitTestsBasePath
	}
	if pf.DataSetsCSVFolder != "" {
		project.DataSetsCSVFolder = pf.DataSetsCSVFolder
	}
	for _, v := range pf.Config.Variables {
		if strings.TrimSpace(v.Name) == "" {
			continue
		}
		project.Variables = append(project.Variables, v)
	}
	return project, nil
}
