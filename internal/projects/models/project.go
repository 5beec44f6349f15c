package models

import "path/filepath"

// DefaultConfigFilename is read from a project's home folder when the
// project config does not name another file.
const DefaultConfigFilename = "project-config.json"

// ProjectConfig is the registry entry for a project: where it lives and which
// file describes it. Home may reference variables such as ${HOME}.
type ProjectConfig struct {
	Name           string `yaml:"name"`
	Home           string `yaml:"home"`
	ConfigFilename string `yaml:"configFilename,omitempty"`
}

// ConfigFile returns the config file path under an already resolved home.
func (c ProjectConfig) ConfigFile(resolvedHome string) string {
	name := c.ConfigFilename
	if name == "" {
		name = DefaultConfigFilename
	}
	return filepath.Join(resolvedHome, name)
}

// DescribedVariable is a variable declared by a project or environment file.
type DescribedVariable struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Project is the materialized state of a project home. Folder fields may
// still contain ${PROJECT_HOME} and are resolved at activation time.
type Project struct {
	Name               string
	Home               string
	ConfigFile         string
	Description        string
	Company            string
	Department         string
	MetadataBaseFolder string
	UnitTestsBasePath  string
	DataSetsCSVFolder  string
	ParentProjectName  string
	Variables          []DescribedVariable
}

// Defaults for a project home without a config file.
const (
	DefaultMetadataBaseFolder = "${PROJECT_HOME}/metadata"
	DefaultUnitTestsBasePath  = "${PROJECT_HOME}"
	DefaultDataSetsCSVFolder  = "${PROJECT_HOME}/datasets"
)

// NewProject returns a project with default folders.
func NewProject(name, home, configFile string) *Project {
	return &Project{
		Name:               name,
		Home:               home,
		ConfigFile:         configFile,
		MetadataBaseFolder: DefaultMetadataBaseFolder,
		UnitTestsBasePath:  DefaultUnitTestsBasePath,
		DataSetsCSVFolder:  DefaultDataSetsCSVFolder,
	}
}
