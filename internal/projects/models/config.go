package models

// ProjectsConfig is the on-disk shape of the registry file.
type ProjectsConfig struct {
	// Enabled gates the whole projects system. Nil means enabled.
	Enabled        *bool                  `yaml:"enabled,omitempty"`
	DefaultProject string                 `yaml:"defaultProject,omitempty"`
	Projects       []ProjectConfig        `yaml:"projects"`
	Environments   []LifecycleEnvironment `yaml:"environments"`
}

// IsEnabled applies the enabled-by-default rule.
func (c ProjectsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}
