package models

// LifecycleEnvironment is a deployment context (development, test, ...) bound
// to exactly one project by name. The project may no longer exist.
type LifecycleEnvironment struct {
	Name               string   `yaml:"name"`
	ProjectName        string   `yaml:"project"`
	Purpose            string   `yaml:"purpose,omitempty"`
	ConfigurationFiles []string `yaml:"configurationFiles,omitempty"`
}

// BelongsTo reports whether the environment is bound to projectName.
func (e *LifecycleEnvironment) BelongsTo(projectName string) bool {
	return e != nil && e.ProjectName == projectName
}
