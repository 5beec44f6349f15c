package models

import projectmodels "lastproject/internal/projects/models"

// Resolution is the project (and optionally environment) selected at startup.
// Environment is nil when no compatible environment was found in history.
type Resolution struct {
	ProjectName string
	Project     *projectmodels.Project
	Environment *projectmodels.LifecycleEnvironment
}

// EnvironmentName returns the selected environment name or "".
func (r *Resolution) EnvironmentName() string {
	if r == nil || r.Environment == nil {
		return ""
	}
	return r.Environment.Name
}
