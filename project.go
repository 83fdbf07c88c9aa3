package sidemail

import (
	"context"
	"net/http"
)

// ProjectMethods groups the project operations.
type ProjectMethods struct {
	do requestFunc
}

// Create creates a project.
func (m *ProjectMethods) Create(ctx context.Context, data any) (Response, error) {
	return m.do(ctx, "project", data, WithMethod(http.MethodPost))
}

// Get returns the current project.
func (m *ProjectMethods) Get(ctx context.Context) (Response, error) {
	return m.do(ctx, "project", nil, WithMethod(http.MethodGet))
}

// Update updates the current project with the fields in data.
func (m *ProjectMethods) Update(ctx context.Context, data any) (Response, error) {
	return m.do(ctx, "project", data, WithMethod(http.MethodPatch))
}

// Delete deletes the current project.
func (m *ProjectMethods) Delete(ctx context.Context) (Response, error) {
	return m.do(ctx, "project", nil, WithMethod(http.MethodDelete))
}
