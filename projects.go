package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ListProjects returns all projects, pinned first.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project

	_, err := c.execute(ctx, http.MethodGet, "/projects", func(r *resty.Request) {
		r.SetResult(&projects)
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// GetProject fetches a single project by ID.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	if id == "" {
		return nil, errors.New("project ID must not be empty")
	}

	var project Project

	_, err := c.execute(ctx, http.MethodGet, "/projects/"+id, func(r *resty.Request) {
		r.SetResult(&project)
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// CreateProject creates a new project and returns it with its
// server-assigned ID.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	if req.Title == "" {
		return nil, errors.New("project title must not be empty")
	}

	var project Project

	_, err := c.execute(ctx, http.MethodPost, "/projects", func(r *resty.Request) {
		r.SetBody(req)
		r.SetResult(&project)
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// DeleteProject removes a project and all of its tasks.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("project ID must not be empty")
	}

	_, err := c.execute(ctx, http.MethodDelete, "/projects/"+id, nil)

	return err
}
