package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ListTasks returns the tasks of a project, ordered by task_order within
// each status column. An empty projectID lists tasks across all projects.
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]Task, error) {
	var tasks []Task

	_, err := c.execute(ctx, http.MethodGet, "/tasks", func(r *resty.Request) {
		if projectID != "" {
			r.SetQueryParam("project_id", projectID)
		}
		r.SetResult(&tasks)
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// CreateTask creates a task on a project board. A request without an
// explicit status lands in the todo column.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	if req.ProjectID == "" {
		return nil, errors.New("task project ID must not be empty")
	}

	if req.Title == "" {
		return nil, errors.New("task title must not be empty")
	}

	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("invalid task status %q", req.Status)
	}

	var task Task

	_, err := c.execute(ctx, http.MethodPost, "/tasks", func(r *resty.Request) {
		r.SetBody(req)
		r.SetResult(&task)
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTaskStatus moves a task to another board column and returns the
// updated task.
func (c *Client) UpdateTaskStatus(ctx context.Context, id string, status TaskStatus) (*Task, error) {
	if id == "" {
		return nil, errors.New("task ID must not be empty")
	}

	if !status.Valid() {
		return nil, fmt.Errorf("invalid task status %q", status)
	}

	var task Task

	_, err := c.execute(ctx, http.MethodPatch, "/tasks/"+id, func(r *resty.Request) {
		r.SetBody(map[string]TaskStatus{"status": status})
		r.SetResult(&task)
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}
