package client

import "time"

// TaskStatus is the lifecycle state of a task on a project board.
type TaskStatus string

const (
	TaskStatusTodo   TaskStatus = "todo"
	TaskStatusDoing  TaskStatus = "doing"
	TaskStatusReview TaskStatus = "review"
	TaskStatusDone   TaskStatus = "done"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

// Project is a unit of work tracked by Archon, grouping tasks and
// project-scoped documents.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	GithubRepo  string    `json:"github_repo,omitempty"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProjectRequest is the payload for [Client.CreateProject].
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	GithubRepo  string `json:"github_repo,omitempty"`
}

// Task is a single board item belonging to a project.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Assignee    string     `json:"assignee,omitempty"`
	TaskOrder   int        `json:"task_order"`
	Feature     string     `json:"feature,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateTaskRequest is the payload for [Client.CreateTask].
type CreateTaskRequest struct {
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	Feature     string     `json:"feature,omitempty"`
}

// KnowledgeItem is a crawled or uploaded source in the knowledge base,
// identified by its source ID.
type KnowledgeItem struct {
	SourceID      string    `json:"source_id"`
	Title         string    `json:"title"`
	URL           string    `json:"url,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	DocumentCount int       `json:"document_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SearchResult is a single RAG match returned by [Client.SearchKnowledge].
type SearchResult struct {
	SourceID   string  `json:"source_id"`
	Content    string  `json:"content"`
	URL        string  `json:"url,omitempty"`
	Similarity float64 `json:"similarity"`
}

// UploadResult reports the outcome of a document upload. Processing is
// asynchronous on the server; ProgressID can be polled for completion.
type UploadResult struct {
	SourceID   string `json:"source_id"`
	ProgressID string `json:"progress_id,omitempty"`
	Filename   string `json:"filename"`
}

// HealthStatus is the /api/health response.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
}
