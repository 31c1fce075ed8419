package dto

// TaskRequest is the shared body shape for creating and updating a task.
// Attachments ride alongside it as multipart files. Tags is the raw
// comma-separated string the client sends; the pointer distinguishes an
// omitted field (leave associations alone) from an empty one (clear them).
type TaskRequest struct {
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	DueDate     string  `json:"due_date" form:"due_date"`
	Priority    string  `json:"priority" form:"priority"`
	Tags        *string `json:"tags" form:"tags"`
}

// ListTasksRequest carries the query parameters of GET /tasks.
type ListTasksRequest struct {
	SortField     string `form:"sort_field"`
	SortOrder     string `form:"sort_order"`
	CompletedFrom string `form:"completed_from"`
	CompletedTo   string `form:"completed_to"`
	Priority      string `form:"priority"`
	DueFrom       string `form:"due_from"`
	DueTo         string `form:"due_to"`
	ArchivedFrom  string `form:"archived_from"`
	ArchivedTo    string `form:"archived_to"`
	Search        string `form:"search"`
	Page          int    `form:"page"`
}
