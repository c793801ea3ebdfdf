package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TaskSummary is the read-only public listing: no ids, no description, no
// mutation affordances.
type TaskSummary struct {
	Title   string  `json:"title"`
	Status  string  `json:"status"`
	DueDate *string `json:"due_date,omitempty"`
}

// SaveTaskRequest is shared by create and update. Enum and date fields are
// plain strings on purpose: unrecognized values fall back to defaults at the
// service boundary instead of failing the request.
type SaveTaskRequest struct {
	Title       string  `json:"title" binding:"max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type TaskCreated struct {
	ID uint64 `json:"id"`
}

type NonceResponse struct {
	Nonce string `json:"nonce"`
}
