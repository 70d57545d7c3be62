package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Type      Type            `json:"type"`
	Title     string          `json:"title"`
	Body      string          `json:"body,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"is_read"`
	ReadAt    *time.Time      `json:"read_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NotificationResponseFromEntity converts entity to API response
func NotificationResponseFromEntity(n *Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.Body.Valid {
		resp.Body = n.Body.String
	}
	if n.ReadAt.Valid {
		t := n.ReadAt.Time
		resp.ReadAt = &t
	}
	return resp
}
