package api

import (
	"github.com/ssargent/freyjalink/pkg/handle"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// LinkRequest is the body of a link create or update request
type LinkRequest struct {
	Targets []string `json:"targets"`
}

// LinkResponse describes a stored link
type LinkResponse struct {
	Handle  string   `json:"handle"`
	Targets []string `json:"targets"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string // Empty disables authentication
}

// LinkStore is the storage surface the API needs
type LinkStore interface {
	Create(link []handle.Handle) (handle.Handle, error)
	Read(id handle.Handle) ([]handle.Handle, error)
	Update(id handle.Handle, link []handle.Handle) error
	Delete(id handle.Handle) error
}
