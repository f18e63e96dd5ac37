package response

import "github.com/fsnd-projects/fsnd-api/internal/domain"

type LoginResponse struct {
	Token       string      `json:"token"`
	User        domain.User `json:"user"`
	Permissions []string    `json:"permissions"`
}

type Health struct {
	Status string `json:"status"`
}
