package session

import "github.com/pagecraft/blog/internal/core/domain"

var (
	domainData = domain.SessionData{UserID: 4, Flashes: []string{"hi"}}
	adminUser  = domain.User{ID: 1, Email: "admin@example.com", Role: domain.RoleAdmin}
)
