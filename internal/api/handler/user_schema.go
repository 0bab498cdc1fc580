package handler

import (
	"time"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

// userResponse is the transport view of an identity. The password hash and
// cached token never leave the service.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC(),
	}
}
