package user

import (
	"time"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"required,userrole"`
}

func (r CreateUserRequest) toInput() services.CreateUserInput {
	return services.CreateUserInput{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		FullName: r.FullName,
		Role:     models.UserRole(r.Role),
	}
}

// UpdateUserRequest covers full name, email and role. Passwords change
// through the dedicated password endpoint only.
type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,userrole"`
}

func (r UpdateUserRequest) toInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		FullName: r.FullName,
		Email:    r.Email,
		Role:     models.UserRole(r.Role),
	}
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

type ListUsersQuery struct {
	Role         string     `form:"role" binding:"omitempty,userrole"`
	Username     string     `form:"username"`
	FullName     string     `form:"full_name"`
	CreatedAfter *time.Time `form:"created_after" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (q ListUsersQuery) toFilter() store.UserFilter {
	filter := store.UserFilter{
		UsernameContains: q.Username,
		FullNameContains: q.FullName,
		CreatedAfter:     q.CreatedAfter,
	}
	if q.Role != "" {
		role := models.UserRole(q.Role)
		filter.Role = &role
	}
	return filter
}
