package queries

import (
	"context"
	"errors"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery lists registered users. Password hashes are not selected.
type GetAllUsersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllUsersQuery() GetAllUsersQuery {
	return GetAllUsersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

type UserView struct {
	ID   kernel.UUID
	Name string
	Role kernel.Role
}

type GetAllUsersQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGetAllUsersQueryHandler(db *gorm.DB, timeout time.Duration) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db, timeout: timeout}
}

func (h GetAllUsersQueryHandler) Handle(ctx context.Context, query GetAllUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, h.timeout)
	defer cancel()

	var rows []userRow
	err := h.db.WithContext(ctx).
		Table("users").
		Select("id, name, role_id").
		Order("name").
		Scan(&rows).Error
	if err != nil {
		return nil, unavailable("users", err)
	}

	users := make([]UserView, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		role, roleErr := kernel.RoleFromCode(row.RoleID)
		if roleErr != nil {
			return nil, roleErr
		}
		users = append(users, UserView{ID: id, Name: row.Name, Role: role})
	}

	return users, nil
}

type userRow struct {
	ID     uuid.UUID
	Name   string
	RoleID int
}
