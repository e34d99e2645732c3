// Package user defines the user directory contract the helpdesk consumes.
// The directory resolves ids to display names and answers the staff
// capability check; identity management itself lives elsewhere.
package user

import (
	"context"
	"fmt"
	"time"
)

type User struct {
	id          uint
	email       string
	displayName string
	isStaff     bool
	isAdmin     bool
	createdAt   time.Time
}

func ReconstructUser(id uint, email, displayName string, isStaff, isAdmin bool, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		isStaff:     isStaff,
		isAdmin:     isAdmin,
		createdAt:   createdAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) IsStaff() bool        { return u.isStaff }
func (u *User) IsAdmin() bool        { return u.isAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// DisplayName falls back to the email address when no name is set.
func (u *User) DisplayName() string {
	if u.displayName != "" {
		return u.displayName
	}
	return u.email
}

// Directory is the external user lookup consumed by assignment, authorship,
// and dashboard labeling.
type Directory interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*User, error)
	ListStaff(ctx context.Context) ([]*User, error)
}
