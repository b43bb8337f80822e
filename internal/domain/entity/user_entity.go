package entity

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// User is the contract shared by every kind of user.
// There is intentionally no setter for the identifier or the email.
type User interface {
	ID() string
	Email() string
	Password() string
	SetPassword(password string)
	Role() Role
	String() string
}

// Account holds the identity and credential state common to all users.
// It is meant to be embedded by a concrete variant (Teacher, Student) and
// does not satisfy User by itself.
type Account struct {
	id    string
	email string

	mu       sync.RWMutex
	password string
}

// NewAccount builds the shared base. No checks are applied to the values.
func NewAccount(id, email, password string) *Account {
	return &Account{id: id, email: email, password: password}
}

// account lets variants embed the base under an unexported field name, so
// the embedded pointer cannot be swapped from outside the package.
type account = Account

func (a *Account) ID() string    { return a.id }
func (a *Account) Email() string { return a.email }

func (a *Account) Password() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.password
}

// SetPassword replaces the current password. Format is not enforced here.
func (a *Account) SetPassword(password string) {
	a.mu.Lock()
	a.password = password
	a.mu.Unlock()
}

// String includes the raw password; use LogFields for anything that is logged.
func (a *Account) String() string {
	return a.describe("User")
}

func (a *Account) describe(kind string) string {
	return fmt.Sprintf("%s{id=%s, email=%s, password=%s}", kind, a.id, a.email, a.Password())
}

// LogFields returns a log-safe view of u. The password is never included.
func LogFields(u User) logrus.Fields {
	if u == nil {
		return logrus.Fields{}
	}
	return logrus.Fields{
		"user_id": u.ID(),
		"email":   u.Email(),
		"role":    string(u.Role()),
	}
}
