package entity

import "fmt"

// Teacher manages groups and their word games.
type Teacher struct {
	*account
	name string
}

func NewTeacher(id, email, password, name string) *Teacher {
	return &Teacher{account: NewAccount(id, email, password), name: name}
}

func (t *Teacher) Role() Role   { return RoleTeacher }
func (t *Teacher) Name() string { return t.name }

func (t *Teacher) String() string {
	base := t.describe("Teacher")
	return fmt.Sprintf("%s, name=%s}", base[:len(base)-1], t.name)
}

var _ User = (*Teacher)(nil)
