package entity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/google/uuid"
)

// Student plays the games assigned to their groups.
type Student struct {
	*account
	name string
}

func NewStudent(id, email, password, name string) *Student {
	return &Student{account: NewAccount(id, email, password), name: name}
}

// NewEnrolledStudent creates a student with a generated id and the basic
// password derived from the email. The student is expected to change it.
func NewEnrolledStudent(email, name string) *Student {
	return NewStudent(NewStudentID(), email, BasicPassword(email), name)
}

func (s *Student) Role() Role   { return RoleStudent }
func (s *Student) Name() string { return s.name }

func (s *Student) String() string {
	base := s.describe("Student")
	return fmt.Sprintf("%s, name=%s}", base[:len(base)-1], s.name)
}

// NewStudentID returns a random UUID without dashes (32 hex chars).
func NewStudentID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// BasicPassword is the first three characters of the local part, followed by
// the email length in UTF-16 code units mod 100 and "!".
// e.g. "ana@school.edu" -> "ana14!", "josé@x.io" -> "jos9!"
func BasicPassword(email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	if r := []rune(local); len(r) > 3 {
		local = string(r[:3])
	}
	return local + strconv.Itoa(len(utf16.Encode([]rune(email)))%100) + "!"
}

var _ User = (*Student)(nil)
