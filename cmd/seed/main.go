package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-record/config"
	"github.com/oksasatya/go-ddd-user-record/internal/application"
	"github.com/oksasatya/go-ddd-user-record/internal/container"
	"github.com/oksasatya/go-ddd-user-record/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-record/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	// stdout is reserved for the record dump
	logger := helpers.NewLoggerTo(os.Stderr, cfg.AppName, cfg.Env)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	svc := container.GetUserService()

	ctx := context.Background()

	teacher := entity.NewTeacher(cfg.SeedTeacherID, cfg.SeedTeacherEmail, cfg.SeedTeacherPassword, cfg.SeedTeacherName)
	if err := svc.Register(ctx, teacher); err != nil {
		log.Fatalf("failed to seed teacher: %v", err)
	}

	rows := make([]application.StudentEnrolment, 0)
	for _, email := range cfg.StudentEmails() {
		rows = append(rows, application.StudentEnrolment{Email: email, Name: nameFromEmail(email)})
	}
	students, err := svc.EnrolStudents(ctx, rows)
	if err != nil {
		log.Fatalf("failed to enrol students: %v", err)
	}

	// the first student changes the generated password, as a real one would on first login
	if len(students) > 0 {
		if err := svc.ChangePassword(ctx, students[0].ID(), students[0].Password()+"-updated"); err != nil {
			log.Fatalf("failed to change password: %v", err)
		}
	}

	role, err := printRole(cfg.SeedPrintRole)
	if err != nil {
		log.Fatalf("invalid SEED_PRINT_ROLE: %v", err)
	}
	users, err := svc.List(ctx, role)
	if err != nil {
		log.Fatalf("failed to list users: %v", err)
	}
	if cfg.SeedPrintRecords {
		for _, u := range users {
			fmt.Println(u.String())
		}
	}
	logger.WithFields(logrus.Fields{"teachers": 1, "students": len(students)}).Info("seed completed")
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}
	r, size := utf8.DecodeRuneInString(local)
	return string(unicode.ToUpper(r)) + local[size:]
}

// printRole maps an empty value to every role.
func printRole(s string) (entity.Role, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return entity.ParseRole(s)
}
