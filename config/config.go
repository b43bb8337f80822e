package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production

	// Seed teacher
	SeedTeacherID       string
	SeedTeacherEmail    string
	SeedTeacherPassword string
	SeedTeacherName     string

	// Seed students, comma-separated emails
	SeedStudentEmails string

	// Print the diagnostic string of every seeded record (includes passwords)
	SeedPrintRecords bool
	// Only print records of this role (teacher or student); empty prints all
	SeedPrintRole string

	// Upper bound for a bulk enrolment
	MaxEnrolBatch int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "user-record"),
		Env:     getenv("APP_ENV", "development"),

		SeedTeacherID:       getenv("SEED_TEACHER_ID", "t1"),
		SeedTeacherEmail:    getenv("SEED_TEACHER_EMAIL", "teacher@example.com"),
		SeedTeacherPassword: getenv("SEED_TEACHER_PASSWORD", "changeme"),
		SeedTeacherName:     getenv("SEED_TEACHER_NAME", "Demo Teacher"),

		SeedStudentEmails: getenv("SEED_STUDENT_EMAILS", "ana@example.com,luis@example.com"),

		SeedPrintRecords: getbool("SEED_PRINT_RECORDS", true),
		SeedPrintRole:    getenv("SEED_PRINT_ROLE", ""),

		MaxEnrolBatch: getint("MAX_ENROL_BATCH", 200),
	}
}

// StudentEmails returns the seed student emails as slice
func (c *Config) StudentEmails() []string {
	parts := strings.Split(c.SeedStudentEmails, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
