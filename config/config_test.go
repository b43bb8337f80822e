package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "APP_ENV", "SEED_TEACHER_ID", "SEED_STUDENT_EMAILS", "SEED_PRINT_RECORDS", "MAX_ENROL_BATCH", "SEED_PRINT_ROLE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "user-record", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "t1", cfg.SeedTeacherID)
	assert.True(t, cfg.SeedPrintRecords)
	assert.Equal(t, 200, cfg.MaxEnrolBatch)
	assert.Empty(t, cfg.SeedPrintRole)
	assert.Equal(t, []string{"ana@example.com", "luis@example.com"}, cfg.StudentEmails())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_STUDENT_EMAILS", " a@x.io, ,b@x.io ,")
	t.Setenv("SEED_PRINT_RECORDS", "false")
	t.Setenv("MAX_ENROL_BATCH", "5")
	t.Setenv("SEED_PRINT_ROLE", "student")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"a@x.io", "b@x.io"}, cfg.StudentEmails())
	assert.False(t, cfg.SeedPrintRecords)
	assert.Equal(t, 5, cfg.MaxEnrolBatch)
	assert.Equal(t, "student", cfg.SeedPrintRole)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SEED_PRINT_RECORDS", "maybe")
	t.Setenv("MAX_ENROL_BATCH", "lots")

	cfg := Load()

	assert.True(t, cfg.SeedPrintRecords)
	assert.Equal(t, 200, cfg.MaxEnrolBatch)
}
