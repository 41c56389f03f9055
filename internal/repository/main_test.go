package repository_test

import (
	"os"
	"testing"

	"landing-page-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
