package bolt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/perillat/noteshare/auth/testutil"
)

func createDriver(t *testing.T) (*Driver, func()) {
	dir, err := os.MkdirTemp("", "noteshare")
	if err != nil {
		t.Fatal("could not create temp dir:", err)
	}

	driver := &Driver{}
	if err := driver.Open(filepath.Join(dir, "noteshare.db")); err != nil {
		t.Fatal("could not open db:", err)
	}

	return driver, func() {
		driver.Close()
		os.RemoveAll(dir)
	}
}

func TestUserRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	repo, err := NewUserRepository(driver)
	if err != nil {
		t.Fatal("could not create repository:", err)
	}

	testutil.TestUserRepository(t, repo)
}
