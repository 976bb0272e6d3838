package migrations_test

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/JaimeStill/design-lab/internal/migrations"
)

func TestSource_PairedMigrations(t *testing.T) {
	src, err := migrations.Source()
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}
	defer src.Close()

	version, err := src.First()
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}

	count := 0
	for {
		count++

		up, _, err := src.ReadUp(version)
		if err != nil {
			t.Fatalf("ReadUp(%d) error = %v", version, err)
		}
		body, _ := io.ReadAll(up)
		up.Close()
		if len(body) == 0 {
			t.Errorf("migration %d up is empty", version)
		}

		down, _, err := src.ReadDown(version)
		if err != nil {
			t.Fatalf("ReadDown(%d) error = %v", version, err)
		}
		down.Close()

		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			t.Fatalf("Next(%d) error = %v", version, err)
		}
		version = next
	}

	if count != 3 {
		t.Errorf("migrations = %d, want 3", count)
	}
}
