package integration

import (
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/tgoubier/moments-ms-go/internal/migration"
	"github.com/tgoubier/moments-ms-go/test/testutil"
)

func TestMigrateUpIntegration(t *testing.T) {
	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer testDB.Cleanup()

	db := testDB.DB

	// Run migrations
	if err := migration.MigrateUp(db); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}

	// Give some time for migration to finalize
	time.Sleep(100 * time.Millisecond)

	// Both tables must exist and be empty
	for _, table := range []string{"videos", "video_moments"} {
		recs := 0
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&recs); err != nil {
			t.Fatalf("failed to query migrated table %q: %v", table, err)
		}
		if recs != 0 {
			t.Errorf("expected 0 rows in %q after migration, got %d", table, recs)
		}
	}

	// The vector extension must be installed for the embedding column
	var ext int
	if err := db.QueryRow("SELECT COUNT(*) FROM pg_extension WHERE extname = 'vector'").Scan(&ext); err != nil {
		t.Fatalf("failed to query pg_extension: %v", err)
	}
	if ext != 1 {
		t.Errorf("expected the vector extension to be installed")
	}
}
