package repository

import (
	"testing"

	"github.com/yaodan-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRecordRepositoryTest(t *testing.T) *GormRecordRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Record{}); err != nil {
		t.Fatalf("migrate records failed: %v", err)
	}
	return NewRecordRepository(db)
}

func TestRecordRepositoryGetByKeyMissing(t *testing.T) {
	repo := setupRecordRepositoryTest(t)

	record, err := repo.GetByKey("quick_items")
	if err != nil {
		t.Fatalf("get missing key failed: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record for missing key, got %+v", record)
	}
}

func TestRecordRepositoryUpsertCreateThenUpdate(t *testing.T) {
	repo := setupRecordRepositoryTest(t)

	created, err := repo.Upsert("store_profile", models.RawJSON(`{"contact_phone":"02-1234"}`))
	if err != nil {
		t.Fatalf("upsert create failed: %v", err)
	}
	if created == nil || created.Key != "store_profile" {
		t.Fatalf("unexpected created record: %+v", created)
	}

	updated, err := repo.Upsert("store_profile", models.RawJSON(`{"contact_phone":"02-5678"}`))
	if err != nil {
		t.Fatalf("upsert update failed: %v", err)
	}
	if string(updated.ValueJSON) != `{"contact_phone":"02-5678"}` {
		t.Fatalf("unexpected updated value: %s", string(updated.ValueJSON))
	}

	fetched, err := repo.GetByKey("store_profile")
	if err != nil {
		t.Fatalf("get after upsert failed: %v", err)
	}
	if fetched == nil || string(fetched.ValueJSON) != `{"contact_phone":"02-5678"}` {
		t.Fatalf("unexpected fetched record: %+v", fetched)
	}
}

func TestRecordRepositoryStoresArrays(t *testing.T) {
	repo := setupRecordRepositoryTest(t)

	payload := models.RawJSON(`[{"name":"阿莫西林胶囊","unit":"盒"}]`)
	if _, err := repo.Upsert("quick_items", payload); err != nil {
		t.Fatalf("upsert array failed: %v", err)
	}

	fetched, err := repo.GetByKey("quick_items")
	if err != nil {
		t.Fatalf("get array record failed: %v", err)
	}
	if fetched == nil || string(fetched.ValueJSON) != string(payload) {
		t.Fatalf("unexpected array value: %+v", fetched)
	}
}
