package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&Admin{}, &Section{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := gdb.Exec("DELETE FROM sections").Error; err != nil {
		t.Fatalf("failed to reset sections: %v", err)
	}
	if err := gdb.Exec("DELETE FROM admins").Error; err != nil {
		t.Fatalf("failed to reset admins: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func TestSeedSectionsCreatesInitialSet(t *testing.T) {
	gdb := setupTestDB(t)

	if err := SeedSections(gdb); err != nil {
		t.Fatalf("SeedSections returned error: %v", err)
	}

	sections, err := ListOrderedSections(gdb)
	if err != nil {
		t.Fatalf("ListOrderedSections returned error: %v", err)
	}
	if len(sections) != 6 {
		t.Fatalf("expected 6 seeded sections, got %d", len(sections))
	}
	for i, section := range sections {
		if section.Position != i+1 {
			t.Fatalf("expected position %d at index %d, got %d", i+1, i, section.Position)
		}
		if section.ImagePath != "" || section.VideoPath != "" {
			t.Fatalf("expected seeded section %d to carry no assets", section.ID)
		}
	}
}

func TestSeedSectionsIsIdempotent(t *testing.T) {
	gdb := setupTestDB(t)

	if err := SeedSections(gdb); err != nil {
		t.Fatalf("first seed returned error: %v", err)
	}
	if err := SeedSections(gdb); err != nil {
		t.Fatalf("second seed returned error: %v", err)
	}

	var count int64
	gdb.Model(&Section{}).Count(&count)
	if count != 6 {
		t.Fatalf("expected 6 sections after double seed, got %d", count)
	}
}

func TestListOrderedSectionsSortsByPositionThenID(t *testing.T) {
	gdb := setupTestDB(t)

	inserts := []Section{
		{Content: "third", Position: 5},
		{Content: "first", Position: 1},
		{Content: "second-a", Position: 3},
		{Content: "second-b", Position: 3},
	}
	for i := range inserts {
		if err := gdb.Create(&inserts[i]).Error; err != nil {
			t.Fatalf("failed to insert section: %v", err)
		}
	}

	sections, err := ListOrderedSections(gdb)
	if err != nil {
		t.Fatalf("ListOrderedSections returned error: %v", err)
	}

	got := make([]string, 0, len(sections))
	for _, section := range sections {
		got = append(got, section.Content)
	}

	want := []string{"first", "second-a", "second-b", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
