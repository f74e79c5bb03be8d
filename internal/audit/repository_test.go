package audit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/p0sel0k/hw3/internal/infrastructure/database"
	_ "github.com/p0sel0k/hw3/migrations"
)

// newTestRepository returns a journal over a migrated in-memory database.
func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := database.Open(database.Config{Path: database.MemoryPath, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() }) //nolint:errcheck // Test cleanup

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewSQLiteRepository(db.DB)
}

func TestCreate_GeneratesDefaults(t *testing.T) {
	repo := newTestRepository(t)
	entry := &Entry{
		Action:     ActionAddRoom,
		EntityType: EntityRoom,
		EntityName: "first",
		Room:       "first",
	}

	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !strings.HasPrefix(entry.ID, "aud-") || len(entry.ID) != len("aud-")+8 {
		t.Errorf("ID = %q, want aud- followed by 8 characters", entry.ID)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want generated timestamp")
	}
	if entry.Outcome != OutcomeSuccess {
		t.Errorf("Outcome = %q, want %q", entry.Outcome, OutcomeSuccess)
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	created := time.Date(2026, 10, 19, 12, 0, 0, 123456789, time.UTC)

	entry := &Entry{
		Action:     ActionSwitchDevice,
		EntityType: EntityDevice,
		EntityName: "t1",
		Room:       "first",
		Outcome:    OutcomeFailure,
		Error:      "device: can't be switched on or off",
		Details:    map[string]any{"kind": "thermometer"},
		CreatedAt:  created,
	}
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	result, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Total != 1 || len(result.Entries) != 1 {
		t.Fatalf("List() total = %d, entries = %d, want 1", result.Total, len(result.Entries))
	}

	got := result.Entries[0]
	if got.ID != entry.ID {
		t.Errorf("ID = %q, want %q", got.ID, entry.ID)
	}
	if got.Outcome != OutcomeFailure || got.Error != entry.Error {
		t.Errorf("Outcome/Error = %q/%q, want %q/%q", got.Outcome, got.Error, OutcomeFailure, entry.Error)
	}
	if got.Details["kind"] != "thermometer" {
		t.Errorf("Details[kind] = %v, want thermometer", got.Details["kind"])
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestList_Filters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	seed := []Entry{
		{Action: ActionAddRoom, EntityType: EntityRoom, EntityName: "first", Room: "first"},
		{Action: ActionAddRoom, EntityType: EntityRoom, EntityName: "second", Room: "second"},
		{Action: ActionAddDevice, EntityType: EntityDevice, EntityName: "socket1", Room: "first"},
		{Action: ActionAddDevice, EntityType: EntityDevice, EntityName: "socket3", Room: "second"},
		{Action: ActionReport, EntityType: EntityHome, EntityName: "home", Outcome: OutcomeFailure},
	}
	for i := range seed {
		seed[i].CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	tests := []struct {
		name      string
		filter    Filter
		wantNames []string
	}{
		{"all newest first", Filter{}, []string{"home", "socket3", "socket1", "second", "first"}},
		{"by action", Filter{Action: ActionAddRoom}, []string{"second", "first"}},
		{"by entity type", Filter{EntityType: EntityDevice}, []string{"socket3", "socket1"}},
		{"by entity name", Filter{EntityName: "socket1"}, []string{"socket1"}},
		{"by room", Filter{Room: "second"}, []string{"socket3", "second"}},
		{"combined", Filter{Action: ActionAddDevice, Room: "first"}, []string{"socket1"}},
		{"no match", Filter{Room: "attic"}, []string{}},
		{"paged", Filter{Limit: 2, Offset: 1}, []string{"socket3", "socket1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			got := make([]string, 0, len(result.Entries))
			for _, e := range result.Entries {
				got = append(got, e.EntityName)
			}
			if strings.Join(got, ",") != strings.Join(tt.wantNames, ",") {
				t.Errorf("List() names = %v, want %v", got, tt.wantNames)
			}
		})
	}
}

func TestList_ClampsLimit(t *testing.T) {
	repo := newTestRepository(t)

	tests := []struct {
		in, want int
	}{
		{0, defaultLimit},
		{-5, defaultLimit},
		{500, maxLimit},
		{10, 10},
	}
	for _, tt := range tests {
		result, err := repo.List(context.Background(), Filter{Limit: tt.in, Offset: -1})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Limit != tt.want {
			t.Errorf("List(Limit: %d).Limit = %d, want %d", tt.in, result.Limit, tt.want)
		}
		if result.Offset != 0 {
			t.Errorf("List(Offset: -1).Offset = %d, want 0", result.Offset)
		}
		if result.Entries == nil {
			t.Error("Entries = nil, want empty slice")
		}
	}
}
