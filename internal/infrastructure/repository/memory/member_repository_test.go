package memory

import (
	"testing"

	"github.com/rainesports/site-api/internal/domain/roster"
)

func TestMemberRepository_SeededRosterIsActive(t *testing.T) {
	repo := NewMemberRepository(SeedMembers())

	members, err := repo.ListActive(t.Context())
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("got %d members, want 3", len(members))
	}
	if members[0].ID != 1 || members[0].Name != "StormRider" {
		t.Fatalf("unexpected first member: %+v", members[0])
	}
}

func TestMemberRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemberRepository(nil)

	first, err := repo.Create(t.Context(), roster.NewMember{Name: "Alpha", Role: "Fragger"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := repo.Create(t.Context(), roster.NewMember{Name: "Bravo", Role: "Support"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids %d and %d, want 1 and 2", first.ID, second.ID)
	}
	if !first.IsActive {
		t.Fatal("new member should default to active")
	}
}

func TestMemberRepository_ListActiveExcludesInactive(t *testing.T) {
	repo := NewMemberRepository(nil)
	inactive := false

	if _, err := repo.Create(t.Context(), roster.NewMember{Name: "Alpha"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	benched, err := repo.Create(t.Context(), roster.NewMember{Name: "Bravo", IsActive: &inactive})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	members, err := repo.ListActive(t.Context())
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(members) != 1 || members[0].Name != "Alpha" {
		t.Fatalf("unexpected active roster: %+v", members)
	}

	// The inactive member stays addressable by id.
	got, ok, err := repo.GetByID(t.Context(), benched.ID)
	if err != nil || !ok {
		t.Fatalf("get inactive member: ok=%v err=%v", ok, err)
	}
	if got.IsActive {
		t.Fatal("benched member should be inactive")
	}
}

func TestMemberRepository_GetByID_Missing(t *testing.T) {
	repo := NewMemberRepository(SeedMembers())

	_, ok, err := repo.GetByID(t.Context(), 99)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unknown id")
	}
}
