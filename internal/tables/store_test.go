package tables

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"starforge-server/internal/procgen"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewStoreDefaults(t *testing.T) {
	store, err := NewStore("", testLogger())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	snapshot := store.Current()
	if snapshot.Version != 1 {
		t.Errorf("initial version = %d, want 1", snapshot.Version)
	}
	if err := snapshot.Tables.Validate(); err != nil {
		t.Errorf("initial tables invalid: %v", err)
	}
}

func TestSetBodyTypeWeightPublishesNewVersion(t *testing.T) {
	store, err := NewStore("", testLogger())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	before := store.Current()

	after, err := store.SetBodyTypeWeight(procgen.BodyTypeGasGiant, 0.5)
	if err != nil {
		t.Fatalf("SetBodyTypeWeight: %v", err)
	}

	if after.Version != before.Version+1 {
		t.Errorf("version = %d, want %d", after.Version, before.Version+1)
	}
	if store.Current() != after {
		t.Error("current snapshot is not the published one")
	}

	sum := 0.0
	for _, e := range after.Tables.BodyTypes {
		sum += e.Weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %v after edit, want 1.0", sum)
	}

	// The edit must not have leaked into the snapshot handed out earlier.
	beforeSum := 0.0
	for _, e := range before.Tables.BodyTypes {
		beforeSum += e.Weight
	}
	if math.Abs(beforeSum-1.0) > 1e-9 {
		t.Errorf("previous snapshot mutated: weights sum to %v", beforeSum)
	}
}

func TestRejectedEditLeavesSnapshotUntouched(t *testing.T) {
	store, err := NewStore("", testLogger())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	before := store.Current()

	if _, err := store.SetBodyTypeWeight(procgen.BodyTypeIce, 2.0); err == nil {
		t.Fatal("out-of-range weight accepted")
	}
	if _, err := store.SetBodyTypeWeight(procgen.BodyType("crystal"), 0.2); err == nil {
		t.Fatal("unknown body type accepted")
	}

	if store.Current() != before {
		t.Error("rejected edits changed the current snapshot")
	}
}

func TestReplaceValidates(t *testing.T) {
	store, err := NewStore("", testLogger())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	broken := procgen.DefaultTables()
	broken.BodyTypes[0].Weight = 2.0
	if _, err := store.Replace(broken); err == nil {
		t.Fatal("Replace accepted invalid tables")
	}

	valid := procgen.DefaultTables()
	snapshot, err := store.Replace(valid)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if snapshot.Version != 2 {
		t.Errorf("version after replace = %d, want 2", snapshot.Version)
	}

	// Replace clones; mutating the caller's tables must not reach the store.
	valid.BodyTypes[0].Weight = 0.99
	if store.Current().Tables.BodyTypes[0].Weight == 0.99 {
		t.Error("Replace stored an aliased tables value")
	}
}
