package access

import (
	"testing"

	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/reports"
)

func TestCanManageReport(t *testing.T) {
	t.Parallel()

	r := reports.Report{ID: 1, UserID: 7, Status: reports.StatusOpen}

	if !CanManageReport(7, r) {
		t.Fatal("owner should manage their report")
	}
	if CanManageReport(8, r) {
		t.Fatal("non-owner must not manage a report")
	}
	if CanManageReport(0, r) {
		t.Fatal("anonymous must not manage a report")
	}
}

func TestCapabilitiesFor(t *testing.T) {
	t.Parallel()

	open := reports.Report{ID: 1, UserID: 7, Status: reports.StatusOpen}
	resolved := reports.Report{ID: 2, UserID: 7, Status: reports.StatusResolved}

	got := CapabilitiesFor(7, open)
	if len(got) != 2 || got[0] != "resolve" || got[1] != "delete" {
		t.Fatalf("owner of open report: got %v", got)
	}

	got = CapabilitiesFor(7, resolved)
	if len(got) != 1 || got[0] != "delete" {
		t.Fatalf("owner of resolved report: got %v", got)
	}

	if got := CapabilitiesFor(8, open); len(got) != 0 {
		t.Fatalf("non-owner: got %v", got)
	}
}
