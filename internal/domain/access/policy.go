package access

import (
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/reports"
)

/*
	Report ownership policy
	-----------------------
	- Responsible ONLY for:
	  • deciding who may mutate a report
	  • listing the actions a requester may take on it
	- No persistence, no HTTP here
*/

// CanManageReport is the single owner rule: only the user who created a
// report may resolve or delete it.
func CanManageReport(requesterID uint, r reports.Report) bool {
	return requesterID != 0 && r.UserID == requesterID
}

// CapabilitiesFor lists the actions requesterID may take on r.
func CapabilitiesFor(requesterID uint, r reports.Report) []string {
	if !CanManageReport(requesterID, r) {
		return []string{}
	}
	if r.Status == reports.StatusResolved {
		return []string{"delete"}
	}
	return []string{"resolve", "delete"}
}
