package core

import (
	"github.com/google/uuid"
)

// reportNamespace scopes report IDs so they never collide with other SHA-1 UUIDs.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("smokestat/report"))

// ReportID identifies one rendering of the analysis. It is derived from the
// input hash, so the same data always yields the same ID.
type ReportID string

// NewReportID derives the ID for a table hash
func NewReportID(h Hash) ReportID {
	return ReportID(uuid.NewSHA1(reportNamespace, []byte(h)).String())
}

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ReportID) IsEmpty() bool {
	return id == ""
}
