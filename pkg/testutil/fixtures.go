package testutil

// Fixed identifiers for deterministic testing.
const (
	TestTenantID  = "00000000-0000-0000-0000-000000000010"
	TestStudentID = "00000000-0000-0000-0000-000000000020"
	TestUserID    = "00000000-0000-0000-0000-000000000001"
)
