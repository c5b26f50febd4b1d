package accounts

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	approvedFlagTrue = "1"

	// Admin rows end with a fixed placeholder date in the legacy format.
	adminPlaceholderDate = "2024-01-01"

	// A record needs at least the identity fields to be considered at all,
	// and all thirteen fields to be reconstructed as an employee.
	minRecordFields      = 5
	employeeRecordFields = 13
)

// SearchField selects which employee attribute Search matches against.
type SearchField int

const (
	SearchByName SearchField = iota + 1
	SearchByPosition
	SearchByDepartment
)

// SortKey selects the ordering of SortedEmployees.
type SortKey int

const (
	SortByName SortKey = iota + 1
	SortByBonus
	SortByExperience
	SortByDepartment
)
