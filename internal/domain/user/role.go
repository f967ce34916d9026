package user

type Role string

const (
	// RoleStaff can submit their own clock events and read their own records.
	RoleStaff Role = "staff"
	// RoleManager can approve attendance and run payroll for their own store.
	RoleManager Role = "manager"
	// RoleHeadOffice sees every store, including the head-office aggregate.
	RoleHeadOffice Role = "head_office"
)

var RoleValues = []string{
	string(RoleStaff),
	string(RoleManager),
	string(RoleHeadOffice),
}

// CanAccessStore reports whether a caller with the given role and assigned
// store may act on records of targetStoreID.
func CanAccessStore(role Role, assignedStoreID, targetStoreID string) bool {
	if role == RoleHeadOffice {
		return true
	}
	return assignedStoreID == targetStoreID
}
