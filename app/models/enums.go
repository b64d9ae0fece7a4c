package models

// ProjectStatus defines the possible lifecycle states of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCancelled ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s is a recognized project status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold, ProjectCancelled:
		return true
	}
	return false
}

// ExpenseStatus defines the status of an expense record.
type ExpenseStatus string

const (
	ExpensePending   ExpenseStatus = "pending"
	ExpenseApproved  ExpenseStatus = "approved"
	ExpensePaid      ExpenseStatus = "paid"
	ExpenseCancelled ExpenseStatus = "cancelled"
)

// FieldType defines the kinds a dynamic field can take.
type FieldType string

const (
	FieldText       FieldType = "text"
	FieldNumber     FieldType = "number"
	FieldDate       FieldType = "date"
	FieldSelect     FieldType = "select"
	FieldCalculated FieldType = "calculated"
	FieldURL        FieldType = "url"
	FieldPhone      FieldType = "phone"
)

// ValidFieldType reports whether t is one of the seven recognized kinds.
func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldText, FieldNumber, FieldDate, FieldSelect, FieldCalculated, FieldURL, FieldPhone:
		return true
	}
	return false
}
