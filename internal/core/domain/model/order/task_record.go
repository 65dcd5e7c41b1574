package order

import (
	"errors"

	"officeorder/internal/pkg/errs"
)

var (
	// ErrTaskRecordIsNotConstructed is returned when a TaskRecord instance was
	// not created through NewTaskRecord or RestoreTaskRecord. This ensures all
	// records are properly validated.
	ErrTaskRecordIsNotConstructed = errors.New(
		"TaskRecord must be created via NewTaskRecord or RestoreTaskRecord constructor",
	)
)

// TaskRecord is the identity and lifecycle anchor for one office order. It is
// the aggregate root governing the draft/submit/delete state machine.
//
// TaskRecord follows these invariants:
//   - CoverPageNo is the stable business key for the life of the order
//   - EmployeeID identifies the employee the order concerns
//   - TaskID is nil until the registry mints one on first save
//   - ProcessID defaults to 1 and falls back to 1 when a re-lookup cannot
//     resolve it
//   - Status transitions follow the New -> Draft -> Submitted / Deleted
//     machine defined by Status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. A record created when a visit row is
// first opened starts in New with no task identity; identity is populated
// lazily by a lookup the first time it is needed.
type TaskRecord struct {
	coverPageNo  string
	employeeID   string
	taskID       *int64
	processID    int64
	taskStatusID int64
	status       Status
	processType  ProcessType

	isConstructed bool
}

// NewTaskRecord creates a TaskRecord for a freshly opened visit record.
// The record starts in New status with process id 1 and no task id.
func NewTaskRecord(coverPageNo, employeeID string, processType ProcessType) (*TaskRecord, error) {
	record := &TaskRecord{
		processID:     1,
		status:        New,
		processType:   processType,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setCoverPageNo(coverPageNo),
		record.setEmployeeID(employeeID),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreTaskRecord reconstructs a TaskRecord from persistence. The status
// must be valid; identity fields are taken as stored.
func RestoreTaskRecord(
	coverPageNo, employeeID string,
	taskID *int64,
	processID int64,
	taskStatusID int64,
	status Status,
	processType ProcessType,
) (*TaskRecord, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if processID <= 0 {
		processID = 1
	}

	record := &TaskRecord{
		taskID:        taskID,
		processID:     processID,
		taskStatusID:  taskStatusID,
		status:        status,
		processType:   processType,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setCoverPageNo(coverPageNo),
		record.setEmployeeID(employeeID),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the TaskRecord instance was properly constructed.
func (r *TaskRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrTaskRecordIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by their business key.
func (r *TaskRecord) IsEqual(other *TaskRecord) bool {
	return other != nil && r.coverPageNo == other.coverPageNo
}

// CoverPageNo returns the stable business key of the order.
func (r *TaskRecord) CoverPageNo() string {
	return r.coverPageNo
}

// EmployeeID returns the id of the employee the order concerns.
func (r *TaskRecord) EmployeeID() string {
	return r.employeeID
}

// TaskID returns the registry-minted task id, or nil before the first save.
func (r *TaskRecord) TaskID() *int64 {
	return r.taskID
}

// ProcessID returns the registry process id (1 until resolved otherwise).
func (r *TaskRecord) ProcessID() int64 {
	return r.processID
}

// TaskStatusID returns the numeric status code from the last transition.
func (r *TaskRecord) TaskStatusID() int64 {
	return r.taskStatusID
}

// Status returns the current lifecycle status.
func (r *TaskRecord) Status() Status {
	return r.status
}

// ProcessType returns the record's process type.
func (r *TaskRecord) ProcessType() ProcessType {
	return r.processType
}

// SetIdentity records the task/process identity resolved by a registry
// lookup. A save may mint a new task id, so identity is re-resolved after
// every successful save. An unresolved process id falls back to 1; this is
// the only lookup result the record is allowed to guess.
func (r *TaskRecord) SetIdentity(taskID *int64, processID int64) {
	r.taskID = taskID
	if processID <= 0 {
		processID = 1
	}
	r.processID = processID
}

// MarkDraftSaved transitions the record to Draft after a successful
// save-and-hold, recording the resolved numeric status code.
//
// Valid from New (first save) and Draft (re-save).
func (r *TaskRecord) MarkDraftSaved(taskStatusID int64) error {
	newStatus, err := r.status.SaveDraft()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.taskStatusID = taskStatusID
	return nil
}

// MarkSubmitted transitions the record to Submitted after a successful
// submit, recording the resolved "ongoing" status code.
func (r *TaskRecord) MarkSubmitted(taskStatusID int64) error {
	newStatus, err := r.status.Submit()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.taskStatusID = taskStatusID
	return nil
}

// MarkDeleted transitions the record to Deleted after a successful status
// update. Deleted is a soft state; the registry never physically removes
// the record.
func (r *TaskRecord) MarkDeleted(taskStatusID int64) error {
	newStatus, err := r.status.Delete()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.taskStatusID = taskStatusID
	return nil
}

func (r *TaskRecord) setCoverPageNo(coverPageNo string) error {
	if coverPageNo == "" {
		return errs.NewValueIsRequiredError("cover page number")
	}
	r.coverPageNo = coverPageNo
	return nil
}

func (r *TaskRecord) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return errs.NewValueIsRequiredError("employee id")
	}
	r.employeeID = employeeID
	return nil
}
