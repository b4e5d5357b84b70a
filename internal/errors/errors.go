package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this username"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidStateError is returned when an operation is illegal for the current state of an entity
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UnauthorizedError represents a credential mismatch
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// ForbiddenError is returned when the actor lacks authority over a specific entity
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// TransactionError reports that an atomic multi-step operation failed and was rolled back
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed and was rolled back", e.Op)
	}
	return fmt.Sprintf("%s failed and was rolled back: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound                 = &NotFoundError{Entity: "user"}
	ErrShiftNotFound                = &NotFoundError{Entity: "shift"}
	ErrActiveShiftNotFound          = &NotFoundError{Entity: "active shift"}
	ErrGroupNotFound                = &NotFoundError{Entity: "shift group"}
	ErrEmployeeNotFound             = &NotFoundError{Entity: "employee"}
	ErrPositionNotFound             = &NotFoundError{Entity: "position"}
	ErrAttendanceNotFound           = &NotFoundError{Entity: "attendance record"}
	ErrMembershipNotFound           = &NotFoundError{Entity: "group membership"}
	ErrEquipmentNotFound            = &NotFoundError{Entity: "equipment"}
	ErrTankNotFound                 = &NotFoundError{Entity: "tank"}
	ErrScheduledTaskNotFound        = &NotFoundError{Entity: "scheduled task"}
	ErrOperationalParameterNotFound = &NotFoundError{Entity: "operational parameter"}
	ErrMaintenanceTicketNotFound    = &NotFoundError{Entity: "maintenance ticket"}
	ErrLicenseNotFound              = &NotFoundError{Entity: "license"}
	ErrReportNotFound               = &NotFoundError{Entity: "closed shift report"}
)

// Already Exists Errors
var (
	ErrUserExists                 = &AlreadyExistsError{Entity: "user", Context: "with this username or badge id"}
	ErrEmployeeExists             = &AlreadyExistsError{Entity: "employee", Context: "with this badge id"}
	ErrPositionExists             = &AlreadyExistsError{Entity: "position", Context: "with this name"}
	ErrGroupExists                = &AlreadyExistsError{Entity: "shift group", Context: "with this name"}
	ErrMembershipExists           = &AlreadyExistsError{Entity: "group membership", Context: ""}
	ErrOperationalParameterExists = &AlreadyExistsError{Entity: "operational parameter", Context: "with this name"}
	ErrLicenseExists              = &AlreadyExistsError{Entity: "license", Context: "with this license number"}
	ErrTankExists                 = &AlreadyExistsError{Entity: "tank", Context: "with this name"}
)

// Shift State Errors
var (
	ErrShiftClosed       = &InvalidStateError{Message: "shift is already closed"}
	ErrShiftAlreadyOpen  = &InvalidStateError{Message: "another shift is already open"}
	ErrGroupInUse        = &InvalidStateError{Message: "shift group is referenced by existing shifts"}
	ErrLicenseClosed     = &InvalidStateError{Message: "license is already closed"}
	ErrEmployeeReference = &InvalidStateError{Message: "employee is referenced by attendance records"}
	ErrEquipmentInUse    = &InvalidStateError{Message: "equipment is referenced by shift logs or tickets"}
	ErrTankInUse         = &InvalidStateError{Message: "tank is referenced by shift readings"}
)

// Authorization Errors
var (
	ErrNotShiftHolder             = &ForbiddenError{Message: "only the current shift holder may perform this operation"}
	ErrInsufficientRole           = &ForbiddenError{Message: "insufficient role for this operation"}
	ErrInvalidCredentials         = &UnauthorizedError{Message: "invalid username or password"}
	ErrInvalidOutgoingCredentials = &UnauthorizedError{Message: "outgoing operator credentials are invalid"}
	ErrInvalidIncomingCredentials = &UnauthorizedError{Message: "incoming operator credentials are invalid"}
)

// Configuration Errors
var (
	ErrMalformedPasswordHash = &ConfigurationError{Message: "stored password hash is malformed"}
	ErrInvalidShiftCalendar  = &ConfigurationError{Message: "SHIFTS_PER_DAY must evenly divide 24 hours"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUnauthorized checks if an error is an UnauthorizedError
func IsUnauthorized(err error) bool {
	var authErr *UnauthorizedError
	return errors.As(err, &authErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsTransaction checks if an error is a TransactionError
func IsTransaction(err error) bool {
	var txErr *TransactionError
	return errors.As(err, &txErr)
}

// IsDomain reports whether err belongs to the domain taxonomy and should reach the caller unchanged
func IsDomain(err error) bool {
	return IsNotFound(err) || IsAlreadyExists(err) || IsInvalidState(err) ||
		IsValidation(err) || IsUnauthorized(err) || IsForbidden(err)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(message string) error {
	return &UnauthorizedError{Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewTransactionError wraps the cause of a rolled back operation
func NewTransactionError(op string, err error) error {
	return &TransactionError{Op: op, Err: err}
}
