package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ParseError indicates a malformed field in a raw dataset row
	ParseError ErrorCode = "PARSE_ERROR"
	// UnresolvedParent indicates a food class declares a parent id absent from the dataset
	UnresolvedParent ErrorCode = "UNRESOLVED_PARENT"
	// MissingImpact indicates a resolution chain ends without any direct impact value
	MissingImpact ErrorCode = "MISSING_IMPACT"
	// CycleDetected indicates the parent graph contains a cycle
	CycleDetected ErrorCode = "CYCLE_DETECTED"
	// DatasetMissing indicates an input file could not be opened
	DatasetMissing ErrorCode = "DATASET_MISSING"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Command     string `json:"command,omitempty"`
	Description string `json:"description,omitempty"`
}

// Error represents a foodprint error with code, message, and suggestions
type Error struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// CodeOf extracts the error code from err, or InternalError if err is not an *Error
func CodeOf(err error) ErrorCode {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return InternalError
}

// NewParseError creates a ParseError for a malformed field value
func NewParseError(field, value string, cause error) *Error {
	return New(ParseError, fmt.Sprintf("malformed %s value %q", field, value), cause)
}

// NewUnresolvedParent creates an UnresolvedParent error for a dangling parent id.
// The parent may not be loaded or is not a valid food class id.
func NewUnresolvedParent(parentID int, nodeName string) *Error {
	return New(UnresolvedParent,
		fmt.Sprintf("parent id %d not resolved for food class %q", parentID, nodeName), nil).
		WithDetails(map[string]interface{}{"parentId": parentID, "foodClass": nodeName})
}

// NewMissingImpact creates a MissingImpact error for a chain with no impact value
func NewMissingImpact(nodeID int, nodeName string) *Error {
	return New(MissingImpact,
		fmt.Sprintf("no impact found for food class %q (id %d)", nodeName, nodeID), nil).
		WithDetails(map[string]interface{}{"id": nodeID, "foodClass": nodeName})
}

// NewCycle creates a CycleDetected error for a cyclic parent chain
func NewCycle(path []int) *Error {
	return New(CycleDetected,
		fmt.Sprintf("parent chain contains a cycle: %v", path), nil).
		WithDetails(map[string]interface{}{"path": path})
}

// NewDatasetMissing creates a DatasetMissing error for an unreadable input file
func NewDatasetMissing(path string, cause error) *Error {
	return New(DatasetMissing, fmt.Sprintf("cannot open dataset file %q", path), cause)
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	DatasetMissing: {
		{
			Command:     "foodprint calc --food-classes-file=<path> --recipes-file=<path>",
			Description: "Point foodprint at the CSV files explicitly",
		},
	},
	UnresolvedParent: {
		{
			Command:     "foodprint doctor",
			Description: "List dangling parent ids in the classification dataset",
		},
	},
	MissingImpact: {
		{
			Command:     "foodprint doctor",
			Description: "List classification chains without an impact value",
		},
	},
	CycleDetected: {
		{
			Command:     "foodprint doctor",
			Description: "Show the cyclic parent chain",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
