package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(ParseError, "malformed ID", nil)
	want := "[PARSE_ERROR] malformed ID"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	cause := fmt.Errorf("strconv: invalid syntax")
	wrapped := New(ParseError, "malformed ID", cause)
	if !strings.Contains(wrapped.Error(), "invalid syntax") {
		t.Errorf("expected cause in %q", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := New(DatasetMissing, "cannot open file", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"typed error", NewMissingImpact(1, "vegetable"), MissingImpact},
		{"wrapped typed error", fmt.Errorf("context: %w", NewCycle([]int{1, 2, 1})), CycleDetected},
		{"plain error", fmt.Errorf("boom"), InternalError},
		{"nil", nil, InternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNewUnresolvedParent(t *testing.T) {
	err := NewUnresolvedParent(42, "onion")
	if err.Code != UnresolvedParent {
		t.Errorf("expected code %s, got %s", UnresolvedParent, err.Code)
	}
	// The message names both the missing id and the node
	if !strings.Contains(err.Message, "42") || !strings.Contains(err.Message, "onion") {
		t.Errorf("expected id and name in %q", err.Message)
	}
}

func TestSuggestedFixes(t *testing.T) {
	err := NewCycle([]int{1, 2, 1})
	if len(err.SuggestedFixes) == 0 {
		t.Error("expected suggested fixes for cycle errors")
	}
	if GetSuggestedFixes(InternalError) != nil {
		t.Error("expected no fixes for internal errors")
	}
}
