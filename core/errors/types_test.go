package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound_Message(t *testing.T) {
	err := NotFound("polytrack", "")

	expected := "Game not found: polytrack"
	if err.Message != expected {
		t.Errorf("NotFound().Message = %v, want %v", err.Message, expected)
	}
	if err.Code != CodeNotFound {
		t.Errorf("NotFound().Code = %v, want %v", err.Code, CodeNotFound)
	}
	if err.Details["slug"] != "polytrack" {
		t.Errorf("NotFound().Details[slug] = %v, want polytrack", err.Details["slug"])
	}
}

func TestNotFound_CustomKind(t *testing.T) {
	err := NotFound("polytrack", "Main game")

	expected := "Main game not found: polytrack"
	if err.Message != expected {
		t.Errorf("NotFound().Message = %v, want %v", err.Message, expected)
	}
}

func TestValidation_Details(t *testing.T) {
	err := Validation("iframe_url", "http://example.com", "is required and must use HTTPS")

	if err.Code != CodeValidation {
		t.Errorf("Code = %v, want %v", err.Code, CodeValidation)
	}
	if err.Message != "Game iframe_url is required and must use HTTPS" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Details["field"] != "iframe_url" {
		t.Errorf("Details[field] = %v, want iframe_url", err.Details["field"])
	}
	if err.Details["value"] != "http://example.com" {
		t.Errorf("Details[value] = %v, want http://example.com", err.Details["value"])
	}
}

func TestGraphQL_KeepsAllErrors(t *testing.T) {
	all := []string{"first", "second"}
	err := GraphQL("first", all)

	if err.Code != CodeGraphQL {
		t.Errorf("Code = %v, want %v", err.Code, CodeGraphQL)
	}
	got, ok := err.Details["errors"].([]string)
	if !ok || len(got) != 2 {
		t.Errorf("Details[errors] = %v, want both errors", err.Details["errors"])
	}
}

func TestAPIError_Error(t *testing.T) {
	err := Network("Request timeout", map[string]interface{}{"timeout": 10000})

	expected := "NETWORK_ERROR: Request timeout"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", NotFound("x", ""), IsNotFound, true},
		{"validation", Validation("slug", "", "is required"), IsValidation, true},
		{"network", Network("boom", nil), IsNetwork, true},
		{"graphql", GraphQL("bad", nil), IsGraphQL, true},
		{"network is not graphql", Network("boom", nil), IsGraphQL, false},
		{"plain error", errors.New("some other error"), IsNotFound, false},
		{"nil error", nil, IsNetwork, false},
		{"wrapped", fmt.Errorf("context: %w", NotFound("x", "")), IsNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("predicate(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	original := Network("boom", nil)
	wrapped := WrapError(original, "fetching main game")

	if wrapped.Error() != "fetching main game: NETWORK_ERROR: boom" {
		t.Errorf("WrapError() = %v", wrapped.Error())
	}
	if !errors.Is(wrapped, original) {
		t.Error("wrapped error should unwrap to the original")
	}
}
