package errors

import (
	"errors"
	"testing"
)

func TestParseError(t *testing.T) {
	underlying := errors.New("unexpected token")
	err := NewParseError("Foo.cs", "csharp", underlying)

	if err.Type != ErrorTypeParse {
		t.Errorf("Expected Type to be ErrorTypeParse, got %v", err.Type)
	}
	if err.Path != "Foo.cs" {
		t.Errorf("Expected Path to be 'Foo.cs', got %s", err.Path)
	}
	if err.Language != "csharp" {
		t.Errorf("Expected Language to be 'csharp', got %s", err.Language)
	}
	if err.Underlying != underlying {
		t.Errorf("Expected Underlying to be the wrapped error")
	}

	wantMsg := "parse error (csharp) in Foo.cs: unexpected token"
	if err.Error() != wantMsg {
		t.Errorf("Expected Error() = %q, got %q", wantMsg, err.Error())
	}
	if !errors.Is(err, underlying) {
		t.Errorf("Expected errors.Is to unwrap to the underlying error")
	}
}

func TestParseError_NoPath(t *testing.T) {
	underlying := errors.New("bad grammar")
	err := NewParseError("", "java", underlying)

	wantMsg := "parse error (java): bad grammar"
	if err.Error() != wantMsg {
		t.Errorf("Expected Error() = %q, got %q", wantMsg, err.Error())
	}
}

func TestParseError_WithPath(t *testing.T) {
	underlying := errors.New("unexpected token")
	err := NewParseError("", "csharp", underlying).WithPath("Bar.cs")

	if err.Path != "Bar.cs" {
		t.Errorf("Expected Path to be 'Bar.cs', got %s", err.Path)
	}
}

func TestPreconditionError(t *testing.T) {
	err := NewPreconditionError("RemoveDependency", "Foo.Bar").WithRecoverable(true)

	if err.Type != ErrorTypePrecondition {
		t.Errorf("Expected Type to be ErrorTypePrecondition, got %v", err.Type)
	}
	if err.Operation != "RemoveDependency" {
		t.Errorf("Expected Operation to be 'RemoveDependency', got %s", err.Operation)
	}
	if err.MethodDisplay != "Foo.Bar" {
		t.Errorf("Expected MethodDisplay to be 'Foo.Bar', got %s", err.MethodDisplay)
	}
	if !err.IsRecoverable() {
		t.Errorf("Expected IsRecoverable to be true")
	}

	wantMsg := "precondition violated: RemoveDependency on Foo.Bar"
	if err.Error() != wantMsg {
		t.Errorf("Expected Error() = %q, got %q", wantMsg, err.Error())
	}
}

func TestFileError(t *testing.T) {
	underlying := errors.New("no such file or directory")
	err := NewFileError("read", "/path/to/file.cs", underlying)

	if err.Type != ErrorTypeFileNotFound {
		t.Errorf("Expected Type to be ErrorTypeFileNotFound, got %v", err.Type)
	}
	if err.Path != "/path/to/file.cs" {
		t.Errorf("Expected Path to be '/path/to/file.cs', got %s", err.Path)
	}
	if err.Operation != "read" {
		t.Errorf("Expected Operation to be 'read', got %s", err.Operation)
	}

	wantMsg := "file read failed for /path/to/file.cs: no such file or directory"
	if err.Error() != wantMsg {
		t.Errorf("Expected Error() = %q, got %q", wantMsg, err.Error())
	}
	if errors.Unwrap(err) != underlying {
		t.Errorf("Expected Unwrap() to return the underlying error")
	}
}

func TestFileError_PermissionDenied(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewFileError("read", "/path/to/file.cs", underlying)

	if err.Type != ErrorTypePermission {
		t.Errorf("Expected Type to be ErrorTypePermission when the underlying error is a permission error, got %v", err.Type)
	}
}

func TestConfigError(t *testing.T) {
	underlying := errors.New("invalid purity level")
	err := NewConfigError("prior-knowledge.purity", "Sorta", underlying)

	if err.Field != "prior-knowledge.purity" {
		t.Errorf("Expected Field to be 'prior-knowledge.purity', got %s", err.Field)
	}
	if err.Value != "Sorta" {
		t.Errorf("Expected Value to be 'Sorta', got %s", err.Value)
	}

	wantMsg := "config error for field prior-knowledge.purity (value Sorta): invalid purity level"
	if err.Error() != wantMsg {
		t.Errorf("Expected Error() = %q, got %q", wantMsg, err.Error())
	}
	if errors.Unwrap(err) != underlying {
		t.Errorf("Expected Unwrap() to return the underlying error")
	}
}
