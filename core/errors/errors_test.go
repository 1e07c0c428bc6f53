package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNotFoundErrorUnwrapsToSentinel(t *testing.T) {
	err := NewNotFound("book", "tobit")
	if !Is(err, ErrNotFound) {
		t.Error("NotFoundError should unwrap to ErrNotFound")
	}
	if !strings.Contains(err.Error(), "book") || !strings.Contains(err.Error(), "tobit") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	err := NewValidation("chapter", "must be positive")
	if !Is(err, ErrInvalidInput) {
		t.Error("ValidationError should unwrap to ErrInvalidInput")
	}
	if !strings.Contains(err.Error(), "chapter") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestParseErrorUnwrapsToSentinel(t *testing.T) {
	err := NewParse("JSON", "bibleData.json", "unexpected end of input")
	if !Is(err, ErrInvalidInput) {
		t.Error("ParseError should unwrap to ErrInvalidInput")
	}
	if !strings.Contains(err.Error(), "bibleData.json") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestIOErrorPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewIO("write", "/tmp/out.json", cause)
	if !Is(err, cause) {
		t.Error("IOError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "write") || !strings.Contains(err.Error(), "/tmp/out.json") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestAsMatchesTypedErrors(t *testing.T) {
	err := Wrap(NewNotFound("verse", "genesis:1:99"), "lookup")

	var nf *NotFoundError
	if !As(err, &nf) {
		t.Fatal("As should find NotFoundError through wrapping")
	}
	if nf.Resource != "verse" {
		t.Errorf("Resource = %q", nf.Resource)
	}
	if !Is(err, ErrNotFound) {
		t.Error("sentinel should survive wrapping")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}

func TestWrapfFormatsMessage(t *testing.T) {
	err := Wrapf(ErrInternal, "loading %s", "searchIndex.json")
	if !Is(err, ErrInternal) {
		t.Error("wrapped sentinel lost")
	}
	if !strings.Contains(err.Error(), "searchIndex.json") {
		t.Errorf("message = %q", err.Error())
	}
}
