package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindObserverData, "observer-data"},
		{KindTree, "tree"},
		{KindDecode, "decode"},
		{KindConfig, "config"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestObserverDataErrorMessages(t *testing.T) {
	missing := &ObserverDataError{Widget: "cb1", Key: "checked"}
	if !strings.Contains(missing.Error(), "missing key") {
		t.Errorf("missing-key message = %q", missing.Error())
	}

	parseErr := stderrors.New("invalid syntax")
	bad := &ObserverDataError{Widget: "cb1", Key: "checked", Value: "yep", Err: parseErr}
	msg := bad.Error()
	if !strings.Contains(msg, "unparseable") || !strings.Contains(msg, "yep") {
		t.Errorf("unparseable message = %q", msg)
	}
	if !stderrors.Is(bad, parseErr) {
		t.Error("ObserverDataError should unwrap to the parse error")
	}
}

func TestQuarkErrorWrapsTypedErrors(t *testing.T) {
	inner := &DuplicateNameError{Name: "cb1"}
	err := &QuarkError{Op: "core.Tree.Add", Kind: KindTree, Widget: "cb1", Err: inner}

	var dup *DuplicateNameError
	if !stderrors.As(err, &dup) {
		t.Fatal("QuarkError should unwrap to DuplicateNameError")
	}
	if dup.Name != "cb1" {
		t.Errorf("unwrapped name = %q, want %q", dup.Name, "cb1")
	}
	if !strings.Contains(err.Error(), "widget=cb1") {
		t.Errorf("Error() = %q, want widget name included", err.Error())
	}
}

type captureHandler struct {
	errs []*QuarkError
}

func (h *captureHandler) HandleError(err *QuarkError) {
	h.errs = append(h.errs, err)
}

func TestReportUsesGlobalHandler(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(nil)
	Report(&QuarkError{Op: "test.op", Kind: KindObserverData, Err: stderrors.New("boom")})

	if len(capture.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(capture.errs))
	}
	if capture.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero timestamp")
	}
}
