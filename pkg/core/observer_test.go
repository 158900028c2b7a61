package core

import (
	stderrors "errors"
	"testing"

	"github.com/nextcore/quark/pkg/errors"
)

func TestSnapshotString(t *testing.T) {
	snap := map[string]string{"text": "Yes"}

	got, err := SnapshotString(snap, "cb1", "text")
	if err != nil || got != "Yes" {
		t.Errorf("SnapshotString = %q, %v; want %q, nil", got, err, "Yes")
	}

	_, err = SnapshotString(snap, "cb1", "missing")
	var odErr *errors.ObserverDataError
	if !stderrors.As(err, &odErr) {
		t.Fatalf("missing key returned %v, want ObserverDataError", err)
	}
	if odErr.Widget != "cb1" || odErr.Key != "missing" || odErr.Err != nil {
		t.Errorf("ObserverDataError = %+v", odErr)
	}
}

func TestSnapshotBool(t *testing.T) {
	tests := []struct {
		name    string
		snap    map[string]string
		want    bool
		wantErr bool
	}{
		{"literal true", map[string]string{"checked": "true"}, true, false},
		{"literal false", map[string]string{"checked": "false"}, false, false},
		{"missing key", map[string]string{}, false, true},
		{"unparseable", map[string]string{"checked": "yep"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SnapshotBool(tt.snap, "cb1", "checked")
			if (err != nil) != tt.wantErr {
				t.Fatalf("SnapshotBool error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("SnapshotBool = %v, want %v", got, tt.want)
			}
			if err != nil {
				var odErr *errors.ObserverDataError
				if !stderrors.As(err, &odErr) {
					t.Errorf("error type = %T, want ObserverDataError", err)
				}
			}
		})
	}
}

func TestSnapshotInt(t *testing.T) {
	snap := map[string]string{"value": "42", "bad": "forty-two"}

	got, err := SnapshotInt(snap, "pb1", "value")
	if err != nil || got != 42 {
		t.Errorf("SnapshotInt = %d, %v; want 42, nil", got, err)
	}

	if _, err := SnapshotInt(snap, "pb1", "bad"); err == nil {
		t.Error("unparseable int did not error")
	}
	if _, err := SnapshotInt(snap, "pb1", "gone"); err == nil {
		t.Error("missing int key did not error")
	}
}

func TestObserverFunc(t *testing.T) {
	var o Observer = ObserverFunc(func() map[string]string {
		return map[string]string{"text": "hi"}
	})
	if got := o.Observe()["text"]; got != "hi" {
		t.Errorf("Observe()[text] = %q, want %q", got, "hi")
	}
}
