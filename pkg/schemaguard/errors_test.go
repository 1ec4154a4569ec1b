package schemaguard_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, schemaguard.ExitSuccess},
		{"general error", errors.New("something went wrong"), schemaguard.ExitGeneralError},
		{"invalid config", schemaguard.ErrInvalidConfig, schemaguard.ExitConfigError},
		{"fixup not applied", schemaguard.ErrFixupNotApplied, schemaguard.ExitFixupNotApplied},
		{"persistence", schemaguard.ErrPersistence, schemaguard.ExitPersistenceError},
		{"baseline missing", schemaguard.ErrBaselineMissing, schemaguard.ExitBaselineMissing},
		{"schema mismatch", schemaguard.ErrSchemaMismatch, schemaguard.ExitSchemaMismatch},
		{"metadata not found", schemaguard.ErrMetadataNotFound, schemaguard.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schemaguard.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("fixup #3: %w", schemaguard.ErrFixupNotApplied)
	if got := schemaguard.ExitCodeForError(wrapped); got != schemaguard.ExitFixupNotApplied {
		t.Errorf("ExitCodeForError(wrapped) = %d, want %d", got, schemaguard.ExitFixupNotApplied)
	}

	deep := fmt.Errorf("export: %w", fmt.Errorf("verify: %w", schemaguard.ErrSchemaMismatch))
	if got := schemaguard.ExitCodeForError(deep); got != schemaguard.ExitSchemaMismatch {
		t.Errorf("ExitCodeForError(deep) = %d, want %d", got, schemaguard.ExitSchemaMismatch)
	}
}
