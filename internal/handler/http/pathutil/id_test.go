package pathutil

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		segment   string
		wantID    int64
		wantError error
	}{
		{name: "valid ID", segment: "123", wantID: 123},
		{name: "large ID", segment: "9007199254740993", wantID: 9007199254740993},
		{name: "not a number", segment: "abc", wantError: ErrInvalidID},
		{name: "zero", segment: "0", wantError: ErrInvalidID},
		{name: "negative", segment: "-1", wantError: ErrInvalidID},
		{name: "empty", segment: "", wantError: ErrInvalidID},
		{name: "trailing garbage", segment: "123abc", wantError: ErrInvalidID},
		{name: "float", segment: "1.5", wantError: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.segment)
			if !errors.Is(err, tt.wantError) {
				t.Errorf("ParseID(%q) error = %v, want %v", tt.segment, err, tt.wantError)
			}
			if id != tt.wantID {
				t.Errorf("ParseID(%q) = %d, want %d", tt.segment, id, tt.wantID)
			}
		})
	}
}
