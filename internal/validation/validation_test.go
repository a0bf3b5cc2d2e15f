package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateLocalPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid absolute", path: "/home/user/corpora/PHI5"},
		{name: "valid relative", path: "corpora/PHI5"},
		{name: "empty", path: "", wantErr: ErrEmptyPath},
		{name: "too long", path: strings.Repeat("a", MaxPathLength+1), wantErr: ErrPathTooLong},
		{name: "NUL byte", path: "corpora/\x00PHI5", wantErr: ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLocalPath(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateLocalPath(%q) = %v, want nil", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLocalPath(%q) = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
