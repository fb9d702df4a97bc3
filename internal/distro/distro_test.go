package distro

import (
	"testing"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		distver     string
		want        Target
		expectError bool
	}{
		{
			name:    "fedora 34",
			distver: "fc34",
			want:    Target{Family: Fedora, DepsFile: "ovirt-f34-deps.repo"},
		},
		{
			name:    "fedora with trailing characters",
			distver: "fc345",
			want:    Target{Family: Fedora, DepsFile: "ovirt-f34-deps.repo"},
		},
		{
			name:    "el 8",
			distver: "el8",
			want:    Target{Family: EL, DepsFile: "ovirt-el8-deps.repo"},
		},
		{
			name:    "el 10",
			distver: "el10",
			want:    Target{Family: EL, DepsFile: "ovirt-el10-deps.repo"},
		},
		{
			name:    "el keeps the whole string",
			distver: "el7_9",
			want:    Target{Family: EL, DepsFile: "ovirt-el7_9-deps.repo"},
		},
		{
			name:        "fedora with one digit",
			distver:     "fc3",
			expectError: true,
		},
		{
			name:        "el without digits",
			distver:     "el",
			expectError: true,
		},
		{
			name:        "not anchored at the start",
			distver:     "xfc34",
			expectError: true,
		},
		{
			name:        "unsupported distro",
			distver:     "debian12",
			expectError: true,
		},
		{
			name:        "empty distro",
			distver:     "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.distver)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for distro '%s', but got none", tt.distver)
				}
				if kind := errors.KindOf(err); kind != errors.InvalidDistro {
					t.Errorf("error kind = %v, want %v", kind, errors.InvalidDistro)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error for distro '%s': %v", tt.distver, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.distver, got, tt.want)
			}
		})
	}
}
