package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	tests := []struct {
		name string
		want *Run
	}{
		{
			name: "default CLI params",
			want: &Run{
				MinLogLevel: 0,
				ModelPath:   "",
				Vars:        nil,
				IsQuiet:     false,
				ExitOnError: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCliParams()
			if got.MinLogLevel != tt.want.MinLogLevel ||
				got.ModelPath != tt.want.ModelPath ||
				len(got.Vars) != len(tt.want.Vars) ||
				got.IsQuiet != tt.want.IsQuiet ||
				got.ExitOnError != tt.want.ExitOnError {
				t.Errorf("NewCliParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVersionInformationDefaults(t *testing.T) {
	if VersionInformation.BuildVersion == "" {
		t.Error("BuildVersion should have a default value")
	}
	if VersionInformation.Commit == "" {
		t.Error("Commit should have a default value")
	}
}
