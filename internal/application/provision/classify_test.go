package provision

import (
	"testing"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		result domain.ShellResult
		want   Classification
	}{
		{
			name:   "success",
			result: domain.ShellResult{Succeeded: true},
			want:   ClassSucceeded,
		},
		{
			name:   "success wins over marker",
			result: domain.ShellResult{Succeeded: true, Stderr: []byte("User canceled.")},
			want:   ClassSucceeded,
		},
		{
			name:   "declined prompt",
			result: domain.ShellResult{ExitCode: 1, Stderr: []byte("0:63: execution error: User canceled. (-128)")},
			want:   ClassCancelled,
		},
		{
			name:   "marker only on stdout is a failure",
			result: domain.ShellResult{ExitCode: 1, Stdout: []byte("User canceled")},
			want:   ClassFailed,
		},
		{
			name:   "other failure",
			result: domain.ShellResult{ExitCode: 1, Stderr: []byte("ln: /usr/local/bin/t3lang: Permission denied")},
			want:   ClassFailed,
		},
		{
			name:   "failure without output",
			result: domain.ShellResult{ExitCode: 2},
			want:   ClassFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.result); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}
