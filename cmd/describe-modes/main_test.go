package main

import (
	"testing"
)

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no args",
			args: nil,
			want: false,
		},
		{
			name: "help flag",
			args: []string{"--help"},
			want: true,
		},
		{
			name: "subcommand help",
			args: []string{"toggle", "-h"},
			want: true,
		},
		{
			name: "version flag",
			args: []string{"--version"},
			want: true,
		},
		{
			name: "help subcommand",
			args: []string{"help", "list"},
			want: true,
		},
		{
			name: "config template",
			args: []string{"config", "template"},
			want: true,
		},
		{
			name: "config show",
			args: []string{"config", "show"},
			want: false,
		},
		{
			name: "list",
			args: []string{"list"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canRunWithoutContainer(tt.args); got != tt.want {
				t.Errorf("canRunWithoutContainer(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
