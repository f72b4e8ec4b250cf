package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindSimilarCommands(t *testing.T) {
	nodes := []*Node{
		NewNode("help", nil, "Help", []string{"help", "?"}, nil, nil),
		NewNode("history", nil, "History", []string{"history", "hist"}, nil, nil),
		NewNode("echo", nil, "Echo", []string{"echo"}, nil, nil),
	}

	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{name: "typo", input: "hepl", max: 3, want: []string{"help", "hist"}},
		{name: "case insensitive", input: "ECHOO", max: 3, want: []string{"echo"}},
		{name: "nothing close", input: "zzzzzzzz", max: 3, want: []string{}},
		{name: "sorted by distance", input: "his", max: 3, want: []string{"hist", "?", "help"}},
		{name: "limited", input: "his", max: 1, want: []string{"hist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilarCommands(tt.input, nodes, tt.max))
		})
	}
}

func TestFindSimilarCommands_ExactMatchExcluded(t *testing.T) {
	nodes := []*Node{NewNode("echo", nil, "Echo", []string{"echo"}, nil, nil)}
	require.Empty(t, FindSimilarCommands("echo", nodes, 3))
}
