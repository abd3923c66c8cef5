package pipeline

import (
	"reflect"
	"testing"
)

func TestCleanFollowups(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "numbered list",
			raw:      "1. What is X?\n2. How about Y?\n",
			expected: []string{"What is X?", "How about Y?"},
		},
		{
			name:     "already clean input unchanged",
			raw:      "What is X?\nHow about Y?",
			expected: []string{"What is X?", "How about Y?"},
		},
		{
			name:     "dash bullets",
			raw:      "- First question?\n- Second question?",
			expected: []string{"First question?", "Second question?"},
		},
		{
			name:     "unicode bullets",
			raw:      "• First question?\n• Second question?",
			expected: []string{"First question?", "Second question?"},
		},
		{
			name:     "mixed numbering and bullets with blank lines",
			raw:      "1. What is X?\n\n- How about Y?\n\n3) Keep this line\n",
			expected: []string{"What is X?", "How about Y?", "3) Keep this line"},
		},
		{
			name:     "lines that become empty are dropped",
			raw:      "1.\n- \nReal question?",
			expected: []string{"Real question?"},
		},
		{
			name:     "whitespace only",
			raw:      "   \n\n\t\n",
			expected: nil,
		},
		{
			name:     "numbered with surrounding whitespace",
			raw:      "  2.   Is there a deadline?  ",
			expected: []string{"Is there a deadline?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanFollowups(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %#v, got %#v", tt.expected, got)
			}
		})
	}
}

func TestCleanFollowups_Idempotent(t *testing.T) {
	raw := "1. What is X?\n2. How about Y?\n3. Anything else?"

	once := cleanFollowups(raw)
	twice := cleanFollowups(join(once))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Cleaning is not idempotent: %#v vs %#v", once, twice)
	}
}

func join(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
