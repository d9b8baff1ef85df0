package taskconv

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTextTasks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []*Task
	}{
		{
			name: "flat numbered list",
			source: "1. Buy milk\n" +
				"2. Buy bread\n",
			want: []*Task{
				{Name: "Buy milk"},
				{Name: "Buy bread"},
			},
		},
		{
			name: "space indentation nests",
			source: "1. Groceries\n" +
				"    a. Milk\n" +
				"    b. Bread\n" +
				"2. Chores\n",
			want: []*Task{
				{Name: "Groceries", Subtasks: []*Task{
					{Name: "Milk"},
					{Name: "Bread"},
				}},
				{Name: "Chores"},
			},
		},
		{
			name: "tab indentation counts one level per tab",
			source: "1. Top\n" +
				"\ta. Mid\n" +
				"\t\ti. Leaf\n",
			want: []*Task{
				{Name: "Top", Subtasks: []*Task{
					{Name: "Mid", Subtasks: []*Task{
						{Name: "Leaf"},
					}},
				}},
			},
		},
		{
			name: "roman numbering strips like any token",
			source: "1. Parent\n" +
				"    iv. Child\n",
			want: []*Task{
				{Name: "Parent", Subtasks: []*Task{{Name: "Child"}}},
			},
		},
		{
			name:   "note marker on a line",
			source: "1. Buy milk #note=2% organic\n",
			want: []*Task{
				{Name: "Buy milk", Note: "2% organic"},
			},
		},
		{
			name:   "blank lines are ignored",
			source: "\n1. A\n\n\n    b. B\n\n",
			want: []*Task{
				{Name: "A", Subtasks: []*Task{{Name: "B"}}},
			},
		},
		{
			name: "partial indent rounds down",
			source: "1. A\n" +
				"   b. B\n", // 3 spaces, below one level
			want: []*Task{
				{Name: "A"},
				{Name: "B"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTextTasks(tt.source)
			if err != nil {
				t.Fatalf("ParseTextTasks() error: %v", err)
			}
			assertTreesEqual(t, got, tt.want)
		})
	}
}

func TestParseTextTasks_IndentJumps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []*Task
	}{
		{
			name: "over-deep line attaches to the deepest open level",
			source: "1. A\n" +
				"\t\t\tx. Deep\n",
			want: []*Task{
				{Name: "A", Subtasks: []*Task{{Name: "Deep"}}},
			},
		},
		{
			name: "consecutive over-deep lines stay siblings",
			source: "1. A\n" +
				"\t\t\tx. First\n" +
				"\t\t\ty. Second\n",
			want: []*Task{
				{Name: "A", Subtasks: []*Task{
					{Name: "First"},
					{Name: "Second"},
				}},
			},
		},
		{
			name: "dedent after a jump closes the skipped branch",
			source: "1. A\n" +
				"\t\t\tx. Deep\n" +
				"2. B\n",
			want: []*Task{
				{Name: "A", Subtasks: []*Task{{Name: "Deep"}}},
				{Name: "B"},
			},
		},
		{
			name: "over-deep first line becomes a root",
			source: "\t\tx. Floating\n" +
				"1. Grounded\n",
			want: []*Task{
				{Name: "Floating"},
				{Name: "Grounded"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTextTasks(tt.source)
			if err != nil {
				t.Fatalf("ParseTextTasks() error: %v", err)
			}
			assertTreesEqual(t, got, tt.want)
		})
	}
}

func TestParseTextTasks_CustomIndentWidth(t *testing.T) {
	t.Parallel()

	source := "1. A\n" +
		"  b. B\n"

	got, err := parseTextTasks(source, 2)
	if err != nil {
		t.Fatalf("parseTextTasks() error: %v", err)
	}
	want := []*Task{
		{Name: "A", Subtasks: []*Task{{Name: "B"}}},
	}
	assertTreesEqual(t, got, want)
}

func TestParseTextTasks_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		wantErr  error
		wantLine string
	}{
		{
			name:     "numbering-only line",
			source:   "1. A\n2.\n",
			wantErr:  ErrNumberingOnlyLine,
			wantLine: "line 2:",
		},
		{
			name:     "note marker without a name",
			source:   "1. A\n\tb.  #note=stranded\n",
			wantErr:  ErrMalformedNote,
			wantLine: "line 2:",
		},
		{
			name:    "only blank lines",
			source:  " \n\t\n",
			wantErr: ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTextTasks(tt.source)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseTextTasks() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantLine != "" && !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("ParseTextTasks() error = %q, want it to mention %q", err, tt.wantLine)
			}
		})
	}
}
