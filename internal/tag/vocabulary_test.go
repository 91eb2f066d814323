package tag

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	allowed := []string{"work", "food", "health"}

	tests := []struct {
		name     string
		proposed []string
		want     []string
	}{
		{
			name:     "all allowed",
			proposed: []string{"work", "food"},
			want:     []string{"work", "food"},
		},
		{
			name:     "unknown tags dropped",
			proposed: []string{"work", "ai-project", "food"},
			want:     []string{"work", "food"},
		},
		{
			name:     "case sensitive",
			proposed: []string{"Work", "FOOD", "health"},
			want:     []string{"health"},
		},
		{
			name:     "nothing allowed",
			proposed: []string{"sleep", "fun"},
			want:     []string{},
		},
		{
			name:     "empty proposed",
			proposed: nil,
			want:     []string{},
		},
		{
			name:     "duplicates collapsed",
			proposed: []string{"work", "work", "food"},
			want:     []string{"work", "food"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.proposed, allowed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%v) = %v, want %v", tt.proposed, got, tt.want)
			}

			// output must always be a subset of allowed
			for _, name := range got {
				found := false
				for _, a := range allowed {
					if name == a {
						found = true
					}
				}
				if !found {
					t.Errorf("Filter introduced tag %q outside vocabulary", name)
				}
			}
		})
	}
}
