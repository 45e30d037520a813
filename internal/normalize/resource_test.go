package normalize

import (
	"reflect"
	"testing"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/model"
)

func TestNormalizeResources(t *testing.T) {
	pdf := "pdf"
	tests := []struct {
		name string
		in   any
		want []model.Resource
	}{
		{
			name: "nil input",
			in:   nil,
			want: []model.Resource{},
		},
		{
			name: "string instead of array",
			in:   "not a list",
			want: []model.Resource{},
		},
		{
			name: "keeps valid drops invalid",
			in: []any{
				map[string]any{"title": "A", "url": "http://x"},
				map[string]any{"title": "", "url": "http://y"},
				map[string]any{"foo": 1},
			},
			want: []model.Resource{{Title: "A", URL: "http://x", Type: nil}},
		},
		{
			name: "non-object entries discarded",
			in:   []any{"just a string", 42, nil},
			want: []model.Resource{},
		},
		{
			name: "type kept when string",
			in: []any{
				map[string]any{"title": "Slides", "url": "http://s", "type": "pdf"},
			},
			want: []model.Resource{{Title: "Slides", URL: "http://s", Type: &pdf}},
		},
		{
			name: "non-string type becomes null",
			in: []any{
				map[string]any{"title": "Slides", "url": "http://s", "type": 3},
			},
			want: []model.Resource{{Title: "Slides", URL: "http://s", Type: nil}},
		},
		{
			name: "title and url trimmed",
			in: []any{
				map[string]any{"title": "  Notes  ", "url": " http://n "},
			},
			want: []model.Resource{{Title: "Notes", URL: "http://n", Type: nil}},
		},
		{
			name: "whitespace-only url discarded",
			in: []any{
				map[string]any{"title": "Notes", "url": "   "},
			},
			want: []model.Resource{},
		},
		{
			name: "order preserved",
			in: []any{
				map[string]any{"title": "B", "url": "http://b"},
				map[string]any{"title": "A", "url": "http://a"},
			},
			want: []model.Resource{
				{Title: "B", URL: "http://b", Type: nil},
				{Title: "A", URL: "http://a", Type: nil},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeResources(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("NormalizeResources = %+v, want %+v", got, tt.want)
			}
		})
	}
}
