package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		urlType   string
		part      *int
		input     string
		want      string
		wantField string
	}{
		{
			name:    "iframe src extracted for movie type",
			urlType: "movie",
			input:   `<iframe src="https://www.youtube.com/embed/abc123"></iframe>`,
			want:    "https://www.youtube.com/embed/abc123",
		},
		{
			name:    "bare url accepted for movie type",
			urlType: "movie",
			input:   "https://player.example.com/v/42",
			want:    "https://player.example.com/v/42",
		},
		{
			name:    "series with part and valid url accepted",
			urlType: "series",
			part:    intPtr(3),
			input:   `<iframe src="https://player.example.com/s/3"></iframe>`,
			want:    "https://player.example.com/s/3",
		},
		{
			name:    "trailer skips src extraction",
			urlType: "trailer",
			input:   "https://www.youtube.com/watch?v=abc123",
			want:    "https://www.youtube.com/watch?v=abc123",
		},
		{
			name:      "trailer iframe rejected because src is not extracted",
			urlType:   "trailer",
			input:     `<iframe src="https://www.youtube.com/embed/abc123"></iframe>`,
			wantField: "embed_input",
		},
		{
			name:      "non-https scheme rejected",
			urlType:   "movie",
			input:     "ftp://example.com/x",
			wantField: "embed_input",
		},
		{
			name:      "http scheme rejected",
			urlType:   "series",
			part:      intPtr(1),
			input:     "http://example.com/x",
			wantField: "embed_input",
		},
		{
			name:      "series without part rejected",
			urlType:   "series",
			input:     "https://example.com/x",
			wantField: "part",
		},
		{
			name:      "series with non-positive part rejected",
			urlType:   "series",
			part:      intPtr(0),
			input:     "https://example.com/x",
			wantField: "part",
		},
		{
			name:      "movie with part rejected",
			urlType:   "movie",
			part:      intPtr(3),
			input:     "https://example.com/x",
			wantField: "part",
		},
		{
			name:      "trailer with part rejected",
			urlType:   "trailer",
			part:      intPtr(1),
			input:     "https://example.com/x",
			wantField: "part",
		},
		{
			name:      "unknown type rejected",
			urlType:   "clip",
			input:     "https://example.com/x",
			wantField: "url_type",
		},
		{
			name:    "surrounding whitespace trimmed",
			urlType: "movie",
			input:   "   https://example.com/x  ",
			want:    "https://example.com/x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.urlType, tt.part, tt.input)
			if tt.wantField != "" {
				require.Error(t, err)
				var fieldErr *FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.wantField, fieldErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
