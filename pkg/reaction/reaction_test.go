package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   State
		requested Kind
		want      Result
	}{
		{
			name:      "like from none creates row",
			current:   None,
			requested: Like,
			want:      Result{Next: Liked, Action: CreateRow, Delta: Delta{Like: 1}},
		},
		{
			name:      "like from liked toggles off",
			current:   Liked,
			requested: Like,
			want:      Result{Next: None, Action: DeleteRow, Delta: Delta{Like: -1}},
		},
		{
			name:      "like from disliked switches",
			current:   Disliked,
			requested: Like,
			want:      Result{Next: Liked, Action: UpdateRow, Delta: Delta{Like: 1, Dislike: -1}},
		},
		{
			name:      "dislike from none creates row",
			current:   None,
			requested: Dislike,
			want:      Result{Next: Disliked, Action: CreateRow, Delta: Delta{Dislike: 1}},
		},
		{
			name:      "dislike from disliked toggles off",
			current:   Disliked,
			requested: Dislike,
			want:      Result{Next: None, Action: DeleteRow, Delta: Delta{Dislike: -1}},
		},
		{
			name:      "dislike from liked switches",
			current:   Liked,
			requested: Dislike,
			want:      Result{Next: Disliked, Action: UpdateRow, Delta: Delta{Like: -1, Dislike: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.current, tt.requested)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Liking twice returns to None and restores the counter to its starting value.
func TestToggleLaw(t *testing.T) {
	like, dislike := 10, 3

	first := Transition(None, Like)
	like += first.Delta.Like
	dislike += first.Delta.Dislike

	second := Transition(first.Next, Like)
	like += second.Delta.Like
	dislike += second.Delta.Dislike

	assert.Equal(t, None, second.Next)
	assert.Equal(t, 10, like)
	assert.Equal(t, 3, dislike)
}

// Liking then disliking lands on Disliked with like down one and dislike up
// one relative to the state before the like.
func TestSwitchLaw(t *testing.T) {
	like, dislike := 10, 3

	first := Transition(None, Like)
	like += first.Delta.Like
	dislike += first.Delta.Dislike

	second := Transition(first.Next, Dislike)
	like += second.Delta.Like
	dislike += second.Delta.Dislike

	assert.Equal(t, Disliked, second.Next)
	assert.Equal(t, 10-1+1, like) // +1 from like, -1 from switch
	assert.Equal(t, 3+1, dislike)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, Liked, StateOf(Like))
	assert.Equal(t, Disliked, StateOf(Dislike))
	assert.Equal(t, None, StateOf(""))
}
