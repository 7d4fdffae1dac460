// Package reaction holds the like/dislike toggle state machine. The
// transition logic is pure so it can be tested without a database; the
// repository layer applies the resulting action and counter delta inside
// one transaction.
package reaction

// Kind is a requested or stored reaction value.
type Kind string

const (
	Like    Kind = "like"
	Dislike Kind = "dislike"
)

// State is the current reaction of one user toward one movie.
type State int

const (
	// None means no reaction row exists for the (user, movie) pair.
	None State = iota
	Liked
	Disliked
)

// Action tells the persistence layer what to do with the reaction row.
type Action int

const (
	CreateRow Action = iota
	UpdateRow
	DeleteRow
)

// Delta is the counter adjustment to apply to the movie row.
type Delta struct {
	Like    int
	Dislike int
}

// Result is the outcome of one transition.
type Result struct {
	Next   State
	Action Action
	Delta  Delta
}

// StateOf maps a stored reaction value to a State. An empty value means no
// row exists.
func StateOf(stored Kind) State {
	switch stored {
	case Like:
		return Liked
	case Dislike:
		return Disliked
	default:
		return None
	}
}

// KindOf maps a state back to its stored value. Only valid for Liked and
// Disliked.
func KindOf(s State) Kind {
	if s == Liked {
		return Like
	}
	return Dislike
}

// Transition applies one like/dislike request to the current state. All
// three source states are valid; a repeated identical request toggles the
// reaction off.
func Transition(current State, requested Kind) Result {
	switch requested {
	case Dislike:
		switch current {
		case None:
			return Result{Next: Disliked, Action: CreateRow, Delta: Delta{Dislike: +1}}
		case Disliked:
			return Result{Next: None, Action: DeleteRow, Delta: Delta{Dislike: -1}}
		default: // Liked
			return Result{Next: Disliked, Action: UpdateRow, Delta: Delta{Like: -1, Dislike: +1}}
		}
	default: // Like
		switch current {
		case None:
			return Result{Next: Liked, Action: CreateRow, Delta: Delta{Like: +1}}
		case Liked:
			return Result{Next: None, Action: DeleteRow, Delta: Delta{Like: -1}}
		default: // Disliked
			return Result{Next: Liked, Action: UpdateRow, Delta: Delta{Dislike: -1, Like: +1}}
		}
	}
}
