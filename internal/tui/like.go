package tui

import "github.com/thomaskoefod/devarticles/pkg/models"

const (
	labelLike   = "Like"
	labelUnlike = "Unlike"
)

// LikeToggle is the per-card like control. It starts unliked with the
// card's stored count, whatever was liked before.
type LikeToggle struct {
	id    int64
	liked bool
	likes int
}

func NewLikeToggle(card models.Card) LikeToggle {
	return LikeToggle{id: card.ID, likes: card.Likes}
}

// Toggle flips the liked state, moves the count by one and reports the
// new count for the card through notify.
func (t *LikeToggle) Toggle(notify func(id int64, likes int)) int {
	if t.liked {
		t.likes--
	} else {
		t.likes++
	}
	t.liked = !t.liked

	if notify != nil {
		notify(t.id, t.likes)
	}
	return t.likes
}

func (t LikeToggle) ID() int64 {
	return t.id
}

func (t LikeToggle) Liked() bool {
	return t.liked
}

func (t LikeToggle) Likes() int {
	return t.likes
}

// Label names the action the control performs next.
func (t LikeToggle) Label() string {
	if t.liked {
		return labelUnlike
	}
	return labelLike
}
