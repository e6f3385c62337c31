package deck

import (
	"testing"

	utils "github.com/unoterm/uno/internal"
)

func TestPile(t *testing.T) {
	t.Run("push and top", func(t *testing.T) {
		pile := NewPile(NewCard(Red, One))
		pile.Push(NewCard(Blue, Two))

		top, err := pile.Top()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, top, NewCard(Blue, Two))
		utils.AssertEqual(t, pile.Size(), 2)
	})

	t.Run("take returns topmost cards first", func(t *testing.T) {
		pile := NewPile(NewCard(Red, One), NewCard(Blue, Two), NewCard(Green, Three))

		taken, err := pile.Take(2)
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, taken, []Card{NewCard(Green, Three), NewCard(Blue, Two)})
		utils.AssertEqual(t, pile.Size(), 1)
	})

	t.Run("take beyond capacity leaves the pile untouched", func(t *testing.T) {
		pile := NewPile(NewCard(Red, One))

		_, err := pile.Take(2)
		utils.AssertErrored(t, err)
		utils.AssertEqual(t, err, ErrEmptyPile)
		utils.AssertEqual(t, pile.Size(), 1)
	})

	t.Run("top of an empty pile", func(t *testing.T) {
		pile := NewPile()
		_, err := pile.Top()
		utils.AssertEqual(t, err, ErrEmptyPile)
	})
}
