package domain

import "errors"

// Deal errors are fatal to game setup; turn errors reject the transition and
// leave state untouched. None of these are retried by the engine.
var (
	ErrUnknownRank     = errors.New("unknown rank")
	ErrInvalidSeat     = errors.New("seat index out of range")
	ErrInvalidHandSize = errors.New("hand size does not match seat requirement")
	ErrCardOverflow    = errors.New("card count exceeds deck quantity")

	ErrCardNotInHand         = errors.New("card not present in hand")
	ErrNotYourTurn           = errors.New("not this seat's turn")
	ErrIllegalCombination    = errors.New("cards do not form a legal combination")
	ErrDoesNotBeatLastPlayed = errors.New("combination does not beat the last play")
	ErrMustPlayFirstMove     = errors.New("cannot pass before the trick is opened")
	ErrForcedPlay            = errors.New("must play after winning the trick")
	ErrGameOver              = errors.New("game already has a result")
)
