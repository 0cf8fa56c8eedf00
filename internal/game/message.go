package game

import "github.com/vovakirdan/guessgrid/internal/core"

// Message is the status line shown to the player.
type Message string

const (
	MsgYouWin          Message = "You Win!"
	MsgYouLose         Message = "You Lose :("
	MsgAlreadyGuessed  Message = "You have already guessed that number."
	MsgChooseSquare    Message = "Select a square and resubmit!"
	MsgBurningUp       Message = "You're burning up!"
	MsgLukewarm        Message = "You're lukewarm."
	MsgBitChilly       Message = "You're a bit chilly."
	MsgIceCold         Message = "You're ice cold!"
	MsgJediHint        Message = "Reach out with your feelings ..."
	MsgNotEnoughToHint Message = "Not enough guesses left to hint...go for it!"
	MsgStart           Message = "Good luck!"
	MsgClear           Message = ""
)

// proximity maps the distance between a wrong guess and the answer to a
// temperature message. Distance 0 is a win and never reaches here.
func proximity(guess, winning int) Message {
	switch d := core.Abs(guess - winning); {
	case d < 10:
		return MsgBurningUp
	case d < 25:
		return MsgLukewarm
	case d < 50:
		return MsgBitChilly
	default:
		return MsgIceCold
	}
}
