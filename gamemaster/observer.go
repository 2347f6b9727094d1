package gamemaster

import "morris/game"

// Observer is notified with the current position when it is registered, when a game starts and after
// every applied move. It must not keep or modify the state.
type Observer interface {
	Notify(state game.View)
}

type ObserverFunc func(state game.View)

func (f ObserverFunc) Notify(state game.View) {
	f(state)
}
