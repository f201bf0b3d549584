package agent

import (
	"errors"
	"fmt"
	"reversi/game"
	"sort"
	"sync"
)

var ErrUnknownBot = errors.New("unknown bot")

var (
	mu           sync.RWMutex
	constructors = make(map[string]Constructor)
)

func init() {
	Register("RandomBot", func(state *game.GameState, options ...Option) Bot {
		return NewRandom(state, options...)
	})
	Register("GreedyBot", func(state *game.GameState, options ...Option) Bot {
		return NewGreedy(state, options...)
	})
	Register("TwoStepsBot", func(state *game.GameState, options ...Option) Bot {
		return NewTwoSteps(state, options...)
	})
	Register("TwoStepsWithLocationBot", func(state *game.GameState, options ...Option) Bot {
		return NewTwoStepsWithLocation(state, options...)
	})
}

// Register makes a bot available by name. Registering an empty name, a nil
// constructor or a name twice panics.
func Register(name string, constructor Constructor) {
	if name == "" || constructor == nil {
		panic("bot registration needs a name and a constructor")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := constructors[name]; ok {
		panic(fmt.Sprintf("bot %q registered twice", name))
	}
	constructors[name] = constructor
}

// Lookup returns the constructor registered under name
func Lookup(name string) (Constructor, error) {
	mu.RLock()
	defer mu.RUnlock()
	constructor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBot, name)
	}
	return constructor, nil
}

// New builds the bot registered under name, bound to state
func New(name string, state *game.GameState, options ...Option) (Bot, error) {
	constructor, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return constructor(state, options...), nil
}

// Names lists the registered bots in alphabetical order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
