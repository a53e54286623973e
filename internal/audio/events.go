package audio

import "bumpjump/internal/game"

// Player plays a sound effect without blocking the caller.
type Player interface {
	Play(Sound)
}

// Backend is a Player that owns an output device.
type Backend interface {
	Player
	Close() error
}

var eventSounds = map[game.EventType]Sound{
	game.EventJump:     SoundJump,
	game.EventLand:     SoundLand,
	game.EventCrush:    SoundCrush,
	game.EventBump:     SoundBump,
	game.EventPickup:   SoundPickup,
	game.EventRefuel:   SoundRefuel,
	game.EventStage:    SoundStage,
	game.EventHiscore:  SoundHiscore,
	game.EventGameOver: SoundGameOver,
	game.EventStart:    SoundStart,
}

// SoundFor maps a simulation event to its effect.
func SoundFor(t game.EventType) (Sound, bool) {
	s, ok := eventSounds[t]
	return s, ok
}

// Attach subscribes p to every event on bus that has a sound.
func Attach(bus *game.EventBus, p Player) {
	if bus == nil || p == nil {
		return
	}
	bus.SubscribeAll(func(e game.Event) {
		if s, ok := SoundFor(e.Type); ok {
			p.Play(s)
		}
	})
}

// Mute discards every sound.
type Mute struct{}

func (Mute) Play(Sound)   {}
func (Mute) Close() error { return nil }
