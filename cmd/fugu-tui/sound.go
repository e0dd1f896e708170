package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/fugufall/puzzle"
)

const sampleRate = beep.SampleRate(44100)

// tone is one note of a sound effect.
type tone struct {
	freq     float64
	duration time.Duration
}

// effectFor returns the notes played for an event, or nil when the event is silent.
func effectFor(ev puzzle.Event) []tone {
	switch ev.Kind {
	case puzzle.EventPairMoved:
		return []tone{{660, 20 * time.Millisecond}}
	case puzzle.EventPairRotated:
		return []tone{{880, 30 * time.Millisecond}}
	case puzzle.EventPairRedistributed:
		return []tone{{520, 30 * time.Millisecond}, {780, 30 * time.Millisecond}}
	case puzzle.EventCommandRejected:
		return []tone{{160, 60 * time.Millisecond}}
	case puzzle.EventPairLanded:
		return []tone{{330, 40 * time.Millisecond}}
	case puzzle.EventGroupMatched:
		// Rises with the chain so cascades are audible.
		return []tone{{440 * float64(1+ev.Chain) / 2, 120 * time.Millisecond}}
	case puzzle.EventPieceRemoved:
		return []tone{{1320, 15 * time.Millisecond}}
	case puzzle.EventUndoApplied:
		return []tone{{780, 40 * time.Millisecond}, {520, 40 * time.Millisecond}}
	case puzzle.EventGameWon:
		return []tone{{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 200 * time.Millisecond}}
	case puzzle.EventGameLost:
		return []tone{{392, 150 * time.Millisecond}, {262, 300 * time.Millisecond}}
	}
	return nil
}

// SoundManager plays short effects for puzzle events.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize sets up the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Handle is a puzzle.Handler.
func (sm *SoundManager) Handle(ev puzzle.Event) {
	notes := effectFor(ev)
	if len(notes) == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		streamers = append(streamers, beep.Take(sampleRate.N(n.duration), sine))
	}

	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(streamers...),
		Base:     2,
		Volume:   -3,
	})
}
