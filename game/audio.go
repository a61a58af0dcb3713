package game

// Cue names a fire-and-forget sound effect. The world triggers cues; how
// they sound is the audio collaborator's business.
type Cue uint8

const (
	CueHit Cue = iota
	CueGoodBall
	CueWrongBall
	CueSugoi
	CueAffinity
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueGoodBall:
		return "good_ball"
	case CueWrongBall:
		return "wrong_ball"
	case CueSugoi:
		return "sugoi"
	case CueAffinity:
		return "affinity"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Audio is the sound collaborator: cues fire and forget, the playlist keeps
// background music alternating, StopAll silences everything at once. The
// world calls TickPlaylist every tick and expects all calls to be cheap.
type Audio interface {
	Play(cue Cue)
	TickPlaylist()
	StopAll()
}

// NopAudio is a silent Audio for tests and muted sessions.
type NopAudio struct{}

func (NopAudio) Play(Cue) {}

func (NopAudio) TickPlaylist() {}

func (NopAudio) StopAll() {}
