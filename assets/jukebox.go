package assets

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Qu3tzal/sakura-no-hana/game"
)

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// sharedAudioContext builds the process-wide audio context on first use.
// Ebiten allows a single context per process, so everything funnels here.
func sharedAudioContext() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Jukebox plays the synthesized soundtrack. Players are built eagerly so
// Play never allocates on the hot path.
type Jukebox struct {
	cues   map[game.Cue]*audio.Player
	tracks [2]*audio.Player
	last   int
}

func NewJukebox() *Jukebox {
	ctx := sharedAudioContext()
	j := &Jukebox{
		cues: map[game.Cue]*audio.Player{
			game.CueHit:       ctx.NewPlayerFromBytes(hitSound()),
			game.CueGoodBall:  ctx.NewPlayerFromBytes(goodBallSound()),
			game.CueWrongBall: ctx.NewPlayerFromBytes(wrongBallSound()),
			game.CueSugoi:     ctx.NewPlayerFromBytes(sugoiSound()),
			game.CueAffinity:  ctx.NewPlayerFromBytes(affinitySound()),
			game.CueGameOver:  ctx.NewPlayerFromBytes(gameOverSound()),
		},
	}
	j.tracks[0] = ctx.NewPlayerFromBytes(trackA())
	j.tracks[1] = ctx.NewPlayerFromBytes(trackB())
	j.last = len(j.tracks) - 1 // so the first tick starts track 0
	return j
}

// Play restarts the cue from the start, cutting it off if it is still
// sounding from an earlier trigger.
func (j *Jukebox) Play(cue game.Cue) {
	player, ok := j.cues[cue]
	if !ok {
		return
	}
	player.Rewind()
	player.Play()
}

// TickPlaylist keeps background music going, switching to the other track
// whenever both have run out.
func (j *Jukebox) TickPlaylist() {
	if j.tracks[0].IsPlaying() || j.tracks[1].IsPlaying() {
		return
	}
	j.last = (j.last + 1) % len(j.tracks)
	next := j.tracks[j.last]
	next.Rewind()
	next.Play()
}

// StopAll silences every cue and music track and rewinds the playlist so the
// next session opens on track 0 again.
func (j *Jukebox) StopAll() {
	for _, player := range j.cues {
		player.Pause()
		player.Rewind()
	}
	for _, track := range j.tracks {
		track.Pause()
		track.Rewind()
	}
	j.last = len(j.tracks) - 1
}
