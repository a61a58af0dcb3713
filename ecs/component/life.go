package component

// Life tracks an entity's hit points. Alive flips to false exactly once, when
// points first reach zero or below.
type Life struct {
	Points int
	Alive  bool
}
