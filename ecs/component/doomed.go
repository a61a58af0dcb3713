package component

// Doomed is the deletion marker. Every entity gets one at creation with
// Marked false; setting Marked schedules the entity for the end-of-tick
// sweep while keeping it valid for the rest of the tick.
type Doomed struct {
	Marked bool
}
