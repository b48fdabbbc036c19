package render

// EventKind classifies a window event.
type EventKind int

const (
	// EventOther is anything the frame loop does not react to.
	EventOther EventKind = iota
	// EventQuit is a request to close the window.
	EventQuit
	// EventKeyDown is a key press; Event.Key carries which one.
	EventKeyDown
	// EventWindowResized reports new framebuffer dimensions in
	// Event.Width and Event.Height.
	EventWindowResized
)

// Key identifies a keyboard key. Only keys the frame loop reacts to get
// their own value; everything else maps to KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

// Event is one discrete occurrence drained from the windowing collaborator.
// Fields beyond Kind are set only for the kinds that carry them.
type Event struct {
	Kind          EventKind
	Key           Key
	Width, Height int
}

// Outcome summarizes one frame's drained events for the frame loop.
type Outcome struct {
	// Quit stops the loop at the iteration boundary, before the next draw.
	Quit    bool
	Resized bool
	// Width and Height are the dimensions of the most recent resize.
	Width, Height int
}

// Reduce folds a frame's drained events into the loop outcome. A quit
// request or an Escape press stops the loop; when several resizes arrive in
// one frame the last one wins.
func Reduce(events []Event) Outcome {
	var out Outcome
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			out.Quit = true
		case EventKeyDown:
			if ev.Key == KeyEscape {
				out.Quit = true
			}
		case EventWindowResized:
			out.Resized = true
			out.Width, out.Height = ev.Width, ev.Height
		}
	}
	return out
}
