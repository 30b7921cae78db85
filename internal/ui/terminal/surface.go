package terminal

import "zenfocus/internal/alert"

// Surface carries completion hooks from the engine into the running program.
// Notify satisfies alert.Notifier.
type Surface struct {
	banners chan alert.Message
	reveal  chan struct{}
}

func NewSurface() *Surface {
	return &Surface{
		banners: make(chan alert.Message, 4),
		reveal:  make(chan struct{}, 1),
	}
}

// Notify shows title and body as a banner. Banners beyond the buffer are dropped.
func (surface *Surface) Notify(title, body string) error {
	select {
	case surface.banners <- alert.Message{Title: title, Body: body}:
	default:
	}
	return nil
}

// EnsureVisible expands the program back to the full view.
func (surface *Surface) EnsureVisible() {
	select {
	case surface.reveal <- struct{}{}:
	default:
	}
}
