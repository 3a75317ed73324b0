package instance

import (
	"errors"
	"fmt"
)

type (
	Widget struct {
		X           int
		Name        string
		Render      func() string
		Tags        []string
		Constructed bool

		secret int
	}

	Gadget struct {
		Label string
	}

	Holder struct {
		Prefix string
		Calls  int
	}
)

func NewWidget() *Widget {
	return &Widget{X: 1, Constructed: true}
}

func NewNamedWidget(name string, x int) (*Widget, error) {
	if name == "" {
		return nil, errors.New("name cannot be empty")
	}
	return &Widget{Name: name, X: x, Constructed: true}, nil
}

func NewTaggedWidget(name string, tags ...string) *Widget {
	return &Widget{Name: name, Tags: tags, Constructed: true}
}

func (w *Widget) M() string {
	return "a"
}

func (w Widget) Describe() string {
	return fmt.Sprintf("%s(%d)", w.Name, w.X)
}

// Stamp is a method action exposed by a holder.
func (h *Holder) Stamp(w *Widget, name string, d *Descriptor) any {
	h.Calls++
	return nil
}

// Rename is a property action exposed by a holder.
func (h *Holder) Rename(w *Widget, name string) string {
	return h.Prefix + w.Name
}

// TooMany is not a valid action.
func (h *Holder) TooMany(w *Widget, name string, d *Descriptor, extra int) {}
