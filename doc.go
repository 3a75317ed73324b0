// Package instance runs initialization hooks on every new instance of a type, right after it is
// constructed.
//
// Hooks are registered once, at startup, against a field or a method of a type:
//
//	registry := instance.NewRegistry()
//	widgets := instance.MustFor[*Widget](registry)
//	widgets.MustDecorate("Count", func(w *Widget, name string) any { return w.Count + 1 })
//	widgets.MustDecorate("Render", func(w *Widget, name string, d *instance.Descriptor) any {
//		log.Printf("%s ready", d)
//		return nil
//	})
//
// A two parameters action is a property action, a three parameters action is a method action.
// When an action returns a value, the value is assigned to the decorated member.
//
// Instances are then built through a Constructor, which replays the hooks in registration order:
//
//	newWidget := instance.MustIntercept[*Widget](registry, NewWidget)
//	w, err := newWidget.New("name")
package instance
