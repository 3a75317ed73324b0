package greeter

import (
	"fmt"

	"github.com/a-peyrard/instance"
	"github.com/a-peyrard/instance/concurrent"
)

// Events records what the hooks observed, in replay order.
var Events = concurrent.NewSlice[string]()

// Logging holds decorators exposed as methods.
var Logging = &Decorators{name: "Decorators.LogMethod"}

type Decorators struct {
	name string
}

func LogProperty(g *Greeter, name string) any {
	Events.Append(fmt.Sprintf("@LogProperty: constructed=%t %s=%q", g.Constructed, name, g.Property))
	return nil
}

func LogMethod(g *Greeter, name string, descriptor *instance.Descriptor) any {
	Events.Append(describeMethod("@LogMethod", g, name, descriptor))
	return nil
}

func (d *Decorators) LogMethod(g *Greeter, name string, descriptor *instance.Descriptor) any {
	Events.Append(describeMethod("@"+d.name, g, name, descriptor))
	return nil
}

func describeMethod(prefix string, g *Greeter, name string, descriptor *instance.Descriptor) string {
	returned := descriptor.Bind(g).Call(nil)[0].String()
	return fmt.Sprintf("%s: constructed=%t %s() returned %q, descriptor=%s", prefix, g.Constructed, name, returned, descriptor)
}
