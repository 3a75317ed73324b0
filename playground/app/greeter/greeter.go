package greeter

// Greeter has a decorated property and a decorated method, hooks must see it fully constructed.
type Greeter struct {
	ID          string
	Greeting    string
	Constructed bool
	Property    string // @decorate with=LogProperty
}

func New() *Greeter {
	return &Greeter{
		Constructed: true,
		Property:    "Greeter.Property's value",
	}
}

// Method returns a constant, hooks must leave it unchanged.
//
// @decorate with=LogMethod priority=1
// @decorate with=Logging.LogMethod
func (g *Greeter) Method() string {
	return "Greeter.Method()'s return value"
}
