package main

import "github.com/a-peyrard/instance"

//go:generate go run github.com/a-peyrard/instance/cmd/instancegen
type Registry struct {
	instance.EmptyRegistry
}
