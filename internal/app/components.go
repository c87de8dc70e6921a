package app

import (
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/engine/registry"
)

// Components bundles the wired application pieces handed to the CLI.
type Components struct {
	Transformer  *Transformer
	Registry     *registry.Registry
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
}
