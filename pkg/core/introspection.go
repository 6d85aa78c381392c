package core

import (
	"github.com/aretw0/introspection"
)

// PrunerState exposes the pruner configuration for observability.
type PrunerState struct {
	Mode          string `json:"mode"`
	World         string `json:"world"`
	SetPattern    string `json:"set_pattern"`
	Selections    int    `json:"selections"`
	ProgressEvery int    `json:"progress_every"`
}

// State implements introspection.Introspectable.
func (p *Pruner) State() any {
	return PrunerState{
		Mode:          p.filter.Mode.String(),
		World:         p.filter.World,
		SetPattern:    p.setPattern,
		Selections:    p.filter.Selections.Len(),
		ProgressEvery: p.progressEvery,
	}
}

// ComponentType implements introspection.Component.
func (p *Pruner) ComponentType() string {
	return "pruner"
}

var _ introspection.Introspectable = (*Pruner)(nil)
var _ introspection.Component = (*Pruner)(nil)
