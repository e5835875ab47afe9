//go:build !ebiten

package ui

import (
	"torus-life/internal/core"
	"torus-life/internal/render"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, func() render.Layout, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(int) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
