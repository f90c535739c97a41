//go:build !inspector

package ui

import "github.com/hajimehoshi/ebiten/v2"

func (e *Editor) drawInspector(*ebiten.Image) {}
