//go:build !nowindow

package main

import (
	"github.com/lixenwraith/glowchase/config"
	"github.com/lixenwraith/glowchase/window"
)

func init() {
	hosts[config.BackendWindow] = window.Run
}
