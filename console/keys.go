// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	quit   key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter")),
	quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
