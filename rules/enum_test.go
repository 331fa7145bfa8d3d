// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type permission uint8

const (
	permRead permission = 1 << iota
	permWrite
	permExec
)

type color int

const (
	colorNone color = iota
	colorRed
	colorGreen
)

func TestDefined(t *testing.T) {
	plain := Defined([]color{colorNone, colorRed, colorGreen}, false)

	assert.True(t, plain.IsValid(colorGreen))
	assert.False(t, plain.IsValid(color(7)))

	flags := Defined([]permission{permRead, permWrite, permExec}, true)
	assert.True(t, flags.IsValid(permRead|permExec))
	assert.True(t, flags.IsValid(0))
	assert.False(t, flags.IsValid(permission(8)))
	assert.Equal(t, "Value must be a defined option", flags.Message())
}

func TestNotDefault(t *testing.T) {
	assert.False(t, NotDefault[color]().IsValid(colorNone))
	assert.True(t, NotDefault[color]().IsValid(colorRed))
}

func TestOneOfNoneOf(t *testing.T) {
	assert.True(t, OneOf([]color{colorRed}).IsValid(colorRed))
	assert.False(t, OneOf([]color{colorRed}).IsValid(colorGreen))
	assert.False(t, NoneOf([]int{1, 2}).IsValid(2))
	assert.Equal(t, "Value must be one of: 1, 2", OneOf([]int{1, 2}).Message())
}

func TestFlags(t *testing.T) {
	v := permRead | permWrite

	assert.True(t, FlagSet(permRead).IsValid(v))
	assert.False(t, FlagSet(permExec).IsValid(v))
	assert.True(t, FlagSet(permRead|permWrite).IsValid(v))
	assert.True(t, FlagNotSet(permExec).IsValid(v))
	assert.False(t, FlagNotSet(permWrite).IsValid(v))
}

func TestAccepted(t *testing.T) {
	assert.True(t, Accepted().IsValid(true))
	assert.False(t, Accepted().IsValid(false))
	assert.Equal(t, "You must answer yes to continue", Accepted().Message())
}
