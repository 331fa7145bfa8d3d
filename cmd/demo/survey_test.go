// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-input-guard/console"
	"github.com/MKhiriev/go-input-guard/models"
	"github.com/MKhiriev/go-input-guard/prompt"
	"github.com/MKhiriev/go-input-guard/validator"
)

func useInput(t *testing.T, lines ...string) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	c := console.New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, console.WithColor(false))
	t.Cleanup(func() { _ = c.Close() })
	prompt.SetDefault(c, c)
	return &out
}

func TestRunSurvey(t *testing.T) {
	out := useInput(t,
		"Ada Lovelace",
		"12", "", "36",
		"ada@example.com",
		"1990-05-17",
		"10:20", "", "10:15",
		"1h30m",
		"8.8.8.8", "", "192.168.1.10",
		"https://example.com",
		"4111111111111112", "", "4111111111111111",
		"email,post",
		"q", "", "Q",
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"yes",
	)

	a, err := runSurvey(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", a.Name)
	assert.Equal(t, 36, a.Age)
	assert.Equal(t, models.NewDate(1990, time.May, 17), a.Birthday)
	assert.Equal(t, models.NewTimeOfDay(10, 15, 0), a.Meeting)
	assert.Equal(t, 90*time.Minute, a.Length)
	assert.Equal(t, "192.168.1.10", a.Server.String())
	assert.Equal(t, "4111111111111111", a.Card)
	assert.Equal(t, contactEmail|contactPost, a.Contact)
	assert.Equal(t, 'Q', a.Initial)
	assert.True(t, a.Agreed)

	for _, msg := range []string{
		"Value must be between 18 and 120",
		"Time must be in 15-minute increments",
		"Address must be in a private range",
		"Character must be an uppercase letter",
	} {
		assert.Contains(t, out.String(), msg)
	}

	var summary bytes.Buffer
	printAnswers(&summary, a)
	assert.Contains(t, summary.String(), "****1111")
	assert.Contains(t, summary.String(), "email, post")
}

func TestRunSurvey_Canceled(t *testing.T) {
	useInput(t, "Ada Lovelace")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runSurvey(ctx)
	require.ErrorIs(t, err, validator.ErrCanceled)
}

func TestMaskCard(t *testing.T) {
	assert.Equal(t, "123", maskCard("123"))
	assert.Equal(t, "****3456", maskCard("123456"))
}
