// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-input-guard/models"
	"github.com/MKhiriev/go-input-guard/prompt"
)

type contact int

const (
	contactEmail contact = 1 << iota
	contactPhone
	contactPost
)

var contactNames = map[string]contact{
	"email": contactEmail,
	"phone": contactPhone,
	"post":  contactPost,
}

type answers struct {
	Name     string
	Age      int
	Email    string
	Birthday models.Date
	Meeting  models.TimeOfDay
	Length   time.Duration
	Server   netip.Addr
	Homepage *url.URL
	Card     string
	Contact  contact
	Initial  rune
	Ticket   uuid.UUID
	Agreed   bool
}

// step asks one question and stores the answer.
type step func(ctx context.Context, a *answers) error

func runSurvey(ctx context.Context) (*answers, error) {
	steps := []step{
		func(ctx context.Context, a *answers) (err error) {
			a.Name, err = prompt.ForString("Full name").
				WithMaxLength(40).
				WithTitleCase().
				GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Age, err = prompt.ForInt("Age").WithRange(18, 120).GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Email, err = prompt.ForString("Email").WithEmail().GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Birthday, err = prompt.ForDate("Birthday (YYYY-MM-DD)", "").WithPast().GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Meeting, err = prompt.ForTimeOfDay("Meeting time (HH:MM)", "").
				WithBusinessHours().
				WithMinuteIncrement(15).
				GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Length, err = prompt.ForDuration("Meeting length").
				WithPositive().
				WithWorkingHours(8).
				WithIncrement(15 * time.Minute).
				GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Server, err = prompt.ForIP("Office server address").WithIPv4().WithPrivate().GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Homepage, err = prompt.ForURL("Homepage").WithAbsolute().WithHTTPS().GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Card, err = prompt.ForString("Card number").WithNumericOnly().WithLuhn().GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Contact, err = prompt.ForEnum("Contact by (email, phone, post; comma-separated)", contactNames).
				WithDefinedFlags().
				WithNotDefault("Choose at least one way to contact you").
				GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Initial, err = prompt.ForRune("Middle initial").WithLetter().WithUpper().GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Ticket, err = prompt.ForUUID("Ticket ID").WithNonNil().WithVersion(4).GetContext(ctx)
			return err
		},
		func(ctx context.Context, a *answers) (err error) {
			a.Agreed, err = prompt.ForBool("Accept the terms? (yes/no)").WithRequireYes().GetContext(ctx)
			return err
		},
	}

	a := &answers{}
	for _, s := range steps {
		if err := s(ctx, a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func printAnswers(w io.Writer, a *answers) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "\nSummary")
	fmt.Fprintf(tw, "Name:\t%s %c.\n", a.Name, a.Initial)
	fmt.Fprintf(tw, "Age:\t%d\n", a.Age)
	fmt.Fprintf(tw, "Email:\t%s\n", a.Email)
	fmt.Fprintf(tw, "Birthday:\t%s\n", a.Birthday)
	fmt.Fprintf(tw, "Meeting:\t%s for %s\n", a.Meeting, a.Length)
	fmt.Fprintf(tw, "Server:\t%s\n", a.Server)
	fmt.Fprintf(tw, "Homepage:\t%s\n", a.Homepage)
	fmt.Fprintf(tw, "Card:\t%s\n", maskCard(a.Card))
	fmt.Fprintf(tw, "Contact:\t%s\n", contactList(a.Contact))
	fmt.Fprintf(tw, "Ticket:\t%s\n", a.Ticket)
}

func maskCard(card string) string {
	if len(card) <= 4 {
		return card
	}
	return "****" + card[len(card)-4:]
}

func contactList(c contact) string {
	var s string
	for _, name := range []string{"email", "phone", "post"} {
		if c&contactNames[name] == 0 {
			continue
		}
		if s != "" {
			s += ", "
		}
		s += name
	}
	return s
}
