// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Introduction is a block of introductory text. Header is a free label,
// it does not reference a Header record.
type Introduction struct {
	ID           string    `json:"_id"`
	CreationTime time.Time `json:"_creationTime"`
	Header       string    `json:"header"`
	Description  string    `json:"description"`
	Title        string    `json:"title"`
}

// IntroductionInput is the body accepted when creating an introduction.
type IntroductionInput struct {
	Header      *string `json:"header"`
	Description *string `json:"description"`
	Title       *string `json:"title"`
}

// Validate checks that every required field is present.
func (in IntroductionInput) Validate() error {
	c := newFieldChecker()
	c.requireString("header", in.Header)
	c.requireString("description", in.Description)
	c.requireString("title", in.Title)
	return c.err()
}

// Introduction returns the record described by the input, without identity.
func (in IntroductionInput) Introduction() Introduction {
	return Introduction{
		Header:      deref(in.Header),
		Description: deref(in.Description),
		Title:       deref(in.Title),
	}
}
