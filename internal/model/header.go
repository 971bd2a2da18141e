// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Header is the site header. One is expected, but nothing stops more.
type Header struct {
	ID           string    `json:"_id"`
	CreationTime time.Time `json:"_creationTime"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
}

// HeaderInput is the body accepted when creating a header.
type HeaderInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Validate checks that every required field is present.
func (in HeaderInput) Validate() error {
	c := newFieldChecker()
	c.requireString("name", in.Name)
	c.requireString("description", in.Description)
	return c.err()
}

// Header returns the record described by the input, without identity.
func (in HeaderInput) Header() Header {
	return Header{
		Name:        deref(in.Name),
		Description: deref(in.Description),
	}
}
