// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Project is a portfolio card. Image is an opaque storage reference.
// UpdatedAt exists in the schema but nothing writes it after insert.
type Project struct {
	ID              string     `json:"_id"`
	CreationTime    time.Time  `json:"_creationTime"`
	Image           string     `json:"image"`
	CardTitle       string     `json:"cardTitle"`
	CardDescription string     `json:"cardDescription"`
	Tag             string     `json:"tag"`
	GithubLink      string     `json:"githubLink"`
	WebsiteLink     *string    `json:"websiteLink,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// ProjectInput is the body accepted when creating a project.
type ProjectInput struct {
	Image           *string    `json:"image"`
	CardTitle       *string    `json:"cardTitle"`
	CardDescription *string    `json:"cardDescription"`
	Tag             *string    `json:"tag"`
	GithubLink      *string    `json:"githubLink"`
	WebsiteLink     *string    `json:"websiteLink,omitempty"`
	CreatedAt       *time.Time `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// Validate checks that every required field is present and that the
// timestamps are set.
func (in ProjectInput) Validate() error {
	c := newFieldChecker()
	c.requireString("image", in.Image)
	c.requireString("cardTitle", in.CardTitle)
	c.requireString("cardDescription", in.CardDescription)
	c.requireString("tag", in.Tag)
	c.requireString("githubLink", in.GithubLink)
	c.requireTime("createdAt", in.CreatedAt)
	c.optionalTime("updatedAt", in.UpdatedAt)
	return c.err()
}

// Project returns the record described by the input, without identity.
func (in ProjectInput) Project() Project {
	return Project{
		Image:           deref(in.Image),
		CardTitle:       deref(in.CardTitle),
		CardDescription: deref(in.CardDescription),
		Tag:             deref(in.Tag),
		GithubLink:      deref(in.GithubLink),
		WebsiteLink:     in.WebsiteLink,
		CreatedAt:       utc(in.CreatedAt),
		UpdatedAt:       utcPtr(in.UpdatedAt),
	}
}
