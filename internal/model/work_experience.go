// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// BulletSeparator separates the bullet items stored in WorkExperience.Description.
const BulletSeparator = "\n"

// WorkExperience is one position held. Icon is an opaque storage reference.
type WorkExperience struct {
	ID           string     `json:"_id"`
	CreationTime time.Time  `json:"_creationTime"`
	Icon         string     `json:"icon"`
	Workplace    string     `json:"workplace"`
	WorkTitle    string     `json:"workTitle"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCurrentJob bool       `json:"isCurrentJob"`
}

// Bullets splits Description into its items, trimming whitespace and
// dropping empty items.
func (w WorkExperience) Bullets() []string {
	items := []string{}
	for _, item := range strings.Split(w.Description, BulletSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// WorkExperienceInput is the body accepted when creating a work experience.
type WorkExperienceInput struct {
	Icon         *string    `json:"icon"`
	Workplace    *string    `json:"workplace"`
	WorkTitle    *string    `json:"workTitle"`
	Description  *string    `json:"description"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCurrentJob *bool      `json:"isCurrentJob"`
}

// Validate checks that every required field is present and that the dates
// are set.
func (in WorkExperienceInput) Validate() error {
	c := newFieldChecker()
	c.requireString("icon", in.Icon)
	c.requireString("workplace", in.Workplace)
	c.requireString("workTitle", in.WorkTitle)
	c.requireString("description", in.Description)
	c.requireTime("startDate", in.StartDate)
	c.optionalTime("endDate", in.EndDate)
	c.requireBool("isCurrentJob", in.IsCurrentJob)
	return c.err()
}

// WorkExperience returns the record described by the input, without identity.
func (in WorkExperienceInput) WorkExperience() WorkExperience {
	return WorkExperience{
		Icon:         deref(in.Icon),
		Workplace:    deref(in.Workplace),
		WorkTitle:    deref(in.WorkTitle),
		Description:  deref(in.Description),
		StartDate:    utc(in.StartDate),
		EndDate:      utcPtr(in.EndDate),
		IsCurrentJob: deref(in.IsCurrentJob),
	}
}
