// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package models defines the settings document types persisted in
// settings.json and the shared API response envelope.
//
// The settings document is a single JSON object whose top-level keys are
// independent sections: profile, skills, projects, footer, contents. Every
// section is optional on disk; an absent section reads as its zero value.
// Array order is display order.
package models
