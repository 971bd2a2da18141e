// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Diagnostic levels
const (
	DiagnosticLevelInfo    = "info"
	DiagnosticLevelWarning = "warning"
	DiagnosticLevelError   = "error"
)

// Diagnostic categories
const (
	DiagnosticCategoryStore      = "store"
	DiagnosticCategoryValidation = "validation"
	DiagnosticCategoryHTTP       = "http"
	DiagnosticCategorySystem     = "system"
)
