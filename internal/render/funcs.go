// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/model"
)

// DateLayout is the format letter dates are stored and submitted in.
const DateLayout = "2006-01-02"

var monthNames = map[string][12]string{
	"id": {"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember"},
	"en": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

// FormatDate renders a date as "2 Januari 2024" in the given language.
// It accepts a time.Time or a YYYY-MM-DD string; other strings are
// returned unchanged.
func FormatDate(lang string, v any) string {
	var t time.Time
	switch d := v.(type) {
	case time.Time:
		t = d
	case string:
		parsed, err := time.Parse(DateLayout, strings.TrimSpace(d))
		if err != nil {
			return d
		}
		t = parsed
	default:
		return fmt.Sprint(v)
	}
	if t.IsZero() {
		return ""
	}

	months, ok := monthNames[lang]
	if !ok {
		months = monthNames[i18n.DefaultLanguage]
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// FormatDateTime renders a timestamp with its local time of day.
func FormatDateTime(lang string, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatDate(lang, t) + " " + t.Format("15:04")
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"T":              i18n.T,
		"formatDate":     FormatDate,
		"formatDateTime": FormatDateTime,
		"roleLabel":      model.RoleLabel,
		"hasPrefix":      strings.HasPrefix,
	}
}
