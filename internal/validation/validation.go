// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package validation evaluates ordered per-field rules before a write.
// Evaluation stops at the first failing rule so that exactly one message is
// reported to the user.
package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Rule checks one form field against a validator tag such as "required" or
// "required,email". Message is returned when the check fails; callers use
// i18n keys so the message can be translated at the route boundary.
type Rule struct {
	Field   string
	Tag     string
	Message string
}

// Fields holds submitted form values by field name.
type Fields map[string]string

// Validate runs rules in order and returns the message of the first rule
// that fails. ok is true when every rule passes.
func Validate(fields Fields, rules []Rule) (message string, ok bool) {
	v := GetValidator()
	for _, rule := range rules {
		if err := v.Var(fields[rule.Field], rule.Tag); err != nil {
			return rule.Message, false
		}
	}
	return "", true
}

// LoginRules validate the login form.
var LoginRules = []Rule{
	{Field: "email", Tag: "required,email", Message: "auth.email_invalid"},
	{Field: "password", Tag: "required", Message: "auth.password_required"},
}

// SuratMasukCreateRules report a dedicated message per mandatory field.
var SuratMasukCreateRules = []Rule{
	{Field: "nomor_surat", Tag: "required", Message: "validation.nomor_surat_required"},
	{Field: "tanggal_surat", Tag: "required", Message: "validation.tanggal_surat_required"},
	{Field: "tgl_terima", Tag: "required", Message: "validation.tgl_terima_required"},
	{Field: "pengirim", Tag: "required", Message: "validation.pengirim_required"},
	{Field: "perihal", Tag: "required", Message: "validation.perihal_required"},
}

// SuratKeluarCreateRules report a dedicated message per mandatory field.
var SuratKeluarCreateRules = []Rule{
	{Field: "nomor_surat", Tag: "required", Message: "validation.nomor_surat_required"},
	{Field: "tanggal_surat", Tag: "required", Message: "validation.tanggal_surat_required"},
	{Field: "tujuan", Tag: "required", Message: "validation.tujuan_required"},
	{Field: "perihal", Tag: "required", Message: "validation.perihal_required"},
}

// SuratMasukEditRules block the same empty fields with one generic message.
var SuratMasukEditRules = Generic(SuratMasukCreateRules, "validation.invalid")

// SuratKeluarEditRules block the same empty fields with one generic message.
var SuratKeluarEditRules = Generic(SuratKeluarCreateRules, "validation.invalid")

// Generic returns a copy of rules where every rule reports message.
func Generic(rules []Rule, message string) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Field: r.Field, Tag: r.Tag, Message: message}
	}
	return out
}
