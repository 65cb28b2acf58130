// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/render"
	"github.com/olegiv/suratku/internal/service"
	"github.com/olegiv/suratku/internal/store"
	"github.com/olegiv/suratku/internal/validation"
)

// FieldSpec describes one input of a letter form.
type FieldSpec struct {
	Name     string
	LabelKey string
	Type     string // text, date or textarea
}

// LetterSpec binds a letter kind to its routes, form fields, list columns
// and validation rules.
type LetterSpec[T any] struct {
	// BasePath is the list URL, e.g. /admin/surat-masuk.
	BasePath string
	// KeyPrefix prefixes the page titles (page.<prefix>...) and the
	// success messages (<prefix>.created ...).
	KeyPrefix   string
	Fields      []FieldSpec
	Columns     []string
	CreateRules []validation.Rule
	EditRules   []validation.Rule

	// Bind builds a record from trimmed form values.
	Bind func(validation.Fields) T
	// Values returns the form values of a record.
	Values func(T) validation.Fields
	// Row returns the id and display cells of a record.
	Row func(lang string, rec T) ListRow
}

// ListView is the data of the letter list page.
type ListView struct {
	BasePath string
	Columns  []string
	Rows     []ListRow
}

// ListRow is one table row of the letter list.
type ListRow struct {
	ID    int64
	Cells []string
}

// FormView is the data of the create and edit pages.
type FormView struct {
	Action     string
	CancelPath string
	Fields     []FormField
}

// FormField is one rendered form input.
type FormField struct {
	Name     string
	LabelKey string
	Type     string
	Value    string
}

// ConfirmView is the data of the delete confirmation page.
type ConfirmView struct {
	Label      string
	Action     string
	CancelPath string
}

// LetterHandler serves list, create, edit and delete for one letter kind.
type LetterHandler[T any] struct {
	letters  *service.Collection[T]
	spec     LetterSpec[T]
	renderer *render.Renderer
	flash    *flash.Queue
}

// NewLetterHandler creates a LetterHandler.
func NewLetterHandler[T any](letters *service.Collection[T], spec LetterSpec[T], renderer *render.Renderer, fq *flash.Queue) *LetterHandler[T] {
	return &LetterHandler[T]{
		letters:  letters,
		spec:     spec,
		renderer: renderer,
		flash:    fq,
	}
}

func (h *LetterHandler[T]) title(lang, suffix string) string {
	return i18n.T(lang, "page."+h.spec.KeyPrefix+suffix)
}

func (h *LetterHandler[T]) editPath(id int64) string {
	return fmt.Sprintf("%s/edit/%d", h.spec.BasePath, id)
}

func (h *LetterHandler[T]) deletePath(id int64) string {
	return fmt.Sprintf("%s/hapus/%d", h.spec.BasePath, id)
}

// List handles GET {base}.
func (h *LetterHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	items, err := h.letters.List(r.Context())
	if err != nil {
		flashServerError(w, r, h.flash, redirectDashboard, "failed to list letters", "kind", h.letters.Label(), "error", err)
		return
	}

	rows := make([]ListRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, h.spec.Row(lang, item))
	}

	renderPage(w, r, h.renderer, tmplLetterList, render.TemplateData{
		Title: h.title(lang, ""),
		Data: ListView{
			BasePath: h.spec.BasePath,
			Columns:  h.spec.Columns,
			Rows:     rows,
		},
	})
}

// NewForm handles GET {base}/tambah.
func (h *LetterHandler[T]) NewForm(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)
	h.renderForm(w, r, h.title(lang, "_add"), h.spec.BasePath+RouteSuffixAdd, nil)
}

// Create handles POST {base}/tambah.
func (h *LetterHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)
	formPath := h.spec.BasePath + RouteSuffixAdd

	fields, ok := h.bindForm(w, r, formPath)
	if !ok {
		return
	}
	if msg, ok := validation.Validate(fields, h.spec.CreateRules); !ok {
		flashError(w, r, h.flash, formPath, i18n.T(lang, msg))
		return
	}

	if _, err := h.letters.Create(r.Context(), middleware.GetUserID(r), h.spec.Bind(fields)); err != nil {
		flashServerError(w, r, h.flash, h.spec.BasePath, "failed to create letter", "kind", h.letters.Label(), "error", err)
		return
	}

	flashSuccess(w, r, h.flash, h.spec.BasePath, i18n.T(lang, h.spec.KeyPrefix+".created"))
}

// EditForm handles GET {base}/edit/{id}. Unknown ids go back to the list.
func (h *LetterHandler[T]) EditForm(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	rec, id, ok := h.load(w, r)
	if !ok {
		return
	}

	h.renderForm(w, r, h.title(lang, "_edit"), h.editPath(id), h.spec.Values(rec))
}

// Update handles POST {base}/edit/{id}.
func (h *LetterHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	id, ok := parseIDParam(r)
	if !ok {
		http.Redirect(w, r, h.spec.BasePath, http.StatusSeeOther)
		return
	}

	fields, ok := h.bindForm(w, r, h.editPath(id))
	if !ok {
		return
	}
	if msg, ok := validation.Validate(fields, h.spec.EditRules); !ok {
		flashError(w, r, h.flash, h.editPath(id), i18n.T(lang, msg))
		return
	}

	err := h.letters.Update(r.Context(), middleware.GetUserID(r), id, h.spec.Bind(fields))
	if errors.Is(err, service.ErrNotFound) {
		http.Redirect(w, r, h.spec.BasePath, http.StatusSeeOther)
		return
	}
	if err != nil {
		flashServerError(w, r, h.flash, h.spec.BasePath, "failed to update letter", "kind", h.letters.Label(), "id", id, "error", err)
		return
	}

	flashSuccess(w, r, h.flash, h.spec.BasePath, i18n.T(lang, h.spec.KeyPrefix+".updated"))
}

// ConfirmDelete handles GET {base}/hapus/{id}. It only renders a
// confirmation form; nothing is deleted by a GET.
func (h *LetterHandler[T]) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	rec, id, ok := h.load(w, r)
	if !ok {
		return
	}

	renderPage(w, r, h.renderer, tmplConfirmDelete, render.TemplateData{
		Title: h.title(lang, "_delete"),
		Data: ConfirmView{
			Label:      h.spec.Values(rec)["nomor_surat"],
			Action:     h.deletePath(id),
			CancelPath: h.spec.BasePath,
		},
	})
}

// Delete handles POST {base}/hapus/{id}. Deleting a missing id still
// succeeds and is audited.
func (h *LetterHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	id, ok := parseIDParam(r)
	if !ok {
		http.Redirect(w, r, h.spec.BasePath, http.StatusSeeOther)
		return
	}

	if _, err := h.letters.Delete(r.Context(), middleware.GetUserID(r), id); err != nil {
		flashServerError(w, r, h.flash, h.spec.BasePath, "failed to delete letter", "kind", h.letters.Label(), "id", id, "error", err)
		return
	}

	flashSuccess(w, r, h.flash, h.spec.BasePath, i18n.T(lang, h.spec.KeyPrefix+".deleted"))
}

// load fetches the record named by {id}. Malformed and unknown ids redirect
// silently to the list; storage errors are flashed.
func (h *LetterHandler[T]) load(w http.ResponseWriter, r *http.Request) (rec T, id int64, ok bool) {
	id, ok = parseIDParam(r)
	if !ok {
		http.Redirect(w, r, h.spec.BasePath, http.StatusSeeOther)
		return rec, 0, false
	}

	rec, err := h.letters.Get(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		http.Redirect(w, r, h.spec.BasePath, http.StatusSeeOther)
		return rec, 0, false
	}
	if err != nil {
		flashServerError(w, r, h.flash, h.spec.BasePath, "failed to load letter", "kind", h.letters.Label(), "id", id, "error", err)
		return rec, 0, false
	}
	return rec, id, true
}

// bindForm parses the form and returns the whitespace-trimmed values of
// the letter's fields.
func (h *LetterHandler[T]) bindForm(w http.ResponseWriter, r *http.Request, formPath string) (validation.Fields, bool) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.flash, formPath, i18n.T(middleware.GetLang(r), "validation.invalid"))
		return nil, false
	}

	fields := make(validation.Fields, len(h.spec.Fields))
	for _, f := range h.spec.Fields {
		fields[f.Name] = strings.TrimSpace(r.PostFormValue(f.Name))
	}
	return fields, true
}

func (h *LetterHandler[T]) renderForm(w http.ResponseWriter, r *http.Request, title, action string, values validation.Fields) {
	fields := make([]FormField, 0, len(h.spec.Fields))
	for _, f := range h.spec.Fields {
		fields = append(fields, FormField{
			Name:     f.Name,
			LabelKey: f.LabelKey,
			Type:     f.Type,
			Value:    values[f.Name],
		})
	}

	renderPage(w, r, h.renderer, tmplLetterForm, render.TemplateData{
		Title: title,
		Data: FormView{
			Action:     action,
			CancelPath: h.spec.BasePath,
			Fields:     fields,
		},
	})
}

// SuratMasukSpec describes the incoming letter pages.
func SuratMasukSpec() LetterSpec[store.SuratMasuk] {
	return LetterSpec[store.SuratMasuk]{
		BasePath:  redirectSuratMasuk,
		KeyPrefix: "surat_masuk",
		Fields: []FieldSpec{
			{Name: "nomor_surat", LabelKey: "field.nomor_surat", Type: "text"},
			{Name: "tanggal_surat", LabelKey: "field.tanggal_surat", Type: "date"},
			{Name: "tgl_terima", LabelKey: "field.tgl_terima", Type: "date"},
			{Name: "pengirim", LabelKey: "field.pengirim", Type: "text"},
			{Name: "perihal", LabelKey: "field.perihal", Type: "textarea"},
		},
		Columns:     []string{"field.nomor_surat", "field.tanggal_surat", "field.tgl_terima", "field.pengirim", "field.perihal"},
		CreateRules: validation.SuratMasukCreateRules,
		EditRules:   validation.SuratMasukEditRules,
		Bind: func(f validation.Fields) store.SuratMasuk {
			return store.SuratMasuk{
				NomorSurat:   f["nomor_surat"],
				TanggalSurat: f["tanggal_surat"],
				TglTerima:    f["tgl_terima"],
				Pengirim:     f["pengirim"],
				Perihal:      f["perihal"],
			}
		},
		Values: func(s store.SuratMasuk) validation.Fields {
			return validation.Fields{
				"nomor_surat":   s.NomorSurat,
				"tanggal_surat": s.TanggalSurat,
				"tgl_terima":    s.TglTerima,
				"pengirim":      s.Pengirim,
				"perihal":       s.Perihal,
			}
		},
		Row: func(lang string, s store.SuratMasuk) ListRow {
			return ListRow{ID: s.ID, Cells: []string{
				s.NomorSurat,
				render.FormatDate(lang, s.TanggalSurat),
				render.FormatDate(lang, s.TglTerima),
				s.Pengirim,
				s.Perihal,
			}}
		},
	}
}

// SuratKeluarSpec describes the outgoing letter pages.
func SuratKeluarSpec() LetterSpec[store.SuratKeluar] {
	return LetterSpec[store.SuratKeluar]{
		BasePath:  redirectSuratKeluar,
		KeyPrefix: "surat_keluar",
		Fields: []FieldSpec{
			{Name: "nomor_surat", LabelKey: "field.nomor_surat", Type: "text"},
			{Name: "tanggal_surat", LabelKey: "field.tanggal_surat", Type: "date"},
			{Name: "tujuan", LabelKey: "field.tujuan", Type: "text"},
			{Name: "perihal", LabelKey: "field.perihal", Type: "textarea"},
		},
		Columns:     []string{"field.nomor_surat", "field.tanggal_surat", "field.tujuan", "field.perihal"},
		CreateRules: validation.SuratKeluarCreateRules,
		EditRules:   validation.SuratKeluarEditRules,
		Bind: func(f validation.Fields) store.SuratKeluar {
			return store.SuratKeluar{
				NomorSurat:   f["nomor_surat"],
				TanggalSurat: f["tanggal_surat"],
				Tujuan:       f["tujuan"],
				Perihal:      f["perihal"],
			}
		},
		Values: func(s store.SuratKeluar) validation.Fields {
			return validation.Fields{
				"nomor_surat":   s.NomorSurat,
				"tanggal_surat": s.TanggalSurat,
				"tujuan":        s.Tujuan,
				"perihal":       s.Perihal,
			}
		},
		Row: func(lang string, s store.SuratKeluar) ListRow {
			return ListRow{ID: s.ID, Cells: []string{
				s.NomorSurat,
				render.FormatDate(lang, s.TanggalSurat),
				s.Tujuan,
				s.Perihal,
			}}
		},
	}
}

// NewSuratMasukHandler wires the incoming letter pages to db.
func NewSuratMasukHandler(db *sql.DB, renderer *render.Renderer, fq *flash.Queue) *LetterHandler[store.SuratMasuk] {
	return NewLetterHandler(service.NewCollection(db, service.SuratMasuk), SuratMasukSpec(), renderer, fq)
}

// NewSuratKeluarHandler wires the outgoing letter pages to db.
func NewSuratKeluarHandler(db *sql.DB, renderer *render.Renderer, fq *flash.Queue) *LetterHandler[store.SuratKeluar] {
	return NewLetterHandler(service.NewCollection(db, service.SuratKeluar), SuratKeluarSpec(), renderer, fq)
}
