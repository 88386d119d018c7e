// Package stream turns raw knowledge-graph documents into the documents a
// template receives: filtered by entity type and locale, projected to the
// template's field list, with the site record attached.
package stream

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/3-lines-studio/pagesmith/internal/core"
)

const siteKey = "_site"

// Qualifies reports whether doc belongs to the stream. Documents without
// meta.entityType are assumed to be pre-filtered by their source; documents
// without meta.locale are treated as primary-locale documents.
func Qualifies(cfg core.StreamConfig, doc []byte) bool {
	meta := gjson.GetBytes(doc, "meta")

	if et := meta.Get("entityType"); et.Exists() && len(cfg.Filter.EntityTypes) > 0 {
		if !slices.Contains(cfg.Filter.EntityTypes, et.String()) {
			return false
		}
	}

	if loc := meta.Get("locale"); loc.Exists() && len(cfg.Localization.Locales) > 0 {
		if !slices.Contains(cfg.Localization.Locales, loc.String()) {
			return false
		}
	}

	return true
}

// Project keeps only the listed fields of doc. A dotted field selects a
// nested value; when it crosses an array the selection applies to every
// element, so "faqs.question" keeps the question of each FAQ.
func Project(doc []byte, fields []string) ([]byte, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("project document: invalid JSON")
	}

	src := gjson.ParseBytes(doc)
	out := []byte("{}")
	for _, field := range fields {
		var err error
		out, err = project(src, out, "", strings.Split(field, "."))
		if err != nil {
			return nil, fmt.Errorf("project field %q: %w", field, err)
		}
	}
	return out, nil
}

func project(src gjson.Result, out []byte, prefix string, segs []string) ([]byte, error) {
	v := src.Get(segs[0])
	if !v.Exists() {
		return out, nil
	}

	key := segs[0]
	if prefix != "" {
		key = prefix + "." + segs[0]
	}

	if len(segs) == 1 {
		return sjson.SetRawBytes(out, key, []byte(v.Raw))
	}

	var err error
	switch {
	case v.IsArray():
		elems := v.Array()
		if !gjson.GetBytes(out, key).Exists() {
			out, err = sjson.SetRawBytes(out, key, []byte(emptyObjects(len(elems))))
			if err != nil {
				return nil, err
			}
		}
		for i, el := range elems {
			if !el.IsObject() {
				continue
			}
			out, err = project(el, out, key+"."+strconv.Itoa(i), segs[1:])
			if err != nil {
				return nil, err
			}
		}
		return out, nil

	case v.IsObject():
		if !gjson.GetBytes(out, key).Exists() {
			out, err = sjson.SetRawBytes(out, key, []byte("{}"))
			if err != nil {
				return nil, err
			}
		}
		return project(v, out, key, segs[1:])
	}

	return out, nil
}

func emptyObjects(n int) string {
	if n == 0 {
		return "[]"
	}
	return "[" + strings.Repeat("{},", n-1) + "{}]"
}

// AttachSite sets the _site field of doc to the raw site record.
func AttachSite(doc, site []byte) ([]byte, error) {
	out, err := sjson.SetRawBytes(doc, siteKey, site)
	if err != nil {
		return nil, fmt.Errorf("attach site record: %w", err)
	}
	return out, nil
}

// SiteDocument wraps the site record for templates that have no stream.
func SiteDocument(site []byte) ([]byte, error) {
	return AttachSite([]byte("{}"), site)
}

// Prepare filters, projects and completes doc for cfg. The boolean is false
// when doc does not belong to the stream.
func Prepare(cfg core.StreamConfig, doc, site []byte) ([]byte, bool, error) {
	if !Qualifies(cfg, doc) {
		return nil, false, nil
	}

	projected, err := Project(doc, cfg.Fields)
	if err != nil {
		return nil, false, err
	}

	out, err := AttachSite(projected, site)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// DocumentID returns the document's id as a string, whether stored as a
// string or a number.
func DocumentID(doc []byte) string {
	return gjson.GetBytes(doc, "id").String()
}
