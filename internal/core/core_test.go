package core

import (
	"strings"
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	valid := []string{"index.html", "1001", "loc-flatiron", "locations/austin.html"}
	for _, p := range valid {
		if err := ValidateOutputPath(p); err != nil {
			t.Errorf("ValidateOutputPath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "/abs", "a\\b", "a?b", "a#b", "a*", "../up", "a/../b", "a//b", "./a"}
	for _, p := range invalid {
		if err := ValidateOutputPath(p); err == nil {
			t.Errorf("ValidateOutputPath(%q) = nil, want error", p)
		}
	}
}

func TestRouteForPath(t *testing.T) {
	tests := map[string]string{
		"index.html":  "/",
		"1001":        "/1001",
		"menu/":       "/menu",
		"locations/a": "/locations/a",
	}
	for in, want := range tests {
		if got := RouteForPath(in); got != want {
			t.Errorf("RouteForPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecidePageAction(t *testing.T) {
	tests := []struct {
		path   string
		action PageAction
		id     string
		asset  string
	}{
		{path: "/", action: ActionRenderIndex},
		{path: "/index.html", action: ActionRenderIndex},
		{path: "/index", action: ActionRenderIndex},
		{path: "/1001", action: ActionRenderEntity, id: "1001"},
		{path: "/1001/", action: ActionRenderEntity, id: "1001"},
		{path: "/assets/index.css", action: ActionServeAsset, asset: "index.css"},
		{path: "/assets/../secret", action: ActionNotFound},
		{path: "/a/b", action: ActionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := DecidePageAction(tt.path)
			if got.Action != tt.action || got.EntityID != tt.id || got.AssetPath != tt.asset {
				t.Errorf("DecidePageAction(%q) = %+v", tt.path, got)
			}
		})
	}
}

func TestManifest(t *testing.T) {
	m := NewManifest()
	m.Pages["/"] = ManifestEntry{Template: "index", File: "index.html", Hash: "aa"}
	m.Pages["/1001"] = ManifestEntry{Template: "location", RecordID: "1001", File: "1001", Hash: "bb"}

	data, err := m.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	parsed, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if parsed.Version != ManifestVersion {
		t.Errorf("Version = %d, want %d", parsed.Version, ManifestVersion)
	}

	entry, ok := parsed.Lookup("1001/")
	if !ok || entry.RecordID != "1001" {
		t.Errorf("Lookup(1001/) = %+v, %v", entry, ok)
	}
	if _, ok := parsed.Lookup("/missing"); ok {
		t.Error("Lookup(/missing) found an entry")
	}

	routes := parsed.Routes()
	if strings.Join(routes, ",") != "/,/1001" {
		t.Errorf("Routes() = %v", routes)
	}

	empty, err := ParseManifest([]byte(`{"version":1}`))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if empty.Pages == nil {
		t.Error("expected Pages to be initialised")
	}

	var nilManifest *Manifest
	if _, ok := nilManifest.Lookup("/"); ok {
		t.Error("nil manifest lookup found an entry")
	}
}

func TestHashContent(t *testing.T) {
	a := HashContent([]byte("<p>a</p>"))
	if len(a) != 16 {
		t.Errorf("hash length = %d, want 16", len(a))
	}
	if a != HashContent([]byte("<p>a</p>")) {
		t.Error("hash is not stable")
	}
	if a == HashContent([]byte("<p>b</p>")) {
		t.Error("different content produced the same hash")
	}
}

func TestRenderDocument(t *testing.T) {
	page := RenderedPage{
		Path: "1001",
		Head: HeadConfig{
			Title: "Tacos & Co",
			Tags:  []HeadTag{MetaDescription(`Fresh "al pastor"`)},
		},
		Body: `<div class="banner">Hi</div>`,
	}

	out, err := RenderDocument(page, DocumentOptions{CSSHref: "/assets/index.css"})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	for _, want := range []string{
		"<!doctype html>",
		`<html lang="en">`,
		`<meta charset="UTF-8" />`,
		`<meta name="viewport" content="width=device-width, initial-scale=1" />`,
		"<title>Tacos &amp; Co</title>",
		`<meta name="description" content="Fresh &#34;al pastor&#34;"/>`,
		`<link rel="stylesheet" href="/assets/index.css" />`,
		`<div id="app"><div class="banner">Hi</div></div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q:\n%s", want, out)
		}
	}

	out, err = RenderDocument(page, DocumentOptions{Lang: "es"})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !strings.Contains(out, `<html lang="es">`) || strings.Contains(out, "stylesheet") {
		t.Errorf("unexpected document:\n%s", out)
	}
}

func TestGetContentType(t *testing.T) {
	if got := GetContentType("index.CSS"); got != "text/css" {
		t.Errorf("GetContentType(index.CSS) = %q", got)
	}
	if got := GetContentType("blob"); got != "application/octet-stream" {
		t.Errorf("GetContentType(blob) = %q", got)
	}
}
