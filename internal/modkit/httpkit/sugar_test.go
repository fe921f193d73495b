package httpkit

import (
	"net/http"
	"testing"

	phttp "tallybook/internal/platform/net/http"
)

// fakeRouterSugar satisfies the platform Router surface we need here
// it records verb + path + handler for assertions
type fakeRouterSugar struct {
	recs []struct {
		verb string
		path string
		h    phttp.Handler
	}
}

func (f *fakeRouterSugar) rec(verb, path string, h phttp.Handler) {
	f.recs = append(f.recs, struct {
		verb string
		path string
		h    phttp.Handler
	}{verb, path, h})
}

func (f *fakeRouterSugar) Route(_ string, fn func(Router))          { fn(f) }
func (f *fakeRouterSugar) Group(fn func(Router))                    { fn(f) }
func (f *fakeRouterSugar) Use(_ ...func(http.Handler) http.Handler) {}
func (f *fakeRouterSugar) Mux() http.Handler                        { return http.NewServeMux() }
func (f *fakeRouterSugar) Handle(path string, h http.Handler)       { /* not used here */ }
func (f *fakeRouterSugar) Get(path string, h phttp.Handler)         { f.rec("GET", path, h) }
func (f *fakeRouterSugar) Post(path string, h phttp.Handler)        { f.rec("POST", path, h) }
func (f *fakeRouterSugar) Put(path string, h phttp.Handler)         { f.rec("PUT", path, h) }
func (f *fakeRouterSugar) Patch(path string, h phttp.Handler)       { f.rec("PATCH", path, h) }
func (f *fakeRouterSugar) Delete(path string, h phttp.Handler)      { f.rec("DELETE", path, h) }

func TestJSONSugar_MountsUnderEachVerb(t *testing.T) {
	type req struct{ A int }
	handler := func(_ *http.Request, _ req) (any, error) { return "ok", nil }

	cases := []struct {
		verb  string
		path  string
		mount func(Router)
	}{
		{"GET", "/a", func(r Router) { GetJSON[req](r, "/a", handler) }},
		{"POST", "/b", func(r Router) { PostJSON[req](r, "/b", handler) }},
		{"PUT", "/c", func(r Router) { PutJSON[req](r, "/c", handler) }},
		{"PATCH", "/d", func(r Router) { PatchJSON[req](r, "/d", handler) }},
		{"DELETE", "/e", func(r Router) { DeleteJSON[req](r, "/e", handler) }},
	}

	for _, tc := range cases {
		t.Run(tc.verb, func(t *testing.T) {
			r := &fakeRouterSugar{}
			tc.mount(r)

			if len(r.recs) != 1 {
				t.Fatalf("expected 1 registration, got %d", len(r.recs))
			}
			got := r.recs[0]
			if got.verb != tc.verb || got.path != tc.path {
				t.Fatalf("expected %s %s, got %s %s", tc.verb, tc.path, got.verb, got.path)
			}
			if got.h == nil {
				t.Fatalf("expected non-nil handler")
			}
		})
	}
}

func TestBodylessSugar_MountsUnderEachVerb(t *testing.T) {
	handler := func(_ *http.Request) (any, error) { return "ok", nil }

	cases := []struct {
		verb  string
		path  string
		mount func(Router)
	}{
		{"GET", "/g", func(r Router) { Get(r, "/g", handler) }},
		{"POST", "/h", func(r Router) { Post(r, "/h", handler) }},
		{"PUT", "/i", func(r Router) { Put(r, "/i", handler) }},
		{"PATCH", "/j", func(r Router) { Patch(r, "/j", handler) }},
		{"DELETE", "/k", func(r Router) { Delete(r, "/k", handler) }},
	}

	for _, tc := range cases {
		t.Run(tc.verb, func(t *testing.T) {
			r := &fakeRouterSugar{}
			tc.mount(r)

			if len(r.recs) != 1 {
				t.Fatalf("expected 1 registration, got %d", len(r.recs))
			}
			got := r.recs[0]
			if got.verb != tc.verb || got.path != tc.path {
				t.Fatalf("expected %s %s, got %s %s", tc.verb, tc.path, got.verb, got.path)
			}
			if got.h == nil {
				t.Fatalf("expected non-nil handler")
			}
		})
	}
}
