package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/pdfweld/pdfweld/internal/config"
	"github.com/pdfweld/pdfweld/outline"
)

func testServer() *Server {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := config.Load()
	return NewServer(log, cfg)
}

func TestHealth(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("body = %q", got)
	}
}

func TestMergeRequiresFiles(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("bookmarks", "true")
	mw.Close()

	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/merge", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestMergeRejectsNonMultipart(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/merge", bytes.NewBufferString("not a form"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestMergeRejectsNonPDFContent(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "fake.pdf")
	fw.Write([]byte("this is plain text, not a PDF"))
	mw.Close()

	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/merge", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnsupportedMediaType)
	}
}

func TestOutlineRequiresSingleFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"a.pdf", "b.pdf"} {
		fw, _ := mw.CreateFormFile("file", name)
		fw.Write([]byte("%PDF-1.4"))
	}
	mw.Close()

	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/outline", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestOutlineNodesNesting(t *testing.T) {
	forest := outline.Forest{
		&outline.Leaf{Dest: outline.Destination{Title: "Chapter 1"}},
		outline.Group{
			&outline.Leaf{Dest: outline.Destination{Title: "Section 1.1"}},
		},
		&outline.Leaf{Dest: outline.Destination{Title: "Chapter 2"}},
	}

	got := outlineNodes(forest)
	want := []outlineNode{
		{Title: "Chapter 1", Kids: []outlineNode{{Title: "Section 1.1"}}},
		{Title: "Chapter 2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("outlineNodes = %+v, want %+v", got, want)
	}
}

func TestBookmarkTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report"},
		{"dir/nested/report.pdf", "report"},
		{"no-extension", "no-extension"},
	}
	for _, tt := range tests {
		if got := bookmarkTitle(tt.in); got != tt.want {
			t.Errorf("bookmarkTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
