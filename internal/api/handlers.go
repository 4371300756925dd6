package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfweld/pdfweld"
	"github.com/pdfweld/pdfweld/format"
	"github.com/pdfweld/pdfweld/outline"
	"github.com/pdfweld/pdfweld/pdfcpudoc"
)

// errNotPDF marks uploads whose content is not a PDF
var errNotPDF = errors.New("not a PDF")

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}
	if len(files) > s.cfg.MaxFiles {
		jsonError(w, fmt.Sprintf("too many files: %d (max %d)", len(files), s.cfg.MaxFiles), http.StatusBadRequest)
		return
	}

	withBookmarks := r.FormValue("bookmarks") == "true"
	withOutlines := r.FormValue("outline") != "false"

	workDir, err := os.MkdirTemp(s.cfg.TempDir, "pdfweld-merge-")
	if err != nil {
		jsonError(w, "failed to create scratch directory", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(workDir)

	m := pdfweld.New(pdfweld.WithOpener(pdfcpudoc.Opener{}))
	defer m.Close()

	for i, fh := range files {
		path, err := saveUpload(fh, workDir, i)
		if errors.Is(err, errNotPDF) {
			jsonError(w, err.Error(), http.StatusUnsupportedMediaType)
			return
		}
		if err != nil {
			jsonError(w, "failed to store upload: "+err.Error(), http.StatusInternalServerError)
			return
		}

		var opts []pdfweld.MergeOption
		if withBookmarks {
			opts = append(opts, pdfweld.WithBookmark(bookmarkTitle(fh.Filename)))
		}
		if !withOutlines {
			opts = append(opts, pdfweld.WithoutOutline())
		}
		if err := m.AppendFile(path, opts...); err != nil {
			s.log.Error("merge failed", "file", fh.Filename, "error", err)
			jsonError(w, fmt.Sprintf("failed to merge %s: %v", fh.Filename, err), http.StatusUnprocessableEntity)
			return
		}
	}

	outPath := filepath.Join(workDir, "merged.pdf")
	if err := m.Write(pdfcpudoc.NewSink(outPath, nil)); err != nil {
		s.log.Error("write failed", "error", err)
		jsonError(w, "failed to write merged document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="merged.pdf"`)
	http.ServeFile(w, r, outPath)
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	fh, err := singleFile(r.MultipartForm)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	workDir, err := os.MkdirTemp(s.cfg.TempDir, "pdfweld-outline-")
	if err != nil {
		jsonError(w, "failed to create scratch directory", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(workDir)

	path, err := saveUpload(fh, workDir, 0)
	if errors.Is(err, errNotPDF) {
		jsonError(w, err.Error(), http.StatusUnsupportedMediaType)
		return
	}
	if err != nil {
		jsonError(w, "failed to store upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	doc, err := pdfcpudoc.OpenFile(path, nil)
	if err != nil {
		jsonError(w, "failed to read document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	defer doc.Close()

	forest, err := doc.Outlines()
	if err != nil {
		jsonError(w, "failed to read outline: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"file":    fh.Filename,
		"outline": outlineNodes(forest),
	})
}

// outlineNode is the JSON shape of one outline entry
type outlineNode struct {
	Title string        `json:"title"`
	Kids  []outlineNode `json:"kids,omitempty"`
}

// outlineNodes converts a forest into nested nodes, attaching each
// group to the leaf it follows.
func outlineNodes(forest outline.Forest) []outlineNode {
	nodes := []outlineNode{}
	for _, e := range forest {
		switch v := e.(type) {
		case *outline.Leaf:
			nodes = append(nodes, outlineNode{Title: v.Dest.Title})
		case outline.Group:
			kids := outlineNodes(outline.Forest(v))
			if len(nodes) > 0 {
				nodes[len(nodes)-1].Kids = kids
			} else {
				nodes = append(nodes, kids...)
			}
		}
	}
	return nodes
}

func singleFile(form *multipart.Form) (*multipart.FileHeader, error) {
	files := form.File["file"]
	if len(files) == 0 {
		return nil, fmt.Errorf("file is required")
	}
	if len(files) > 1 {
		return nil, fmt.Errorf("exactly one file is required, got %d", len(files))
	}
	return files[0], nil
}

// saveUpload stores one upload in dir, verifying by magic bytes that
// the content is a PDF.
func saveUpload(fh *multipart.FileHeader, dir string, index int) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	head = head[:n]
	if format.DetectFromMagic(head) != format.PDF {
		return "", fmt.Errorf("%s: %w", fh.Filename, errNotPDF)
	}

	path := filepath.Join(dir, fmt.Sprintf("in-%d.pdf", index))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.Write(head); err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}

// bookmarkTitle derives a bookmark title from an uploaded filename
func bookmarkTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
