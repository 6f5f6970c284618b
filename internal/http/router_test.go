package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SK-Digital/Note-App/internal/export"
	"github.com/SK-Digital/Note-App/internal/model"
	"github.com/SK-Digital/Note-App/internal/repository"
	"github.com/SK-Digital/Note-App/internal/storage"
)

func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return &Deps{
		Repo:     repository.New(store),
		Store:    store,
		Importer: export.NewMarkdownImporter(),
	}
}

func TestNewRouter(t *testing.T) {
	router := NewRouter(newTestDeps(t))
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router := NewRouter(newTestDeps(t))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "GET /api/health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /api/notes",
			method:     http.MethodGet,
			path:       "/api/notes",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/notes creates",
			method:     http.MethodPost,
			path:       "/api/notes",
			wantStatus: http.StatusCreated,
		},
		{
			name:       "GET /api/folders",
			method:     http.MethodGet,
			path:       "/api/folders",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/folders with blank name is rejected",
			method:     http.MethodPost,
			path:       "/api/folders",
			body:       `{"name":"   "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "PUT /api/notes/{id} unknown id with empty title",
			method:     http.MethodPut,
			path:       "/api/notes/unknown",
			body:       `{"title":""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "DELETE /api/notes/{id} absent id succeeds",
			method:     http.MethodDelete,
			path:       "/api/notes/never-existed",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /api/notes/{id}/export unknown id",
			method:     http.MethodGet,
			path:       "/api/notes/unknown/export",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *bytes.Buffer
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			} else {
				body = bytes.NewBuffer(nil)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d (body: %s)", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRouter_NoteLifecycle(t *testing.T) {
	router := NewRouter(newTestDeps(t))

	do := func(method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decodeNote := func(w *httptest.ResponseRecorder) model.Note {
		t.Helper()
		var resp struct {
			Success bool       `json:"success"`
			Data    model.Note `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response %s: %v", w.Body.String(), err)
		}
		if !resp.Success {
			t.Fatalf("response not successful: %s", w.Body.String())
		}
		return resp.Data
	}

	// Create a folder, create a note, save it, move it, list the folder.
	w := do(http.MethodPost, "/api/folders", `{"name":"Recipes"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create folder status = %d: %s", w.Code, w.Body.String())
	}
	var folderResp struct {
		Data model.Folder `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &folderResp); err != nil {
		t.Fatalf("failed to decode folder: %v", err)
	}
	folderID := folderResp.Data.ID

	w = do(http.MethodPost, "/api/notes", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create note status = %d: %s", w.Code, w.Body.String())
	}
	note := decodeNote(w)

	w = do(http.MethodPut, "/api/notes/"+note.ID, `{"title":"Pancakes","content":"<p>flour</p>"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("save note status = %d: %s", w.Code, w.Body.String())
	}

	w = do(http.MethodPost, "/api/notes/"+note.ID+"/move", `{"folderId":"`+folderID+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("move note status = %d: %s", w.Code, w.Body.String())
	}
	moved := decodeNote(w)
	if moved.FolderID != folderID {
		t.Errorf("moved folderID = %q, want %q", moved.FolderID, folderID)
	}

	w = do(http.MethodGet, "/api/notes?folder="+folderID, "")
	var listResp struct {
		Data []model.Note `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(listResp.Data) != 1 || listResp.Data[0].ID != note.ID {
		t.Errorf("folder listing = %+v, want the moved note", listResp.Data)
	}

	// Export round trip keeps the title.
	w = do(http.MethodGet, "/api/notes/"+note.ID+"/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("# Pancakes")) {
		t.Errorf("export body = %q, want title heading", w.Body.String())
	}

	w = do(http.MethodDelete, "/api/notes/"+note.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", w.Code, w.Body.String())
	}
	w = do(http.MethodGet, "/api/notes?folder="+folderID, "")
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(listResp.Data) != 0 {
		t.Errorf("folder listing after delete = %+v, want empty", listResp.Data)
	}
}
