package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"idish-backend/config"
	"idish-backend/models"
)

// tiny valid-enough payload; the handler trusts the declared content type
var fakeJPEG = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func imageRequest(t *testing.T, token string, fields map[string]string, filename, contentType string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if filename != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(fakeJPEG); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/image/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestImageUploadAndLink(t *testing.T) {
	r := setupRouter(t)
	chefToken, _ := signup(t, r, models.RoleChef, "chef@idish.test")
	dishID := createDish(t, r, chefToken, "Feijoada", 12)

	req := imageRequest(t, chefToken, map[string]string{
		"bucket":    "dishes",
		"record_id": fmt.Sprint(dishID),
		"table":     "dishes",
	}, "plate.jpg", "image/jpeg")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("upload: want 200, got %d: %s", w.Code, w.Body.String())
	}
	url, _ := decode(t, w)["image_url"].(string)
	if !strings.HasPrefix(url, "/uploads/dishes/") {
		t.Errorf("image_url = %q, want /uploads/dishes/ prefix", url)
	}

	var dish models.Dish
	config.DB.First(&dish, dishID)
	if dish.ImageURL != url {
		t.Errorf("dish image_url = %q, want linked %q", dish.ImageURL, url)
	}
}

func TestImageUploadLinkFailureStillSucceeds(t *testing.T) {
	r := setupRouter(t)
	chefToken, _ := signup(t, r, models.RoleChef, "chef@idish.test")

	// non-linkable table: upload still succeeds, link is skipped
	req := imageRequest(t, chefToken, map[string]string{
		"bucket":    "dishes",
		"record_id": "1",
		"table":     "users",
	}, "plate.jpg", "image/jpeg")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("upload: want 200, got %d: %s", w.Code, w.Body.String())
	}
	if url, _ := decode(t, w)["image_url"].(string); url == "" {
		t.Error("image_url missing from response")
	}
}

func TestImageUploadValidation(t *testing.T) {
	r := setupRouter(t)
	chefToken, _ := signup(t, r, models.RoleChef, "chef@idish.test")

	cases := []struct {
		name        string
		fields      map[string]string
		filename    string
		contentType string
	}{
		{"missing file", map[string]string{"bucket": "dishes"}, "", ""},
		{"bad bucket", map[string]string{"bucket": "secrets"}, "a.jpg", "image/jpeg"},
		{"missing bucket", map[string]string{}, "a.jpg", "image/jpeg"},
		{"bad type", map[string]string{"bucket": "dishes"}, "a.gif", "image/gif"},
	}
	for _, tc := range cases {
		req := imageRequest(t, chefToken, tc.fields, tc.filename, tc.contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: want 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}

	// unauthenticated upload
	req := imageRequest(t, "", map[string]string{"bucket": "dishes"}, "a.jpg", "image/jpeg")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: want 401, got %d", w.Code)
	}
}
