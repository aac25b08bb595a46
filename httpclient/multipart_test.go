package httpclient

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMultipartBodyEncodeFieldsOnly(t *testing.T) {
	mp := &MultipartBody{
		Fields: map[string]string{
			"model":    "whisper-1",
			"language": "en",
		},
	}

	reader, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType error: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Errorf("media type = %q", mediaType)
	}

	fields := readParts(t, reader, params["boundary"])
	if fields["model"] != "whisper-1" || fields["language"] != "en" {
		t.Errorf("fields = %v", fields)
	}
}

func TestMultipartBodyEncodeWithFile(t *testing.T) {
	audio := []byte{0x1a, 0x45, 0xdf, 0xa3, 0x01, 0x02}
	mp := &MultipartBody{
		Fields: map[string]string{"response_format": "verbose_json"},
		Files: []FileField{
			{FieldName: "file", FileName: "recording.webm", ContentType: "audio/webm", Data: audio},
		},
	}

	reader, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}

	_, params, _ := mime.ParseMediaType(contentType)
	mr := multipart.NewReader(reader, params["boundary"])
	sawFile := false
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		if part.FormName() == "file" {
			sawFile = true
			if part.FileName() != "recording.webm" {
				t.Errorf("FileName = %q", part.FileName())
			}
			if ct := part.Header.Get("Content-Type"); ct != "audio/webm" {
				t.Errorf("part Content-Type = %q", ct)
			}
			data, _ := io.ReadAll(part)
			if len(data) != len(audio) {
				t.Errorf("file bytes = %d, want %d", len(data), len(audio))
			}
		}
	}
	if !sawFile {
		t.Error("file part missing")
	}
}

func TestMultipartBodyFromReader(t *testing.T) {
	mp := &MultipartBody{
		Files: []FileField{
			{FieldName: "file", FileName: "a.bin", Reader: strings.NewReader("stream me")},
		},
	}
	reader, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	_, params, _ := mime.ParseMediaType(contentType)
	mr := multipart.NewReader(reader, params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("NextPart error: %v", err)
	}
	data, _ := io.ReadAll(part)
	if string(data) != "stream me" {
		t.Errorf("data = %q", data)
	}
}

func TestClientSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("model = %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "chunk-0.webm" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		w.Write([]byte(`{"text":"hello"}`))
	}))
	defer srv.Close()

	client, _ := New(Config{BaseURL: srv.URL})
	resp, err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/audio/transcriptions",
		Body: &MultipartBody{
			Fields: map[string]string{"model": "whisper-1"},
			Files:  []FileField{{FieldName: "file", FileName: "chunk-0.webm", Data: []byte("bytes")}},
		},
	})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func readParts(t *testing.T, r io.Reader, boundary string) map[string]string {
	t.Helper()
	mr := multipart.NewReader(r, boundary)
	fields := map[string]string{}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		data, _ := io.ReadAll(part)
		fields[part.FormName()] = string(data)
	}
	return fields
}
