package handler

import (
	"io"
	"mime"
	"net/http"
	"strings"
)

type textResponse struct {
	status   int
	body     string
	filename string
}

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if t.filename != "" {
		w.Header().Set("Content-Disposition",
			mime.FormatMediaType("attachment", map[string]string{"filename": t.filename}))
	}
	w.WriteHeader(t.status)
	_, err := io.WriteString(w, t.body)
	return err
}

// Text creates a plain text response with status 200.
func Text(body string) Response {
	return textResponse{status: http.StatusOK, body: body}
}

// Attachment creates a text/plain download named filename with one line per
// entry. Every line, including the last, ends with a newline.
func Attachment(filename string, lines []string) Response {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return textResponse{status: http.StatusOK, body: b.String(), filename: filename}
}
