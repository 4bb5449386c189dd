// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
)

// Upload performs PUT {base}/{bucket?} with a multipart body holding the
// content source plus a form field for every option that was set.
func (s *FilesService) Upload(ctx context.Context, req UploadRequest) (*api.FileInfo, error) {
	if err := validateUpload(req); err != nil {
		return nil, err
	}

	body, contentType, err := uploadBody(req)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", contentType)

	url := s.http.BuildURL(nil, req.Bucket)
	b, status, err := s.http.Do(ctx, http.MethodPut, url, header, body)
	if err != nil {
		return nil, fmt.Errorf("upload request failed (status %d): %w", status, err)
	}

	var info api.FileInfo
	if err := api.Decode(status, b, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func validateUpload(req UploadRequest) error {
	switch src := req.Source.(type) {
	case LocalFile:
		if src.Path == "" {
			return &api.ValidationError{Reason: "file path is empty"}
		}
	case RemoteURL:
		if src.URL == "" {
			return &api.ValidationError{Reason: "content url is empty"}
		}
	case RawBytes:
		if src.Name == "" {
			return &api.ValidationError{Reason: "raw content needs a file name"}
		}
	case nil:
		return &api.ValidationError{Reason: "no content source set"}
	default:
		return &api.ValidationError{Reason: fmt.Sprintf("unsupported source %T", src)}
	}

	if req.Expires != nil {
		return validateExpiry(*req.Expires)
	}
	return nil
}

func validateExpiry(e Expiry) error {
	if e.Amount <= 0 {
		return &api.ValidationError{Reason: "expiry amount must be positive"}
	}
	switch e.Unit {
	case Minutes, Hours, Days:
		return nil
	default:
		return &api.ValidationError{Reason: fmt.Sprintf("unknown expiry unit %q", string(e.Unit))}
	}
}

// uploadBody builds the multipart payload. Local files are read fully
// into memory first; the transport only ever sees bytes.
func uploadBody(req UploadRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	switch src := req.Source.(type) {
	case LocalFile:
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, "", &api.IOError{Path: src.Path, Err: err}
		}
		if err := writeFilePart(w, filepath.Base(src.Path), data); err != nil {
			return nil, "", err
		}
	case RemoteURL:
		if err := w.WriteField("url", src.URL); err != nil {
			return nil, "", err
		}
	case RawBytes:
		if err := writeFilePart(w, src.Name, src.Content); err != nil {
			return nil, "", err
		}
	}

	fields := map[string]string{}
	if req.Password != "" {
		fields["password"] = req.Password
	}
	if req.Expires != nil {
		fields["expires"] = req.Expires.String()
	}
	if req.HideFilename {
		fields["hide_filename"] = "true"
	}
	if req.OneTimeDownload {
		fields["one_time_download"] = "true"
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, name string, data []byte) error {
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}
