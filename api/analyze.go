package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
)

// AnalyzeText asks the Python API to generate quizzes out of plain text.
func (c *Client) AnalyzeText(ctx context.Context, text string) (*AnalyzeResponse, error) {
	body := analyzeTextRequest{Text: text}
	if err := c.validate.Struct(body); err != nil {
		log.Errorf("No text provided: %v\n", err)
		return nil, err
	}
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/analyze", body)
	if err != nil {
		return nil, err
	}
	var resBody AnalyzeResponse
	if err := c.do(req, &resBody); err != nil {
		return nil, err
	}
	return &resBody, nil
}

// AnalyzeFile uploads a PDF with a text layer to generate quizzes.
func (c *Client) AnalyzeFile(ctx context.Context, name string, file io.Reader) (*AnalyzeResponse, error) {
	return c.upload(ctx, "/api/analyze-file", name, file)
}

// AnalyzeOCR uploads a scanned PDF, the server runs OCR on every page.
func (c *Client) AnalyzeOCR(ctx context.Context, name string, file io.Reader) (*AnalyzeResponse, error) {
	return c.upload(ctx, "/api/analyze-ocr", name, file)
}

// upload sends file as the "file" field of a multipart form.
func (c *Client) upload(ctx context.Context, path, name string, file io.Reader) (*AnalyzeResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		log.Errorf("Failed to read file %s: %v\n", name, err)
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Add(header_content_type, w.FormDataContentType())
	req.Header.Add(header_content_length, strconv.Itoa(buf.Len()))

	var resBody AnalyzeResponse
	if err := c.do(req, &resBody); err != nil {
		return nil, err
	}
	return &resBody, nil
}
