// Package submit delivers assembled quote requests to the downstream
// intake endpoint as multipart form data.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/config"
	"github.com/vetipro/quoteapi/internal/domain"
)

type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new submission client. With an empty endpoint the
// client only assembles and logs the payload, which is the simulated mode
// used for local development.
func NewClient(cfg config.SubmitConfig, logger *zap.Logger) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Submit posts the draft's form fields, serialized designs and raw file
// attachments as one multipart request. The only observable contract is
// success or failure; no response schema is defined.
func (c *Client) Submit(ctx context.Context, draft *domain.QuoteDraft) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":            draft.Contact.Name,
		"email":           draft.Contact.Email,
		"phone":           draft.Contact.Phone,
		"company":         draft.Contact.Company,
		"productName":     draft.Product.ProductName,
		"quantity":        strconv.Itoa(draft.Product.Quantity),
		"size":            draft.Product.Size,
		"description":     draft.Product.Description,
		"deadline":        draft.Product.Deadline,
		"additionalNotes": draft.AdditionalNotes,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if len(draft.Designs) > 0 {
		designsJSON, err := json.Marshal(draft.Designs)
		if err != nil {
			return fmt.Errorf("failed to marshal designs: %w", err)
		}
		if err := writer.WriteField("designs", string(designsJSON)); err != nil {
			return fmt.Errorf("failed to write designs field: %w", err)
		}
	}

	for i, attachment := range draft.Attachments {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(
			`form-data; name="file-%d"; filename=%q`, i, attachment.Filename))
		header.Set("Content-Type", attachment.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return fmt.Errorf("failed to create attachment part: %w", err)
		}
		if _, err := part.Write(attachment.Data); err != nil {
			return fmt.Errorf("failed to write attachment: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize payload: %w", err)
	}

	if c.endpoint == "" {
		c.logger.Info("No submission endpoint configured, simulating delivery",
			zap.Int("designs", len(draft.Designs)),
			zap.Int("attachments", len(draft.Attachments)),
			zap.Int("payload_bytes", buf.Len()),
		)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("submission endpoint error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return nil
}
