package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент transactional email API (Brevo-совместимый).
// Отправка писем не критична для записи: вызывающий код игнорирует ошибки
// доставки и только логирует их.
type Client struct {
	baseURL     string
	apiKey      string
	senderName  string
	senderEmail string
	enabled     bool
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, apiKey, senderName, senderEmail string, enabled bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		enabled:     enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendEnrollmentConfirmation отправляет письмо-подтверждение записи.
// При выключенной доставке возвращает ErrDisabled.
func (c *Client) SendEnrollmentConfirmation(ctx context.Context, conf Confirmation) error {
	if !c.enabled {
		return ErrDisabled
	}

	subject := fmt.Sprintf("Lab enrollment confirmed for %s", conf.Date)
	if conf.IsInstructor {
		subject = fmt.Sprintf("Lab session reserved for %s", conf.Date)
	}

	payload := sendRequest{
		Sender:      party{Name: c.senderName, Email: c.senderEmail},
		To:          []party{{Name: conf.FirstName + " " + conf.LastName, Email: conf.Email}},
		Subject:     subject,
		HTMLContent: confirmationHTML(conf),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v3/smtp/email"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("Confirmation mail sent to %s for %s", conf.Email, conf.Date)
	return nil
}

// confirmationHTML собирает тело письма
func confirmationHTML(conf Confirmation) string {
	var b bytes.Buffer

	b.WriteString("<div style=\"font-family: Arial, sans-serif; max-width: 520px;\">")
	b.WriteString("<h2>Laboratory enrollment confirmation</h2>")
	fmt.Fprintf(&b, "<p>Hello %s %s,</p>", conf.FirstName, conf.LastName)

	if conf.IsInstructor {
		fmt.Fprintf(&b, "<p>The laboratory is reserved for you on <strong>%s</strong> for the full session.</p>", conf.Date)
	} else {
		fmt.Fprintf(&b, "<p>Your enrollment is confirmed for <strong>%s</strong> at <strong>%s</strong>.</p>", conf.Date, conf.StartTime)
	}

	fmt.Fprintf(&b, "<p>Your cancellation code: <strong style=\"font-size: 1.2em;\">%s</strong></p>", conf.Code)
	b.WriteString("<p>Keep this code safe. You will need it to cancel your enrollment.</p>")
	b.WriteString("</div>")

	return b.String()
}
