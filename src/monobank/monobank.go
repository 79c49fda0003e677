package monobank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.monobank.ua"

// APIError is a non-success response from the Monobank personal API.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("monobank API error: %d %s", e.StatusCode, e.Description)
}

// Account is a bank account as reported by /personal/client-info.
// Balances are in minor currency units.
type Account struct {
	ID           string   `json:"id"`
	SendID       string   `json:"sendId"`
	Balance      int64    `json:"balance"`
	CreditLimit  int64    `json:"creditLimit"`
	Type         string   `json:"type"`
	CurrencyCode int      `json:"currencyCode"`
	CashbackType string   `json:"cashbackType"`
	MaskedPan    []string `json:"maskedPan"`
	IBAN         string   `json:"iban"`
}

type ClientInfo struct {
	ClientID    string    `json:"clientId"`
	Name        string    `json:"name"`
	WebHookURL  string    `json:"webHookUrl"`
	Permissions string    `json:"permissions"`
	Accounts    []Account `json:"accounts"`
}

// StatementItem is a single transaction from /personal/statement.
// Amounts are signed minor units; debits are negative.
type StatementItem struct {
	ID              string `json:"id"`
	Time            int64  `json:"time"`
	Description     string `json:"description"`
	MCC             int    `json:"mcc"`
	OriginalMCC     int    `json:"originalMcc"`
	Amount          int64  `json:"amount"`
	OperationAmount int64  `json:"operationAmount"`
	CurrencyCode    int    `json:"currencyCode"`
	CommissionRate  int64  `json:"commissionRate"`
	CashbackAmount  int64  `json:"cashbackAmount"`
	Balance         int64  `json:"balance"`
	Comment         string `json:"comment"`
	ReceiptID       string `json:"receiptId"`
	CounterEdrpou   string `json:"counterEdrpou"`
	CounterIban     string `json:"counterIban"`
	Account         string `json:"account"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetClientInfo fetches the client profile and account list for a token.
func (c *Client) GetClientInfo(ctx context.Context, token string) (*ClientInfo, error) {
	var info ClientInfo
	if err := c.get(ctx, "/personal/client-info", token, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetStatement fetches transactions for an account over [from, to] epoch
// seconds, in the order the bank returns them.
func (c *Client) GetStatement(ctx context.Context, token, accountID string, from, to int64) ([]StatementItem, error) {
	path := fmt.Sprintf("/personal/statement/%s/%d/%d", accountID, from, to)
	var items []StatementItem
	if err := c.get(ctx, path, token, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Token", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			ErrorDescription string `json:"errorDescription"`
		}
		description := "unknown error"
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrorDescription != "" {
			description = apiErr.ErrorDescription
		}
		return &APIError{StatusCode: resp.StatusCode, Description: description}
	}

	return json.Unmarshal(body, out)
}
