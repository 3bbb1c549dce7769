package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type HTTPPlanner struct {
	BaseURL string
	Client  *http.Client
}

type computeRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type computeResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Compute POSTs to the optimizer and waits for its verdict. The optimizer
// reads config and requests from storage itself, so the body only names the
// target month. Success carries {"message": ...}, failure {"error": ...}.
func (p HTTPPlanner) Compute(ctx context.Context, year, month int) (string, error) {
	if p.Client == nil {
		p.Client = &http.Client{Timeout: 120 * time.Second}
	}

	b, _ := json.Marshal(computeRequest{Year: year, Month: month})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var r computeResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if r.Error != "" {
			return "", errors.New(r.Error)
		}
		return "", errors.New("planner service error")
	}
	return r.Message, nil
}
