package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"diet-server/entities"
)

// apiClient talks to the diet server. The cookie jar keeps the session
// cookie handed out by register and login.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) (*apiClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second, Jar: jar},
	}, nil
}

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return e.Message
}

type registerPayload struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type mealPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsInDiet    bool   `json:"isInDiet"`
}

func (c *apiClient) register(ctx context.Context, p registerPayload) (*entities.User, error) {
	var out struct {
		User entities.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/users", p, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *apiClient) login(ctx context.Context, username, password string) (*entities.User, error) {
	var out struct {
		User entities.User `json:"user"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/sessions", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *apiClient) createMeal(ctx context.Context, p mealPayload) (*entities.Meal, error) {
	var out struct {
		Meal entities.Meal `json:"meal"`
	}
	if err := c.do(ctx, http.MethodPost, "/meals", p, &out); err != nil {
		return nil, err
	}
	return &out.Meal, nil
}

func (c *apiClient) listMeals(ctx context.Context) ([]entities.Meal, error) {
	var out struct {
		Meals []entities.Meal `json:"meals"`
	}
	if err := c.do(ctx, http.MethodGet, "/meals", nil, &out); err != nil {
		return nil, err
	}
	return out.Meals, nil
}

func (c *apiClient) summary(ctx context.Context) (*entities.MealSummary, error) {
	var out entities.MealSummary
	if err := c.do(ctx, http.MethodGet, "/meals/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &apiError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// isSubjectNotFound reports whether err is the server's single credential
// failure.
func isSubjectNotFound(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound && apiErr.Message == "user not found"
}
