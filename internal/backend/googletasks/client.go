// Package googletasks implements the service.Service interface using the
// Google Tasks API.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"ltask/internal/config"
	"ltask/internal/service"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks fetched per API page.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// OAuth scope for Google Tasks
	tasksScope = "https://www.googleapis.com/auth/tasks"
)

// Client implements service.Service using the Google Tasks API.
type Client struct {
	svc *tasks.Service
	cfg *config.Config
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source auto-refreshes using the stored refresh token
	tokenSource := oauthConfig.TokenSource(ctx, &token)
	httpClient := oauth2.NewClient(ctx, tokenSource)

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	return &Client{svc: svc, cfg: cfg}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc}, nil
}

// DefaultList returns the user's default task list.
func (c *Client) DefaultList(ctx context.Context) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}

	return service.TaskList{
		ID:    DefaultListID,
		Title: list.Title,
	}, nil
}

// ListOpenTasks returns all open tasks for a list in API order.
func (c *Client) ListOpenTasks(ctx context.Context, listID string) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []service.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, task := range resp.Items {
				result = append(result, service.Task{
					ID:     task.Id,
					Title:  task.Title,
					Status: task.Status,
				})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}

	return result, nil
}

// CreateTask creates a new task in the specified list.
func (c *Client) CreateTask(ctx context.Context, listID, title string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Insert(listID, &tasks.Task{Title: title}).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// CompleteTask marks a task as completed.
func (c *Client) CompleteTask(ctx context.Context, listID, taskID string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Patch(listID, taskID, &tasks.Task{
		Status: "completed",
	}).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: ltask login)")
	}
	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}

	return err
}
