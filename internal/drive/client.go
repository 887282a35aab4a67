// Package drive is a thin client for the cloud-drive file API used as remote
// storage. All workspace files live under a fixed two-level folder path
// (ContextSync/workspace) which is resolved, and created when absent, before
// any list or upload call.
package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/contextsync/ctxsync/internal/logx"
)

const defaultBase = "https://api.clouddrive.dev/v3"

const (
	appFolderName       = "ContextSync"
	workspaceFolderName = "workspace"
	folderMimeType      = "application/vnd.drive.folder"
)

// File is one remote workspace file.
type File struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client talks to the drive API. The zero value is not usable; construct
// with New.
type Client struct {
	// BaseURL overrides the production endpoint, for tests.
	BaseURL string

	http        *http.Client
	token       string
	workspaceID string // cached after the first successful resolve
}

// New creates a client authenticating with the given API token.
func New(token string) *Client {
	return &Client{
		BaseURL: defaultBase,
		http:    &http.Client{Timeout: 30 * time.Second},
		token:   token,
	}
}

// List returns the files in the workspace folder, resolving (and creating)
// the folder first if needed.
func (c *Client) List(ctx context.Context) ([]File, error) {
	ws, err := c.Workspace(ctx)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf("'%s' in parents and trashed = false", ws)
	files, err := c.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing workspace: %w", err)
	}
	return files, nil
}

// Upload sends the contents of localPath to the workspace folder under the
// file's base name. A same-named remote file is overwritten in place.
func (c *Client) Upload(ctx context.Context, localPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", localPath, err)
	}
	ws, err := c.Workspace(ctx)
	if err != nil {
		return err
	}

	name := filepath.Base(localPath)
	existing, err := c.query(ctx, fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", name, ws))
	if err != nil {
		return fmt.Errorf("checking for existing %s: %w", name, err)
	}

	var u string
	if len(existing) > 0 {
		u = c.BaseURL + "/upload/files/" + url.PathEscape(existing[0].ID)
	} else {
		v := url.Values{}
		v.Set("name", name)
		v.Set("parent", ws)
		u = c.BaseURL + "/upload/files?" + v.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	logx.Debugf("uploaded %s (%d bytes)", name, len(data))
	return nil
}

// Download fetches the contents of the remote file with the given id.
func (c *Client) Download(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, errors.New("download: empty file id")
	}
	u := c.BaseURL + "/files/" + url.PathEscape(id) + "?alt=media"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.doRaw(req, &buf); err != nil {
		return nil, fmt.Errorf("downloading %s: %w", id, err)
	}
	return buf.Bytes(), nil
}

// Workspace resolves the ContextSync/workspace folder id, creating either
// level when it does not exist yet. The id is cached for the client lifetime.
func (c *Client) Workspace(ctx context.Context) (string, error) {
	if c.workspaceID != "" {
		return c.workspaceID, nil
	}
	app, err := c.findOrCreateFolder(ctx, appFolderName, "root")
	if err != nil {
		return "", fmt.Errorf("resolving app folder: %w", err)
	}
	ws, err := c.findOrCreateFolder(ctx, workspaceFolderName, app)
	if err != nil {
		return "", fmt.Errorf("resolving workspace folder: %w", err)
	}
	c.workspaceID = ws
	return ws, nil
}

func (c *Client) findOrCreateFolder(ctx context.Context, name, parent string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and '%s' in parents and trashed = false",
		name, folderMimeType, parent)
	found, err := c.query(ctx, q)
	if err != nil {
		return "", err
	}
	if len(found) > 0 {
		return found[0].ID, nil
	}

	body, _ := json.Marshal(map[string]any{
		"name":     name,
		"mimeType": folderMimeType,
		"parents":  []string{parent},
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/files", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	var created File
	if err := c.do(req, &created); err != nil {
		return "", fmt.Errorf("creating folder %s: %w", name, err)
	}
	logx.Infof("created drive folder %s", name)
	return created.ID, nil
}

type filesResp struct {
	Files []File `json:"files"`
}

func (c *Client) query(ctx context.Context, q string) ([]File, error) {
	v := url.Values{}
	v.Set("q", q)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/files?"+v.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var payload filesResp
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return payload.Files, nil
}

// do executes req and decodes a JSON response into dst when dst is non-nil.
func (c *Client) do(req *http.Request, dst any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("drive API status %s", res.Status)
	}
	if dst == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// doRaw executes req and copies the raw body into w.
func (c *Client) doRaw(req *http.Request, w io.Writer) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("drive API status %s", res.Status)
	}
	_, err = io.Copy(w, res.Body)
	return err
}
