// Command portalctl performs folder maintenance against a running portal
// server, honouring the server's FOLDER_DELETE_MODE.
//
//	portalctl -server http://localhost:8080 -token $TOKEN delete-folder -space S1 -folder F1
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/runtimeconfig"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	global := flag.NewFlagSet("portalctl", flag.ContinueOnError)
	server := global.String("server", envOr("PORTAL_URL", "http://localhost:8080"), "portal server base URL")
	token := global.String("token", os.Getenv("PORTAL_TOKEN"), "bearer token")
	if err := global.Parse(args); err != nil {
		return err
	}

	rest := global.Args()
	if len(rest) == 0 {
		return errors.New("usage: portalctl [flags] delete-folder -space ID -folder ID")
	}

	c := &cli{
		baseURL: strings.TrimRight(*server, "/"),
		token:   *token,
		http:    &http.Client{Timeout: 30 * time.Second},
		stdin:   bufio.NewReader(stdin),
		stdout:  stdout,
	}
	c.runtime = runtimeconfig.NewClient(c.baseURL, c.http)

	switch rest[0] {
	case "delete-folder":
		return c.deleteFolder(ctx, rest[1:])
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

type cli struct {
	baseURL string
	token   string
	http    *http.Client
	runtime *runtimeconfig.Client
	stdin   *bufio.Reader
	stdout  io.Writer
}

func (c *cli) deleteFolder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-folder", flag.ContinueOnError)
	spaceID := fs.String("space", "", "space ID")
	folderID := fs.String("folder", "", "folder ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *spaceID == "" || *folderID == "" {
		return errors.New("-space and -folder are required")
	}

	cascade, err := c.resolveCascade(ctx)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/api/space/%s/folder/%s?cascade=%t",
		c.baseURL, url.PathEscape(*spaceID), url.PathEscape(*folderID), cascade)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
		Error   any  `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	if !body.Success {
		return fmt.Errorf("server returned %d: %v", resp.StatusCode, body.Error)
	}

	action := "detached"
	if cascade {
		action = "deleted"
	}
	fmt.Fprintf(c.stdout, "Folder %s deleted, content %s\n", *folderID, action)
	return nil
}

// resolveCascade maps the server's delete mode to the cascade flag,
// asking the user when the mode is PROMPT
func (c *cli) resolveCascade(ctx context.Context) (bool, error) {
	switch mode := c.runtime.Get(ctx).FolderDeleteMode; mode {
	case domain.FolderDeleteCascade:
		return true, nil
	case domain.FolderDeletePrompt:
		fmt.Fprint(c.stdout, "Also delete the content in this folder? [y/N] ")
		answer, err := c.stdin.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	default:
		return false, nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
