package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func init() {
	var userFlag string
	searchCmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Run a search and print the event stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runSearch(cmd.OutOrStdout(), apiFlag, userFlag, args[0])
		},
	}
	searchCmd.Flags().StringVarP(&userFlag, "user", "u", "", "User ID (required)")
	rootCmd.AddCommand(searchCmd)
}

// runSearch posts the query and renders server-sent events as they arrive:
// answer chunks stream to out verbatim, everything else prints as one
// labeled JSON line.
func runSearch(out io.Writer, apiURL, userID, query string) error {
	resp, err := resty.New().
		SetDoNotParseResponse(true).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"user_id": userID, "query": query}).
		Post(apiURL + "/api/search")
	if err != nil {
		return err
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if resp.StatusCode() != http.StatusOK {
		data, _ := io.ReadAll(body)
		return fmt.Errorf("http %d: %s", resp.StatusCode(), string(data))
	}

	var event string
	inAnswer := false
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data := strings.TrimPrefix(line, "data: ")
			if event == "answer_chunk" {
				var chunk struct {
					Text string `json:"text"`
				}
				if err := json.Unmarshal([]byte(data), &chunk); err == nil {
					fmt.Fprint(out, chunk.Text)
					inAnswer = true
				}
				continue
			}
			if inAnswer {
				fmt.Fprintln(out)
				inAnswer = false
			}
			fmt.Fprintf(out, "[%s] %s\n", event, data)
		}
	}
	if inAnswer {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
