package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"terraform-provider-vestacp/internal/clientmodels"
)

type commandResult struct {
	Command    string          `json:"command"`
	ReturnCode *int            `json:"returnCode,omitempty"`
	Output     string          `json:"output"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func writeJSON(w io.Writer, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeResponse(w io.Writer, response *clientmodels.CommandResponse, jsonOutput bool) error {
	if !jsonOutput {
		printText(w, response.Text())
		return nil
	}

	result := commandResult{
		Command: response.Command,
		Output:  response.Text(),
	}
	if response.HasReturnCode {
		code := int(response.ReturnCode)
		result.ReturnCode = &code
	}
	body := strings.TrimSpace(response.Body)
	if strings.HasPrefix(body, "{") || strings.HasPrefix(body, "[") {
		if json.Valid([]byte(body)) {
			result.Data = json.RawMessage(body)
		}
	}

	return writeJSON(w, result)
}
