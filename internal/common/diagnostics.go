package common

import (
	"fmt"

	"terraform-provider-vestacp/internal/clientmodels"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/pkg/errors"
)

// CommandErrorDiagnostics turns an invoker error into a diagnostic, spelling
// out the panel return code when there is one.
func CommandErrorDiagnostics(summary string, err error) diag.Diagnostics {
	diagnostics := diag.Diagnostics{}
	if err == nil {
		return diagnostics
	}

	detail := err.Error()
	var cmdErr *clientmodels.CommandError
	if errors.As(err, &cmdErr) {
		switch cmdErr.Kind {
		case clientmodels.FailureConfiguration:
			detail = fmt.Sprintf("%s\nCheck the provider configuration.", detail)
		case clientmodels.FailureConnection, clientmodels.FailureUnsupportedTransport:
			detail = fmt.Sprintf("%s\nCheck the panel url and that the panel is reachable.", detail)
		case clientmodels.FailureUnexpectedStatus:
			if cmdErr.StatusCode == 401 || cmdErr.StatusCode == 403 {
				detail = fmt.Sprintf("%s\nCheck the panel credentials.", detail)
			}
		}
	}

	diagnostics.AddError(summary, detail)
	return diagnostics
}
