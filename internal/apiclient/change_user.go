package apiclient

import (
	"context"

	"terraform-provider-vestacp/internal/apiclient/apimodels"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

func ChangeUserPassword(ctx context.Context, config HostConfig, username, password string) error {
	if err := apimodels.ValidateUsername(username); err != nil {
		return err
	}
	if password == "" {
		return errors.New("password is required")
	}

	ctx = tflog.MaskFieldValuesWithFieldKeys(ctx, "password")
	return runWriteCommand(ctx, config, "v-change-user-password", username, password)
}

func ChangeUserPackage(ctx context.Context, config HostConfig, username, pkg string) error {
	if err := apimodels.ValidateUsername(username); err != nil {
		return err
	}
	if pkg == "" {
		return errors.New("package is required")
	}

	return runWriteCommand(ctx, config, "v-change-user-package", username, pkg)
}

func ChangeUserContact(ctx context.Context, config HostConfig, username, email string) error {
	if err := apimodels.ValidateUsername(username); err != nil {
		return err
	}
	if email == "" {
		return errors.New("email is required")
	}

	return runWriteCommand(ctx, config, "v-change-user-contact", username, email)
}

func ChangeUserName(ctx context.Context, config HostConfig, username, firstName, lastName string) error {
	if err := apimodels.ValidateUsername(username); err != nil {
		return err
	}
	if firstName == "" {
		return errors.New("first name is required")
	}

	return runWriteCommand(ctx, config, "v-change-user-name", username, firstName, lastName)
}

// UpdateUser applies the changes between current and desired, one command
// per changed field.
func UpdateUser(ctx context.Context, config HostConfig, current, desired apimodels.UserRequest) error {
	if current.Username != desired.Username {
		return errors.Errorf("cannot rename user %s to %s", current.Username, desired.Username)
	}

	if desired.Password != current.Password {
		if err := ChangeUserPassword(ctx, config, desired.Username, desired.Password); err != nil {
			return err
		}
	}
	if desired.Email != current.Email {
		if err := ChangeUserContact(ctx, config, desired.Username, desired.Email); err != nil {
			return err
		}
	}
	if desired.Package != current.Package && desired.Package != "" {
		if err := ChangeUserPackage(ctx, config, desired.Username, desired.Package); err != nil {
			return err
		}
	}
	if (desired.FirstName != current.FirstName || desired.LastName != current.LastName) && desired.FirstName != "" {
		if err := ChangeUserName(ctx, config, desired.Username, desired.FirstName, desired.LastName); err != nil {
			return err
		}
	}

	tflog.Info(ctx, "Updated User "+desired.Username)
	return nil
}
