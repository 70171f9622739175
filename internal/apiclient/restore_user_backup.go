package apiclient

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"terraform-provider-vestacp/internal/apiclient/apimodels"
	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/constants"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

type RestoreOptions struct {
	Web    string
	Dns    string
	Mail   string
	Db     string
	Cron   string
	Udir   string
	Notify bool
}

// Arguments are the optional v-restore-user arguments after USER and BACKUP.
func (o RestoreOptions) Arguments() []string {
	notify := ""
	if o.Notify {
		notify = "yes"
	}

	args := []string{o.Web, o.Dns, o.Mail, o.Db, o.Cron, o.Udir, notify}
	for len(args) > 0 && args[len(args)-1] == "" {
		args = args[:len(args)-1]
	}

	return args
}

// RestoreUserBackup uploads a local backup archive to the panel backup
// directory over sftp and restores it for username. It returns the remote
// archive path.
func RestoreUserBackup(ctx context.Context, config HostConfig, username, localFile string, options RestoreOptions) (string, error) {
	if err := apimodels.ValidateUsername(username); err != nil {
		return "", err
	}
	if localFile == "" {
		return "", clientmodels.NewCommandError(clientmodels.FailureConfiguration, "v-restore-user", errors.New("backup file is required"))
	}

	client, err := NewSshClient(config)
	if err != nil {
		return "", setCommand(err, "v-restore-user")
	}

	archive := filepath.Base(localFile)
	remoteFile := path.Join(constants.BackupPath, archive)
	tflog.Info(ctx, fmt.Sprintf("Uploading backup %s to %s", localFile, remoteFile))
	if err := client.TransferFile(ctx, localFile, remoteFile); err != nil {
		return "", setCommand(err, "v-restore-user")
	}

	args := append([]string{username, archive}, options.Arguments()...)
	if err := runWriteCommand(ctx, config, "v-restore-user", args...); err != nil {
		return remoteFile, err
	}

	tflog.Info(ctx, "Restored backup "+archive+" for user "+username)
	return remoteFile, nil
}
