package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"terraform-provider-vestacp/internal/apiclient/apimodels"
	"terraform-provider-vestacp/internal/catalog"
	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/helpers"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panelRequest struct {
	Method string
	Form   url.Values
}

type fakePanel struct {
	*httptest.Server
	mu       sync.Mutex
	requests []panelRequest
}

func newFakePanel(t *testing.T, answer func(form url.Values) string) *fakePanel {
	t.Helper()

	panel := &fakePanel{}
	panel.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		panel.mu.Lock()
		panel.requests = append(panel.requests, panelRequest{Method: r.Method, Form: r.Form})
		panel.mu.Unlock()
		_, _ = io.WriteString(w, answer(r.Form))
	}))
	t.Cleanup(panel.Close)

	return panel
}

func (p *fakePanel) config() HostConfig {
	return NewHostConfig(p.URL, "admin", "secret")
}

func (p *fakePanel) last(t *testing.T) panelRequest {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.requests)
	return p.requests[len(p.requests)-1]
}

func (p *fakePanel) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

func answer(body string) func(url.Values) string {
	return func(url.Values) string { return body }
}

func TestBuildCommandForm(t *testing.T) {
	config := NewHostConfig("panel", "admin", "secret")
	request := clientmodels.NewCommandRequest("v-add-user", "alice", "pw", "alice@example.com")

	form := BuildCommandForm(config, request)
	assert.Equal(t, url.Values{
		"user":     {"admin"},
		"password": {"secret"},
		"cmd":      {"v-add-user"},
		"arg1":     {"alice"},
		"arg2":     {"pw"},
		"arg3":     {"alice@example.com"},
	}, form)
}

func TestBuildCommandFormFixedKeysWin(t *testing.T) {
	config := NewHostConfig("panel", "admin", "secret")
	request := clientmodels.NewCommandRequest("v-list-users")
	request.ReturnCode = true
	request.Parameters = map[string]string{
		"user":       "mallory",
		"password":   "guess",
		"cmd":        "v-delete-user",
		"returncode": "maybe",
		"lang":       "en",
	}

	form := BuildCommandForm(config, request)
	assert.Equal(t, "admin", form.Get("user"))
	assert.Equal(t, "secret", form.Get("password"))
	assert.Equal(t, "v-list-users", form.Get("cmd"))
	assert.Equal(t, "yes", form.Get("returncode"))
	assert.Equal(t, "en", form.Get("lang"))
}

func TestBuildCommandFormDropsReturnCodeParameter(t *testing.T) {
	config := NewHostConfig("panel", "admin", "secret")
	request := clientmodels.NewCommandRequest("v-list-users")
	request.Parameters = map[string]string{"returncode": "yes"}

	form := BuildCommandForm(config, request)
	_, ok := form["returncode"]
	assert.False(t, ok)
}

func TestExecuteSendsExactlyTheExpectedFields(t *testing.T) {
	panel := newFakePanel(t, answer("0"))

	response, err := Execute(context.Background(), panel.config(), "v-change-user-package", "alice", "gold")
	require.NoError(t, err)
	assert.True(t, response.HasReturnCode)
	assert.Equal(t, clientmodels.ReturnCodeOK, response.ReturnCode)

	request := panel.last(t)
	assert.Equal(t, http.MethodPost, request.Method)
	assert.Equal(t, url.Values{
		"user":       {"admin"},
		"password":   {"secret"},
		"cmd":        {"v-change-user-package"},
		"arg1":       {"alice"},
		"arg2":       {"gold"},
		"returncode": {"yes"},
	}, request.Form)
}

func TestExecuteWithoutReturnCode(t *testing.T) {
	panel := newFakePanel(t, answer("OK"))
	config := panel.config()
	config.ReturnCode = false

	response, err := Execute(context.Background(), config, "v-update-sys-queue", "backup")
	require.NoError(t, err)
	assert.False(t, response.HasReturnCode)
	assert.Equal(t, "OK", response.Text())

	_, ok := panel.last(t).Form["returncode"]
	assert.False(t, ok)
}

func TestExecuteNonZeroReturnCode(t *testing.T) {
	panel := newFakePanel(t, answer("4\n"))

	response, err := Execute(context.Background(), panel.config(), "v-add-user", "alice", "pw", "alice@example.com")
	require.Error(t, err)
	require.NotNil(t, response)

	assert.True(t, errors.Is(err, clientmodels.ErrCommandFailed))
	code, ok := clientmodels.ReturnCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, clientmodels.ReturnCodeExists, code)
	assert.Contains(t, err.Error(), "E_EXISTS")
}

func TestExecuteEmptyBody(t *testing.T) {
	panel := newFakePanel(t, answer(""))

	_, err := ExecuteList(context.Background(), panel.config(), "v-list-users")
	require.Error(t, err)
	assert.Equal(t, clientmodels.FailureEmptyResponse, clientmodels.KindOf(err))
	assert.True(t, errors.Is(err, clientmodels.ErrEmptyResponse))
}

func TestExecuteMissingCredentialsSendsNothing(t *testing.T) {
	panel := newFakePanel(t, answer("0"))

	for _, config := range []HostConfig{
		NewHostConfig(panel.URL, "", "secret"),
		NewHostConfig(panel.URL, "admin", ""),
		NewHostConfig("", "admin", "secret"),
	} {
		_, err := Execute(context.Background(), config, "v-list-users")
		require.Error(t, err)
		assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))
		assert.True(t, errors.Is(err, clientmodels.ErrConfigurationMissing))
	}

	assert.Equal(t, 0, panel.count())
}

func TestExecuteUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Execute(context.Background(), NewHostConfig(srv.URL, "admin", "secret"), "v-list-users")
	require.Error(t, err)

	var cmdErr *clientmodels.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, clientmodels.FailureUnexpectedStatus, cmdErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, cmdErr.StatusCode)
	assert.Equal(t, "v-list-users", cmdErr.Command)
}

func TestExecuteGetUsesQueryString(t *testing.T) {
	panel := newFakePanel(t, answer("0"))

	request := clientmodels.NewCommandRequest("v-list-sys-info")
	request.Method = "get"
	request.ReturnCode = true

	_, err := ExecuteRequest(context.Background(), panel.config(), request)
	require.NoError(t, err)

	last := panel.last(t)
	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "v-list-sys-info", last.Form.Get("cmd"))
}

func TestExecuteValidatesCommands(t *testing.T) {
	panel := newFakePanel(t, answer("0"))
	config := panel.config()
	config.ValidateCommands = true

	_, err := Execute(context.Background(), config, "v-add-user", "alice")
	require.Error(t, err)
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))
	assert.Equal(t, 0, panel.count())
}

func TestWithListFormat(t *testing.T) {
	config := NewHostConfig("panel", "admin", "secret")

	withFormat := func(command string, args []string) []string {
		arguments, err := WithListFormat(config, command, args)
		require.NoError(t, err)
		return arguments
	}

	assert.Equal(t, []string{"json"}, withFormat("v-list-users", nil))
	assert.Equal(t, []string{"alice", "json"}, withFormat("v-list-user", []string{"alice"}))
	assert.Equal(t, []string{"admin", "example.com", "", "json"}, withFormat("v-list-web-domain-accesslog", []string{"admin", "example.com"}))
	assert.Equal(t, []string{"alice", "shell"}, withFormat("v-list-user", []string{"alice", "shell"}))
	assert.Equal(t, []string{"alice"}, withFormat("v-custom-report", []string{"alice"}))

	config.ListFormat = "csv"
	assert.Equal(t, []string{"csv"}, withFormat("v-list-users", nil))
}

func TestWithListFormatMissingRequiredArgument(t *testing.T) {
	config := NewHostConfig("panel", "admin", "secret")

	_, err := WithListFormat(config, "v-list-web-domain", []string{"admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrTooFewArguments)
	assert.Contains(t, err.Error(), "DOMAIN")

	panel := newFakePanel(t, answer("{}"))
	_, err = ExecuteList(context.Background(), panel.config(), "v-list-web-domain", "admin")
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))
	assert.Equal(t, 0, panel.count())
}

func TestGetUser(t *testing.T) {
	panel := newFakePanel(t, answer(`{"alice": {"PACKAGE": "default"}}`))

	record, err := GetUser(context.Background(), panel.config(), "alice")
	require.NoError(t, err)
	assert.Equal(t, apimodels.Record{"PACKAGE": "default"}, record)

	form := panel.last(t).Form
	assert.Equal(t, "v-list-user", form.Get("cmd"))
	assert.Equal(t, "alice", form.Get("arg1"))
	assert.Equal(t, "json", form.Get("arg2"))
	_, ok := form["returncode"]
	assert.False(t, ok)

	record, err = GetUser(context.Background(), panel.config(), "bob")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetUserNotExistText(t *testing.T) {
	panel := newFakePanel(t, answer("Error: user bob doesn't exist\n"))

	record, err := GetUser(context.Background(), panel.config(), "bob")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetUserNullBody(t *testing.T) {
	panel := newFakePanel(t, answer("null"))

	record, err := GetUser(context.Background(), panel.config(), "alice")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetUserRequiresJson(t *testing.T) {
	panel := newFakePanel(t, answer("{}"))
	config := panel.config()
	config.ListFormat = "shell"

	_, err := GetUser(context.Background(), config, "alice")
	require.Error(t, err)
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))
	assert.Equal(t, 0, panel.count())
}

func TestGetUsers(t *testing.T) {
	panel := newFakePanel(t, answer(`{"alice": {"PACKAGE": "default"}, "bob": {"PACKAGE": "gold", "U_DISK": 12}}`))

	users, err := GetUsers(context.Background(), panel.config())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users.Keys())
	assert.Equal(t, "12", users["bob"].Get("U_DISK"))
	assert.Equal(t, "v-list-users", panel.last(t).Form.Get("cmd"))
	assert.Equal(t, "json", panel.last(t).Form.Get("arg1"))
}

func TestCheckUserPassword(t *testing.T) {
	panel := newFakePanel(t, func(form url.Values) string {
		switch {
		case form.Get("arg1") == "ghost":
			return "3"
		case form.Get("arg2") == "right":
			return "0"
		default:
			return "9"
		}
	})

	ok, err := CheckUserPassword(context.Background(), panel.config(), "alice", "right")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckUserPassword(context.Background(), panel.config(), "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = CheckUserPassword(context.Background(), panel.config(), "ghost", "right")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckUserPasswordTextAnswers(t *testing.T) {
	panel := newFakePanel(t, func(form url.Values) string {
		switch {
		case form.Get("arg1") == "ghost":
			return "Error: user ghost doesn't exist\n"
		case form.Get("arg2") == "right":
			return "OK\n"
		case form.Get("arg2") == "broken":
			return "Error: database is not responding\n"
		default:
			return "Error: password missmatch\n"
		}
	})
	config := panel.config()
	config.ReturnCode = false

	ok, err := CheckUserPassword(context.Background(), config, "alice", "right")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckUserPassword(context.Background(), config, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	_, hasCode := panel.last(t).Form["returncode"]
	assert.False(t, hasCode)

	ok, err = CheckUserPassword(context.Background(), config, "ghost", "right")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = CheckUserPassword(context.Background(), config, "alice", "broken")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, clientmodels.FailureCommand, clientmodels.KindOf(err))
}

func TestCreateUser(t *testing.T) {
	panel := newFakePanel(t, answer("0"))

	err := CreateUser(context.Background(), panel.config(), apimodels.UserRequest{
		Username:  "alice",
		Password:  "pw",
		Email:     "alice@example.com",
		FirstName: "Alice",
	})
	require.NoError(t, err)

	form := panel.last(t).Form
	assert.Equal(t, "v-add-user", form.Get("cmd"))
	assert.Equal(t, "alice", form.Get("arg1"))
	assert.Equal(t, "pw", form.Get("arg2"))
	assert.Equal(t, "alice@example.com", form.Get("arg3"))
	assert.Equal(t, "default", form.Get("arg4"))
	assert.Equal(t, "Alice", form.Get("arg5"))
	_, ok := form["arg6"]
	assert.False(t, ok)
}

func TestCreateUserInvalidRequest(t *testing.T) {
	panel := newFakePanel(t, answer("0"))

	err := CreateUser(context.Background(), panel.config(), apimodels.UserRequest{Username: "alice"})
	assert.Error(t, err)
	assert.Equal(t, 0, panel.count())
}

func TestDeleteUserMissingIsSuccess(t *testing.T) {
	panel := newFakePanel(t, answer("3"))

	assert.NoError(t, DeleteUser(context.Background(), panel.config(), "ghost"))
}

func TestWriteCommandsWithoutReturnCode(t *testing.T) {
	panel := newFakePanel(t, func(form url.Values) string {
		switch form.Get("arg1") {
		case "alice":
			return "OK\n"
		case "ghost":
			return "Error: user ghost doesn't exist\n"
		default:
			return "Error: package gold doesn't fit\n"
		}
	})
	config := panel.config()
	config.ReturnCode = false

	assert.NoError(t, ChangeUserPackage(context.Background(), config, "alice", "gold"))
	assert.NoError(t, DeleteUser(context.Background(), config, "ghost"))

	err := ChangeUserPackage(context.Background(), config, "bob", "gold")
	require.Error(t, err)
	assert.True(t, errors.Is(err, clientmodels.ErrCommandFailed))
	_, ok := clientmodels.ReturnCodeOf(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "package gold doesn't fit")
	assert.NotContains(t, err.Error(), "code")
}

func TestSuspendUserAlreadySuspended(t *testing.T) {
	panel := newFakePanel(t, answer("5"))

	assert.NoError(t, SuspendUser(context.Background(), panel.config(), "alice"))
	assert.Equal(t, "v-suspend-user", panel.last(t).Form.Get("cmd"))
}

func TestUnsuspendUserNotSuspended(t *testing.T) {
	panel := newFakePanel(t, answer("6"))

	assert.NoError(t, UnsuspendUser(context.Background(), panel.config(), "alice"))
	assert.Equal(t, "v-unsuspend-user", panel.last(t).Form.Get("cmd"))
}

func TestUpdateUserSendsOnlyChanges(t *testing.T) {
	panel := newFakePanel(t, answer("0"))

	current := apimodels.UserRequest{Username: "alice", Password: "pw", Email: "a@example.com", Package: "default", FirstName: "Alice"}
	desired := current
	desired.Package = "gold"
	desired.LastName = "Liddell"

	require.NoError(t, UpdateUser(context.Background(), panel.config(), current, desired))

	commands := make([]string, 0)
	for _, request := range panel.requests {
		commands = append(commands, request.Form.Get("cmd"))
	}
	assert.Equal(t, []string{"v-change-user-package", "v-change-user-name"}, commands)
	assert.Equal(t, "Liddell", panel.last(t).Form.Get("arg3"))
}

func TestUpdateUserRejectsRename(t *testing.T) {
	err := UpdateUser(context.Background(), NewHostConfig("panel", "admin", "secret"),
		apimodels.UserRequest{Username: "alice"}, apimodels.UserRequest{Username: "bob"})
	assert.Error(t, err)
}

func TestRestoreUserBackupRequiresSsh(t *testing.T) {
	_, err := RestoreUserBackup(context.Background(), NewHostConfig("panel", "admin", "secret"), "alice", "/tmp/alice.tar", RestoreOptions{})
	require.Error(t, err)
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))
}

func TestRestoreOptionsArguments(t *testing.T) {
	assert.Empty(t, RestoreOptions{}.Arguments())
	assert.Equal(t, []string{"example.com"}, RestoreOptions{Web: "example.com"}.Arguments())
	assert.Equal(t, []string{"", "", "", "", "", "", "yes"}, RestoreOptions{Notify: true}.Arguments())
}

func TestHostConfigValidate(t *testing.T) {
	config := NewHostConfig("panel", "admin", "secret")
	assert.NoError(t, config.Validate())

	config.ListFormat = "xml"
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(config.Validate()))

	config = NewHostConfig("", "", "")
	config.Transport = TransportLocal
	assert.NoError(t, config.Validate())

	config.Transport = "carrier-pigeon"
	assert.Equal(t, clientmodels.FailureClientUnavailable, clientmodels.KindOf(config.Validate()))

	config.Transport = TransportSsh
	err := config.Validate()
	assert.Equal(t, clientmodels.FailureConfiguration, clientmodels.KindOf(err))
	assert.Contains(t, err.Error(), "ssh_connection.host")
}

func TestHttpsUrlWithoutHostVerification(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "0")
	}))
	defer srv.Close()

	config := NewHostConfig(srv.URL, "admin", "secret")
	config.HostVerification = helpers.HostVerificationNone

	_, err := Execute(context.Background(), config, "v-list-users")
	assert.NoError(t, err)
}
