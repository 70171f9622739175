package apimodels

import (
	"regexp"

	"github.com/pkg/errors"
)

const DefaultPackage = "default"

var UsernameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

type UserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Package   string `json:"package"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *UserRequest) Validate() error {
	if err := ValidateUsername(r.Username); err != nil {
		return err
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.LastName != "" && r.FirstName == "" {
		return errors.New("first name is required when last name is set")
	}

	return nil
}

// Arguments returns the positional arguments of v-add-user, trimming the
// optional tail that was not provided.
func (r *UserRequest) Arguments() []string {
	pkg := r.Package
	if pkg == "" && r.FirstName != "" {
		pkg = DefaultPackage
	}

	args := []string{r.Username, r.Password, r.Email, pkg, r.FirstName, r.LastName}
	for len(args) > 3 && args[len(args)-1] == "" {
		args = args[:len(args)-1]
	}

	return args
}

func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username is required")
	}
	if !UsernameRegex.MatchString(username) {
		return errors.Errorf("username %q contains invalid characters", username)
	}

	return nil
}
